package oscommand

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/ports"
)

const fallbackShell = "/bin/sh"

// OSCommandExecutor implements the CommandExecutor interface by running shell binaries.
type OSCommandExecutor struct {
	lookPath func(file string) (string, error)
}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{lookPath: exec.LookPath}
}

// Execute runs shellName with args and returns its stdout, stderr, and any error.
// shellName may be a path or a name looked up in PATH; /bin/sh is used when it
// cannot be resolved.
func (e *OSCommandExecutor) Execute(shellName string, args ...string) (string, string, error) {
	shellExecPath := e.resolveShell(shellName)

	cmd := exec.Command(shellExecPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		return stdout, stderr, fmt.Errorf("running shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

func (e *OSCommandExecutor) resolveShell(shellName string) string {
	if shellName == "" {
		return fallbackShell
	}
	if filepath.IsAbs(shellName) {
		return shellName
	}
	if path, err := e.lookPath(shellName); err == nil {
		return path
	}
	return fallbackShell
}
