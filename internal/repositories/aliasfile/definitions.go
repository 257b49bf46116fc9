package aliasfile

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// RenderShellDefinitions returns one `alias name="command"` line per entry, in
// name order. The command is emitted verbatim; embedded double quotes are not
// escaped and will break the line.
func RenderShellDefinitions(s *alias.Store) string {
	var sb strings.Builder
	for _, e := range s.Entries() {
		fmt.Fprintf(&sb, "alias %s=\"%s\"\n", e.Name, e.Command)
	}
	return sb.String()
}

// WriteShellDefinitions replaces the file at path with the rendered definitions.
func WriteShellDefinitions(fs afero.Fs, path string, s *alias.Store) error {
	return writeFileAtomic(fs, path, []byte(RenderShellDefinitions(s)))
}

// DefinitionsWriter writes the shell definitions file for a store.
type DefinitionsWriter struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// NewDefinitionsWriter creates a writer targeting path.
func NewDefinitionsWriter(fs afero.Fs, path string, logger *zap.Logger) (ports.ShellDefinitionsWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("shell definitions path cannot be empty")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefinitionsWriter{fs: fs, path: path, logger: logger}, nil
}

// Write implements the ports.ShellDefinitionsWriter interface.
func (w *DefinitionsWriter) Write(s *alias.Store) error {
	if err := WriteShellDefinitions(w.fs, w.path, s); err != nil {
		return fmt.Errorf("failed to write shell definitions: %w", err)
	}
	w.logger.Debug("wrote shell definitions", zap.String("path", w.path), zap.Int("aliases", s.Len()))
	return nil
}

// Path implements the ports.ShellDefinitionsWriter interface.
func (w *DefinitionsWriter) Path() string {
	return w.path
}
