package testutil

import (
	"errors"

	"github.com/AntonioJCosta/ali/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(shellName string, args ...string) (stdout string, stderr string, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(shellName string, args ...string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellName, args...)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
