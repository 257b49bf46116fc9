package testutil

import (
	"errors"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/core/ports"
)

// MockAliasRepository is a mock implementation of ports.AliasRepository for testing.
type MockAliasRepository struct {
	LoadFunc      func() (*alias.Store, error)
	SaveFunc      func(s *alias.Store) error
	StorePathFunc func() string

	SaveCalls int
}

func (m *MockAliasRepository) Load() (*alias.Store, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, errors.New("MockAliasRepository: LoadFunc not implemented")
}

func (m *MockAliasRepository) Save(s *alias.Store) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(s)
	}
	return errors.New("MockAliasRepository: SaveFunc not implemented")
}

func (m *MockAliasRepository) StorePath() string {
	if m.StorePathFunc != nil {
		return m.StorePathFunc()
	}
	return ""
}

var _ ports.AliasRepository = (*MockAliasRepository)(nil)

// MockShellDefinitionsWriter is a mock implementation of ports.ShellDefinitionsWriter.
type MockShellDefinitionsWriter struct {
	WriteFunc func(s *alias.Store) error
	PathFunc  func() string

	WriteCalls int
}

func (m *MockShellDefinitionsWriter) Write(s *alias.Store) error {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(s)
	}
	return errors.New("MockShellDefinitionsWriter: WriteFunc not implemented")
}

func (m *MockShellDefinitionsWriter) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}

var _ ports.ShellDefinitionsWriter = (*MockShellDefinitionsWriter)(nil)

// MockAliasSource is a mock implementation of ports.AliasSource.
type MockAliasSource struct {
	LoadAliasesFunc func() ([]alias.Entry, error)
	Description     string
}

func (m *MockAliasSource) LoadAliases() ([]alias.Entry, error) {
	if m.LoadAliasesFunc != nil {
		return m.LoadAliasesFunc()
	}
	return nil, errors.New("MockAliasSource: LoadAliasesFunc not implemented")
}

func (m *MockAliasSource) Describe() string {
	return m.Description
}

var _ ports.AliasSource = (*MockAliasSource)(nil)
