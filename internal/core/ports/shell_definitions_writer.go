package ports

import "github.com/AntonioJCosta/ali/internal/core/domain/alias"

// ShellDefinitionsWriter materializes a store as a file of shell alias statements.
type ShellDefinitionsWriter interface {
	Write(s *alias.Store) error
	Path() string
}
