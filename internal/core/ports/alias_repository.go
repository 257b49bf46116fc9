package ports

import "github.com/AntonioJCosta/ali/internal/core/domain/alias"

/*
AliasRepository loads and persists the alias store. This is a driven port,
implemented by a repository adapter that owns the on-disk format.
*/
type AliasRepository interface {
	// Load reads the persisted store. A store that cannot be read or decoded is an error.
	Load() (*alias.Store, error)

	// Save replaces the persisted store with s.
	Save(s *alias.Store) error

	// StorePath returns the location of the persisted store, for display.
	StorePath() string
}
