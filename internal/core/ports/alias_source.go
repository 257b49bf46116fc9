package ports

import "github.com/AntonioJCosta/ali/internal/core/domain/alias"

// AliasSource provides alias entries from outside the store, like a YAML alias
// pack or an existing shell configuration file.
type AliasSource interface {
	// LoadAliases reads all entries the source holds.
	LoadAliases() ([]alias.Entry, error)

	// Describe identifies the source for display.
	Describe() string
}
