package ports

import "github.com/AntonioJCosta/ali/internal/core/domain/alias"

// AliasManagementService defines the contract for managing the alias store.
type AliasManagementService interface {
	// Load reads the persisted store. It must succeed before any other method is used.
	Load() error

	// ListEntries returns every entry ordered by name.
	ListEntries() ([]alias.Entry, error)

	// Search returns the entries carrying at least one of tags, ordered by name.
	Search(tags []string) ([]alias.Entry, error)

	// Get returns the entry stored under name, or alias.ErrNotFound.
	Get(name string) (alias.Entry, error)

	// AddAlias inserts e and persists the store and the shell definitions.
	// It returns alias.ErrDuplicateName without touching any file if the name is taken.
	AddAlias(e alias.Entry) error

	// RemoveAlias removes the entry stored under name and persists both files.
	// It returns alias.ErrNotFound without touching any file if the name is absent.
	RemoveAlias(name string) (alias.Entry, error)

	// WriteDefinitions re-renders only the shell definitions file and returns its path.
	WriteDefinitions() (string, error)

	// CheckDefinitions asks the shell to parse the definitions file without running it.
	CheckDefinitions(shellName string) error

	// ImportAliases inserts every entry whose name is free, skipping the rest,
	// and persists both files once if anything was added. Entries without a name
	// are ignored.
	//
	// AddAlias, RemoveAlias and ImportAliases leave the in-memory store as it was
	// when persisting fails.
	ImportAliases(src AliasSource) (added int, skipped []string, err error)

	// StorePath and DefinitionsPath locate the managed files, for display.
	StorePath() string
	DefinitionsPath() string
}
