package aliasmanagement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"go.uber.org/zap"
)

// ErrStoreNotLoaded is returned by every operation called before Load succeeded.
var ErrStoreNotLoaded = errors.New("alias store not loaded")

// ErrCheckUnavailable is returned by CheckDefinitions when no command executor is configured.
var ErrCheckUnavailable = errors.New("shell syntax check unavailable")

type service struct {
	repo     ports.AliasRepository
	defs     ports.ShellDefinitionsWriter
	executor ports.CommandExecutor // Can be nil; CheckDefinitions is then unavailable.
	logger   *zap.Logger

	store *alias.Store
}

// NewService creates a new alias management service.
// It panics if repo or defs is nil. executor and logger may be nil.
func NewService(
	repo ports.AliasRepository,
	defs ports.ShellDefinitionsWriter,
	executor ports.CommandExecutor,
	logger *zap.Logger,
) ports.AliasManagementService {
	if repo == nil {
		panic("aliasRepository cannot be nil")
	}
	if defs == nil {
		panic("shellDefinitionsWriter cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, defs: defs, executor: executor, logger: logger}
}

// Load reads the persisted store into memory.
func (s *service) Load() error {
	store, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load alias store: %w", err)
	}
	s.store = store
	return nil
}

// ListEntries returns every entry ordered by name.
func (s *service) ListEntries() ([]alias.Entry, error) {
	if s.store == nil {
		return nil, ErrStoreNotLoaded
	}
	return s.store.Entries(), nil
}

// Search returns the entries tagged with at least one of tags.
func (s *service) Search(tags []string) ([]alias.Entry, error) {
	if s.store == nil {
		return nil, ErrStoreNotLoaded
	}
	names := s.store.FindByTags(tags)
	entries := make([]alias.Entry, 0, len(names))
	for _, name := range names {
		if e, ok := s.store.Get(name); ok {
			entries = append(entries, e)
		}
	}
	s.logger.Debug("searched aliases", zap.Strings("tags", tags), zap.Int("matches", len(entries)))
	return entries, nil
}

// Get returns the entry stored under name.
func (s *service) Get(name string) (alias.Entry, error) {
	if s.store == nil {
		return alias.Entry{}, ErrStoreNotLoaded
	}
	e, ok := s.store.Get(name)
	if !ok {
		return alias.Entry{}, fmt.Errorf("%w: '%s'", alias.ErrNotFound, name)
	}
	return e, nil
}

// AddAlias inserts e and persists both files.
func (s *service) AddAlias(e alias.Entry) error {
	if s.store == nil {
		return ErrStoreNotLoaded
	}
	if err := s.store.InsertIfAbsent(e); err != nil {
		return err
	}
	s.logger.Debug("inserted alias", zap.String("name", e.Name))
	if err := s.persist(); err != nil {
		_, _ = s.store.Remove(e.Name)
		return err
	}
	return nil
}

// RemoveAlias removes the entry stored under name and persists both files.
func (s *service) RemoveAlias(name string) (alias.Entry, error) {
	if s.store == nil {
		return alias.Entry{}, ErrStoreNotLoaded
	}
	removed, err := s.store.Remove(name)
	if err != nil {
		return alias.Entry{}, err
	}
	s.logger.Debug("removed alias", zap.String("name", name))
	if err := s.persist(); err != nil {
		s.store.Put(removed)
		return alias.Entry{}, err
	}
	return removed, nil
}

// WriteDefinitions re-renders the shell definitions file from the loaded store.
// The JSON store is left untouched.
func (s *service) WriteDefinitions() (string, error) {
	if s.store == nil {
		return "", ErrStoreNotLoaded
	}
	if err := s.defs.Write(s.store); err != nil {
		return "", err
	}
	return s.defs.Path(), nil
}

// CheckDefinitions runs `<shell> -n <definitions file>`, which parses the file
// without executing it.
func (s *service) CheckDefinitions(shellName string) error {
	if s.executor == nil {
		return ErrCheckUnavailable
	}
	_, stderr, err := s.executor.Execute(shellName, "-n", s.defs.Path())
	if err != nil {
		s.logger.Debug("shell syntax check failed", zap.String("shell", shellName), zap.String("stderr", stderr))
		return fmt.Errorf("shell definitions in %s do not parse: %w", s.defs.Path(), err)
	}
	return nil
}

// ImportAliases inserts the source's entries whose names are still free.
func (s *service) ImportAliases(src ports.AliasSource) (int, []string, error) {
	if s.store == nil {
		return 0, nil, ErrStoreNotLoaded
	}
	entries, err := src.LoadAliases()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read %s: %w", src.Describe(), err)
	}

	var inserted []string
	skipped := []string{}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			s.logger.Warn("skipping alias without a name", zap.String("source", src.Describe()), zap.String("command", e.Command))
			continue
		}
		if err := s.store.InsertIfAbsent(e); err != nil {
			if errors.Is(err, alias.ErrDuplicateName) {
				skipped = append(skipped, e.Name)
				continue
			}
			s.rollback(inserted)
			return 0, skipped, err
		}
		inserted = append(inserted, e.Name)
	}
	added := len(inserted)
	s.logger.Debug("imported aliases",
		zap.String("source", src.Describe()),
		zap.Int("added", added),
		zap.Int("skipped", len(skipped)))

	if added == 0 {
		return 0, skipped, nil
	}
	if err := s.persist(); err != nil {
		s.rollback(inserted)
		return 0, skipped, err
	}
	return added, skipped, nil
}

// StorePath returns the persisted store location.
func (s *service) StorePath() string {
	return s.repo.StorePath()
}

// DefinitionsPath returns the shell definitions file location.
func (s *service) DefinitionsPath() string {
	return s.defs.Path()
}

// rollback removes names inserted by an operation whose persist failed.
func (s *service) rollback(names []string) {
	for _, name := range names {
		_, _ = s.store.Remove(name)
	}
}

// persist saves the store, then regenerates the shell definitions from it.
func (s *service) persist() error {
	if err := s.repo.Save(s.store); err != nil {
		return err
	}
	if err := s.defs.Write(s.store); err != nil {
		return err
	}
	return nil
}
