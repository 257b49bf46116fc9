package alias

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateName is returned when inserting a name the store already holds.
var ErrDuplicateName = errors.New("alias already exists")

// ErrNotFound is returned when no entry is stored under the requested name.
var ErrNotFound = errors.New("alias not found")

/*
Store is the in-memory collection of entries for one run, keyed by name.
Every stored entry's Name equals its key. A Store is not safe for concurrent use.
*/
type Store struct {
	entries map[string]Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get looks up the entry stored under name.
func (s *Store) Get(name string) (Entry, bool) {
	e, ok := s.entries[name]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// InsertIfAbsent adds e under e.Name. The store is left unchanged and
// ErrDuplicateName is returned if that name is already taken.
func (s *Store) InsertIfAbsent(e Entry) error {
	if _, exists := s.entries[e.Name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateName, e.Name)
	}
	s.entries[e.Name] = e.clone()
	return nil
}

// Put stores e under e.Name, replacing any entry already there.
func (s *Store) Put(e Entry) {
	s.entries[e.Name] = e.clone()
}

// Remove deletes the entry stored under name and returns it.
func (s *Store) Remove(name string) (Entry, error) {
	e, ok := s.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	delete(s.entries, name)
	return e, nil
}

// Names returns every stored name in ascending order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns copies of every stored entry ordered by name.
func (s *Store) Entries() []Entry {
	names := s.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, s.entries[name].clone())
	}
	return entries
}

/*
FindByTags returns the names of all entries carrying at least one tag that is
exactly equal to one of searchTags. Each matching name is reported once, in
ascending order. No tags means no matches.
*/
func (s *Store) FindByTags(searchTags []string) []string {
	matched := []string{}
	if len(searchTags) == 0 {
		return matched
	}

	for _, name := range s.Names() {
		entry := s.entries[name]
		for _, tag := range searchTags {
			if entry.HasTag(tag) {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched
}
