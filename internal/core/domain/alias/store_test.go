package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, entries ...Entry) *Store {
	t.Helper()
	s := NewStore()
	for _, e := range entries {
		require.NoError(t, s.InsertIfAbsent(e))
	}
	return s
}

func TestStore_InsertIfAbsent(t *testing.T) {
	t.Run("inserted entry is retrievable", func(t *testing.T) {
		s := NewStore()
		e := Entry{Name: "ll", Command: "ls -la", Description: "long list", Tags: []string{"fs", "ls"}}

		require.NoError(t, s.InsertIfAbsent(e))

		got, ok := s.Get("ll")
		require.True(t, ok)
		assert.Equal(t, e, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("duplicate name is rejected and first entry kept", func(t *testing.T) {
		first := Entry{Name: "gs", Command: "git status", Tags: []string{"git"}}
		s := newTestStore(t, first)

		err := s.InsertIfAbsent(Entry{Name: "gs", Command: "echo other", Description: "other"})

		require.ErrorIs(t, err, ErrDuplicateName)
		assert.Contains(t, err.Error(), "'gs'")
		got, ok := s.Get("gs")
		require.True(t, ok)
		assert.Equal(t, first, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("empty name and command are accepted as-is", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.InsertIfAbsent(Entry{}))
		_, ok := s.Get("")
		assert.True(t, ok)
	})
}

func TestStore_InsertDoesNotAliasCallerTags(t *testing.T) {
	tags := []string{"a", "b"}
	s := NewStore()
	require.NoError(t, s.InsertIfAbsent(Entry{Name: "x", Tags: tags}))

	tags[0] = "changed"
	got, _ := s.Get("x")
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	got.Tags[1] = "changed"
	again, _ := s.Get("x")
	assert.Equal(t, []string{"a", "b"}, again.Tags)
}

func TestStore_Put(t *testing.T) {
	s := newTestStore(t, Entry{Name: "dup", Command: "first"})
	s.Put(Entry{Name: "dup", Command: "second"})

	got, ok := s.Get("dup")
	require.True(t, ok)
	assert.Equal(t, "second", got.Command)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Remove(t *testing.T) {
	tests := []struct {
		name        string
		remove      string
		wantErr     error
		wantEntry   Entry
		wantLen     int
		stillStored []string
	}{
		{
			name:        "present name",
			remove:      "ll",
			wantEntry:   Entry{Name: "ll", Command: "ls -la", Tags: []string{"fs"}},
			wantLen:     1,
			stillStored: []string{"gs"},
		},
		{
			name:        "absent name",
			remove:      "nope",
			wantErr:     ErrNotFound,
			wantLen:     2,
			stillStored: []string{"gs", "ll"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t,
				Entry{Name: "ll", Command: "ls -la", Tags: []string{"fs"}},
				Entry{Name: "gs", Command: "git status", Tags: []string{"git"}},
			)

			got, err := s.Remove(tt.remove)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Entry{}, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantEntry, got)
				_, ok := s.Get(tt.remove)
				assert.False(t, ok)
			}
			assert.Equal(t, tt.wantLen, s.Len())
			assert.Equal(t, tt.stillStored, s.Names())
		})
	}
}

func TestStore_FindByTags(t *testing.T) {
	s := newTestStore(t,
		Entry{Name: "A", Tags: []string{"x", "y"}},
		Entry{Name: "B", Tags: []string{"y"}},
		Entry{Name: "C", Tags: []string{"z"}},
		Entry{Name: "D", Tags: []string{"Y", " y"}},
		Entry{Name: "E"},
	)

	tests := []struct {
		name       string
		searchTags []string
		want       []string
	}{
		{name: "shared tag", searchTags: []string{"y"}, want: []string{"A", "B"}},
		{name: "no search tags", searchTags: []string{}, want: []string{}},
		{name: "nil search tags", searchTags: nil, want: []string{}},
		{name: "unknown tag", searchTags: []string{"q"}, want: []string{}},
		{name: "entry matching several terms reported once", searchTags: []string{"x", "y"}, want: []string{"A", "B"}},
		{name: "repeated search term", searchTags: []string{"z", "z"}, want: []string{"C"}},
		{name: "case and whitespace sensitive", searchTags: []string{"Y"}, want: []string{"D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.FindByTags(tt.searchTags))
		})
	}
}

func TestStore_EntriesSortedByName(t *testing.T) {
	s := newTestStore(t,
		Entry{Name: "zz", Command: "z"},
		Entry{Name: "aa", Command: "a"},
		Entry{Name: "mm", Command: "m"},
	)

	assert.Equal(t, []string{"aa", "mm", "zz"}, s.Names())
	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Command)
	assert.Equal(t, "z", entries[2].Command)
}

func TestEntry_HasTag(t *testing.T) {
	e := Entry{Tags: []string{"git", "vcs"}}
	assert.True(t, e.HasTag("vcs"))
	assert.False(t, e.HasTag("Git"))
	assert.False(t, Entry{}.HasTag(""))
}
