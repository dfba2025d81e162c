package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/domain"
)

func buildEntries(names ...string) (map[string]*domain.FileEntry, []string) {
	entries := make(map[string]*domain.FileEntry, len(names))
	ordered := make([]string, 0, len(names))
	for _, name := range names {
		path := "/d/" + name
		entries[path] = &domain.FileEntry{Path: path, Name: name}
		ordered = append(ordered, path)
	}
	return entries, ordered
}

func TestMatchEmptyQueryReturnsAll(t *testing.T) {
	entries, ordered := buildEntries("alpha", "beta", "gamma")
	f := NewEntryFilter(entries)

	assert.Equal(t, ordered, f.Match("", ordered))
}

func TestMatchFuzzy(t *testing.T) {
	entries, ordered := buildEntries("notes.txt", "main.go", "Makefile")
	f := NewEntryFilter(entries)

	hits := f.Match("mgo", ordered)
	assert.Equal(t, []string{"/d/main.go"}, hits)
}

func TestMatchNoHits(t *testing.T) {
	entries, ordered := buildEntries("alpha", "beta")
	f := NewEntryFilter(entries)

	assert.Empty(t, f.Match("zzz", ordered))
}

func TestMatchSkipsUnknownPaths(t *testing.T) {
	entries, ordered := buildEntries("alpha")
	f := NewEntryFilter(entries)

	hits := f.Match("alpha", append(ordered, "/d/gone"))
	assert.Equal(t, []string{"/d/alpha"}, hits)
}
