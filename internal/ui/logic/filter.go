package logic

import (
	"github.com/sahilm/fuzzy"

	"filegrip/internal/domain"
)

// EntryFilter matches listing entries against a fuzzy query
type EntryFilter struct {
	entries map[string]*domain.FileEntry
}

// NewEntryFilter creates a new entry filter
func NewEntryFilter(entries map[string]*domain.FileEntry) *EntryFilter {
	return &EntryFilter{
		entries: entries,
	}
}

// Match returns the paths from ordered whose names fuzzy-match the
// query, best match first. An empty query matches everything in the
// original order.
func (f *EntryFilter) Match(query string, ordered []string) []string {
	if query == "" {
		return ordered
	}

	names := make([]string, 0, len(ordered))
	paths := make([]string, 0, len(ordered))
	for _, path := range ordered {
		entry, ok := f.entries[path]
		if !ok {
			continue
		}
		names = append(names, entry.Name)
		paths = append(paths, path)
	}

	matches := fuzzy.Find(query, names)
	hits := make([]string, 0, len(matches))
	for _, m := range matches {
		hits = append(hits, paths[m.Index])
	}
	return hits
}
