package state

import (
	"filegrip/internal/domain"
	"filegrip/internal/notify"
)

// PendingOp is a file operation waiting for user input (confirmation
// or a destination path) before it runs.
type PendingOp struct {
	Kind  domain.OpKind
	Paths []string
}

// AppState contains all the application state
type AppState struct {
	// Directory data
	CurrentDir     string
	Entries        map[string]*domain.FileEntry // path -> entry
	OrderedEntries []string                     // ordered entry paths for display
	Loading        bool

	// Cursor and range anchor
	CursorIndex int
	RangeAnchor string // entry path the next range select starts from, "" when unset

	// Pending operation (confirm/destination prompts)
	Pending *PendingOp

	// Operation in flight
	OpRunning bool

	// UI state
	ViewportOffset int
	ViewportHeight int
	Width          int
	StatusMessage  string
	Toast          *notify.Notification

	// Filter state
	FilterQuery string
	IsFiltered  bool
	FilterHits  []string // ordered entry paths matching the filter

	// Settings mirrored from config
	ShowHidden    bool
	ShowSizes     bool
	ConfirmDelete bool
	DeleteToTrash bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Entries:        make(map[string]*domain.FileEntry),
		OrderedEntries: make([]string, 0),
		ViewportHeight: 20, // Default
		ShowSizes:      true,
		ConfirmDelete:  true,
		DeleteToTrash:  true,
	}
}

// Directory operations

// SetListing replaces the displayed listing with a fresh one. The
// cursor is clamped into the new listing; the range anchor survives
// only if its entry still exists.
func (s *AppState) SetListing(dir string, entries []domain.FileEntry) {
	s.CurrentDir = dir
	s.Entries = make(map[string]*domain.FileEntry, len(entries))
	s.OrderedEntries = make([]string, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		s.Entries[entry.Path] = &entry
		s.OrderedEntries = append(s.OrderedEntries, entry.Path)
	}
	s.Loading = false

	if s.CursorIndex >= len(s.OrderedEntries) {
		s.CursorIndex = len(s.OrderedEntries) - 1
	}
	if s.CursorIndex < 0 {
		s.CursorIndex = 0
	}
	if _, ok := s.Entries[s.RangeAnchor]; !ok {
		s.RangeAnchor = ""
	}
	s.reapplyFilter()
}

// GetEntry retrieves an entry by path
func (s *AppState) GetEntry(path string) (*domain.FileEntry, bool) {
	entry, ok := s.Entries[path]
	return entry, ok
}

// VisibleEntries returns the paths currently shown, honoring the
// active filter.
func (s *AppState) VisibleEntries() []string {
	if s.IsFiltered {
		return s.FilterHits
	}
	return s.OrderedEntries
}

// EntryAtCursor returns the entry under the cursor, or nil when the
// listing is empty.
func (s *AppState) EntryAtCursor() *domain.FileEntry {
	visible := s.VisibleEntries()
	if s.CursorIndex < 0 || s.CursorIndex >= len(visible) {
		return nil
	}
	return s.Entries[visible[s.CursorIndex]]
}

// MoveCursor moves the cursor by delta, clamped to the visible listing
func (s *AppState) MoveCursor(delta int) {
	visible := s.VisibleEntries()
	s.CursorIndex += delta
	if s.CursorIndex < 0 {
		s.CursorIndex = 0
	}
	if s.CursorIndex >= len(visible) {
		s.CursorIndex = len(visible) - 1
	}
	if s.CursorIndex < 0 {
		s.CursorIndex = 0
	}
	s.scrollToCursor()
}

// CursorToStart moves the cursor to the first entry
func (s *AppState) CursorToStart() {
	s.CursorIndex = 0
	s.scrollToCursor()
}

// CursorToEnd moves the cursor to the last entry
func (s *AppState) CursorToEnd() {
	visible := s.VisibleEntries()
	if len(visible) > 0 {
		s.CursorIndex = len(visible) - 1
	}
	s.scrollToCursor()
}

func (s *AppState) scrollToCursor() {
	if s.CursorIndex < s.ViewportOffset {
		s.ViewportOffset = s.CursorIndex
	}
	if s.CursorIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.CursorIndex - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// Filter operations

// SetFilter activates a filter with the given query and ordered hits
func (s *AppState) SetFilter(query string, hits []string) {
	s.FilterQuery = query
	s.FilterHits = hits
	s.IsFiltered = query != ""
	if s.CursorIndex >= len(s.VisibleEntries()) {
		s.CursorIndex = 0
	}
	s.ViewportOffset = 0
}

// ClearFilter removes the active filter
func (s *AppState) ClearFilter() {
	s.FilterQuery = ""
	s.FilterHits = nil
	s.IsFiltered = false
	if s.CursorIndex >= len(s.OrderedEntries) {
		s.CursorIndex = 0
	}
}

// reapplyFilter drops filter hits that left the listing. The query
// itself is kept; the model re-runs the match on the next change.
func (s *AppState) reapplyFilter() {
	if !s.IsFiltered {
		return
	}
	hits := make([]string, 0, len(s.FilterHits))
	for _, path := range s.FilterHits {
		if _, ok := s.Entries[path]; ok {
			hits = append(hits, path)
		}
	}
	s.FilterHits = hits
}

// Notification operations

// SetToast replaces the current toast
func (s *AppState) SetToast(n notify.Notification) {
	s.Toast = &n
}

// ClearToast dismisses the current toast
func (s *AppState) ClearToast() {
	s.Toast = nil
}
