package files

import (
	"filegrip/internal/domain"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/state"
)

// EntryStore provides read-only access to directory and selection
// data for the view layer.
type EntryStore interface {
	// Directory queries
	GetCurrentDir() string
	GetEntry(path string) (*domain.FileEntry, bool)
	GetVisibleEntries() []string
	GetEntryCount() int
	IsLoading() bool

	// Cursor queries
	GetCursorIndex() int
	GetRangeAnchor() string

	// Selection queries
	IsEntrySelected(path string) bool
	GetSelectionCount() int
	IsAllSelected() bool

	// UI state queries
	GetStatusMessage() string
	GetFilterQuery() string
	IsFiltered() bool
	ShowSizes() bool
}

// StateEntryStore implements EntryStore using AppState and the
// selection service.
type StateEntryStore struct {
	state     *state.AppState
	selection *selection.Service
}

// NewStateEntryStore creates a new entry store
func NewStateEntryStore(appState *state.AppState, sel *selection.Service) *StateEntryStore {
	return &StateEntryStore{
		state:     appState,
		selection: sel,
	}
}

// Directory queries
func (s *StateEntryStore) GetCurrentDir() string {
	return s.state.CurrentDir
}

func (s *StateEntryStore) GetEntry(path string) (*domain.FileEntry, bool) {
	return s.state.GetEntry(path)
}

func (s *StateEntryStore) GetVisibleEntries() []string {
	return s.state.VisibleEntries()
}

func (s *StateEntryStore) GetEntryCount() int {
	return len(s.state.VisibleEntries())
}

func (s *StateEntryStore) IsLoading() bool {
	return s.state.Loading
}

// Cursor queries
func (s *StateEntryStore) GetCursorIndex() int {
	return s.state.CursorIndex
}

func (s *StateEntryStore) GetRangeAnchor() string {
	return s.state.RangeAnchor
}

// Selection queries
func (s *StateEntryStore) IsEntrySelected(path string) bool {
	return s.selection.IsSelected(path)
}

func (s *StateEntryStore) GetSelectionCount() int {
	return s.selection.Count()
}

func (s *StateEntryStore) IsAllSelected() bool {
	visible := s.state.VisibleEntries()
	entries := make([]domain.FileEntry, 0, len(visible))
	for _, path := range visible {
		if entry, ok := s.state.GetEntry(path); ok {
			entries = append(entries, *entry)
		}
	}
	return s.selection.IsAllSelected(entries)
}

// UI state queries
func (s *StateEntryStore) GetStatusMessage() string {
	return s.state.StatusMessage
}

func (s *StateEntryStore) GetFilterQuery() string {
	return s.state.FilterQuery
}

func (s *StateEntryStore) IsFiltered() bool {
	return s.state.IsFiltered
}

func (s *StateEntryStore) ShowSizes() bool {
	return s.state.ShowSizes
}
