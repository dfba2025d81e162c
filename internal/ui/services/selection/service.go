package selection

import (
	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

// Service is the single source of truth for which entries are
// selected, decoupled from rendering. Identifiers are entry paths;
// the service never validates them against the listing, so stale
// identifiers sit in the set harmlessly until a caller drops them.
//
// All mutations are total functions: there are no error returns
// anywhere in this package.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Selected: make(map[string]bool),
		},
		bus: bus,
	}
}

// Toggle flips membership of id: absent becomes present, present
// becomes absent. Unknown identifiers are inserted like any other.
func (s *Service) Toggle(id string) {
	var added, removed []string

	if s.state.Selected[id] {
		delete(s.state.Selected, id)
		removed = append(removed, id)
	} else {
		s.state.Selected[id] = true
		added = append(added, id)
	}

	s.publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Selected),
	})
}

// SelectAll replaces the selection with every identifier in the
// caller-supplied listing. Idempotent.
func (s *Service) SelectAll(entries []domain.FileEntry) {
	s.state.Selected = make(map[string]bool, len(entries))
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		s.state.Selected[entry.ID()] = true
		paths = append(paths, entry.ID())
	}

	s.publish(eventbus.AllSelectedEvent{Paths: paths})
}

// Clear empties the selection unconditionally. Idempotent.
func (s *Service) Clear() {
	s.state.Selected = make(map[string]bool)

	s.publish(eventbus.SelectionClearedEvent{})
}

// SelectRange adds every identifier between the two anchors to the
// selection. Anchor positions are resolved by scanning the supplied
// listing (first match); if either anchor is absent the call is a
// silent no-op, since an anchor may reference an entry that left the
// listing after it was selected. The range is a union with the
// existing selection, so a prior discontiguous selection survives.
func (s *Service) SelectRange(startID, endID string, entries []domain.FileEntry) {
	startIdx, endIdx := -1, -1
	for i, entry := range entries {
		if startIdx < 0 && entry.ID() == startID {
			startIdx = i
		}
		if endIdx < 0 && entry.ID() == endID {
			endIdx = i
		}
		if startIdx >= 0 && endIdx >= 0 {
			break
		}
	}
	if startIdx < 0 || endIdx < 0 {
		return
	}

	lo, hi := startIdx, endIdx
	if lo > hi {
		lo, hi = hi, lo
	}

	var added []string
	for i := lo; i <= hi; i++ {
		id := entries[i].ID()
		if !s.state.Selected[id] {
			s.state.Selected[id] = true
			added = append(added, id)
		}
	}

	if len(added) > 0 {
		s.publish(eventbus.SelectionChangedEvent{
			Added: added,
			Total: len(s.state.Selected),
		})
	}
}

// IsSelected checks if an identifier is selected
func (s *Service) IsSelected(id string) bool {
	return s.state.Selected[id]
}

// Selected returns a snapshot of all selected identifiers
func (s *Service) Selected() []string {
	paths := make([]string, 0, len(s.state.Selected))
	for id := range s.state.Selected {
		paths = append(paths, id)
	}
	return paths
}

// Count returns the number of selected identifiers
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Selected) > 0
}

// IsAllSelected reports whether the selection equals the set of
// identifiers in the supplied listing. Always recomputed, never
// cached, so it cannot drift after the listing changes.
func (s *Service) IsAllSelected(entries []domain.FileEntry) bool {
	if len(entries) == 0 || len(s.state.Selected) != len(entries) {
		return false
	}
	for _, entry := range entries {
		if !s.state.Selected[entry.ID()] {
			return false
		}
	}
	return true
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
