package input

import (
	"filegrip/internal/ui/files"
	"filegrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Store files.EntryStore
}

// CurrentIndex returns the cursor index
func (c *ModelContext) CurrentIndex() int {
	return c.State.CursorIndex
}

// TotalItems returns the number of visible entries
func (c *ModelContext) TotalItems() int {
	return len(c.State.VisibleEntries())
}

// HasSelection returns true if any entries are selected
func (c *ModelContext) HasSelection() bool {
	return c.Store.GetSelectionCount() > 0
}

// SelectedCount returns the number of selected entries
func (c *ModelContext) SelectedCount() int {
	return c.Store.GetSelectionCount()
}

// AllSelected reports whether every visible entry is selected
func (c *ModelContext) AllSelected() bool {
	return c.Store.IsAllSelected()
}

// CurrentEntryPath returns the path under the cursor
func (c *ModelContext) CurrentEntryPath() string {
	entry := c.State.EntryAtCursor()
	if entry == nil {
		return ""
	}
	return entry.Path
}

// IsOnDir returns true if the cursor is on a directory
func (c *ModelContext) IsOnDir() bool {
	entry := c.State.EntryAtCursor()
	return entry != nil && entry.IsDir
}

// HasRangeAnchor reports whether a range anchor is set
func (c *ModelContext) HasRangeAnchor() bool {
	return c.State.RangeAnchor != ""
}

// FilterQuery returns the active filter query
func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}
