package files

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/domain"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/state"
)

func newStore() (*StateEntryStore, *state.AppState, *selection.Service) {
	appState := state.NewAppState()
	appState.SetListing("/d", []domain.FileEntry{
		{Path: "/d/a", Name: "a"},
		{Path: "/d/b", Name: "b"},
	})
	sel := selection.NewService(nil)
	return NewStateEntryStore(appState, sel), appState, sel
}

func TestStoreDirectoryQueries(t *testing.T) {
	store, appState, _ := newStore()

	assert.Equal(t, "/d", store.GetCurrentDir())
	assert.Equal(t, 2, store.GetEntryCount())
	assert.False(t, store.IsLoading())

	entry, ok := store.GetEntry("/d/a")
	assert.True(t, ok)
	assert.Equal(t, "a", entry.Name)

	appState.Loading = true
	assert.True(t, store.IsLoading())
}

func TestStoreSelectionQueries(t *testing.T) {
	store, _, sel := newStore()

	assert.False(t, store.IsEntrySelected("/d/a"))
	assert.Equal(t, 0, store.GetSelectionCount())
	assert.False(t, store.IsAllSelected())

	sel.Toggle("/d/a")
	assert.True(t, store.IsEntrySelected("/d/a"))
	assert.Equal(t, 1, store.GetSelectionCount())
	assert.False(t, store.IsAllSelected())

	sel.Toggle("/d/b")
	assert.True(t, store.IsAllSelected())
}

func TestStoreAllSelectedFollowsFilter(t *testing.T) {
	store, appState, sel := newStore()

	sel.Toggle("/d/a")
	appState.SetFilter("a", []string{"/d/a"})

	// Only the visible listing counts
	assert.True(t, store.IsAllSelected())

	appState.ClearFilter()
	assert.False(t, store.IsAllSelected())
}
