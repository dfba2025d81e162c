package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

func entries(ids ...string) []domain.FileEntry {
	out := make([]domain.FileEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.FileEntry{Path: id, Name: id})
	}
	return out
}

func TestToggleAddsAndRemoves(t *testing.T) {
	svc := NewService(nil)

	svc.Toggle("/tmp/a")
	assert.True(t, svc.IsSelected("/tmp/a"))
	assert.Equal(t, 1, svc.Count())

	svc.Toggle("/tmp/a")
	assert.False(t, svc.IsSelected("/tmp/a"))
	assert.Equal(t, 0, svc.Count())
}

func TestToggleUnknownIdentifier(t *testing.T) {
	svc := NewService(nil)

	// Identifiers are not validated against any listing
	svc.Toggle("/nowhere/ghost")
	assert.True(t, svc.IsSelected("/nowhere/ghost"))
	assert.Equal(t, 1, svc.Count())
}

func TestSelectAllReplacesSelection(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b", "/d/c")

	svc.Toggle("/d/stale")
	svc.SelectAll(listing)

	assert.Equal(t, len(listing), svc.Count())
	assert.False(t, svc.IsSelected("/d/stale"))
	for _, e := range listing {
		assert.True(t, svc.IsSelected(e.ID()))
	}
}

func TestSelectAllIsIdempotent(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b")

	svc.SelectAll(listing)
	svc.SelectAll(listing)

	assert.Equal(t, 2, svc.Count())
	assert.True(t, svc.IsAllSelected(listing))
}

func TestClearEmptiesSelection(t *testing.T) {
	svc := NewService(nil)
	svc.SelectAll(entries("/d/a", "/d/b"))

	svc.Clear()
	assert.Equal(t, 0, svc.Count())
	assert.False(t, svc.HasSelection())

	// Clearing an empty selection is a no-op
	svc.Clear()
	assert.Equal(t, 0, svc.Count())
}

func TestSelectRangeForward(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b", "/d/c", "/d/d")

	svc.SelectRange("/d/b", "/d/d", listing)

	assert.False(t, svc.IsSelected("/d/a"))
	assert.True(t, svc.IsSelected("/d/b"))
	assert.True(t, svc.IsSelected("/d/c"))
	assert.True(t, svc.IsSelected("/d/d"))
	assert.Equal(t, 3, svc.Count())
}

func TestSelectRangeIsSymmetric(t *testing.T) {
	listing := entries("/d/a", "/d/b", "/d/c", "/d/d", "/d/e")

	forward := NewService(nil)
	forward.SelectRange("/d/b", "/d/d", listing)

	backward := NewService(nil)
	backward.SelectRange("/d/d", "/d/b", listing)

	assert.ElementsMatch(t, forward.Selected(), backward.Selected())
}

func TestSelectRangeSingleEntry(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b", "/d/c")

	svc.SelectRange("/d/b", "/d/b", listing)

	assert.Equal(t, 1, svc.Count())
	assert.True(t, svc.IsSelected("/d/b"))
}

func TestSelectRangeMissingAnchorIsNoOp(t *testing.T) {
	listing := entries("/d/a", "/d/b", "/d/c")

	cases := []struct {
		name           string
		startID, endID string
	}{
		{"missing start", "/d/gone", "/d/b"},
		{"missing end", "/d/a", "/d/gone"},
		{"both missing", "/d/x", "/d/y"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(nil)
			svc.Toggle("/d/a")

			svc.SelectRange(tc.startID, tc.endID, listing)

			assert.Equal(t, 1, svc.Count())
			assert.True(t, svc.IsSelected("/d/a"))
		})
	}
}

func TestSelectRangeUnionsWithExisting(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b", "/d/c", "/d/d", "/d/e")

	svc.Toggle("/d/e")
	svc.SelectRange("/d/a", "/d/b", listing)

	assert.Equal(t, 3, svc.Count())
	assert.True(t, svc.IsSelected("/d/e"))
}

func TestSelectRangeIsIdempotent(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b", "/d/c")

	svc.SelectRange("/d/a", "/d/c", listing)
	svc.SelectRange("/d/a", "/d/c", listing)

	assert.Equal(t, 3, svc.Count())
}

func TestIsAllSelected(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b")

	assert.False(t, svc.IsAllSelected(listing))

	svc.Toggle("/d/a")
	assert.False(t, svc.IsAllSelected(listing))

	svc.Toggle("/d/b")
	assert.True(t, svc.IsAllSelected(listing))

	// An empty listing is never "all selected"
	assert.False(t, svc.IsAllSelected(nil))
}

func TestIsAllSelectedWithStaleIdentifier(t *testing.T) {
	svc := NewService(nil)
	listing := entries("/d/a", "/d/b")

	svc.Toggle("/d/a")
	svc.Toggle("/d/stale")

	// Count matches the listing length but the sets differ
	assert.False(t, svc.IsAllSelected(listing))
}

func TestSelectedReturnsSnapshot(t *testing.T) {
	svc := NewService(nil)
	svc.Toggle("/d/a")
	svc.Toggle("/d/b")

	snapshot := svc.Selected()
	svc.Clear()

	assert.ElementsMatch(t, []string{"/d/a", "/d/b"}, snapshot)
}

func TestPublishesSelectionEvents(t *testing.T) {
	bus := eventbus.New()
	svc := NewService(bus)

	changed := make(chan eventbus.SelectionChangedEvent, 8)
	cleared := make(chan struct{}, 8)
	all := make(chan eventbus.AllSelectedEvent, 8)

	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		changed <- e.(eventbus.SelectionChangedEvent)
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		cleared <- struct{}{}
	})
	bus.Subscribe(eventbus.EventAllSelected, func(e eventbus.DomainEvent) {
		all <- e.(eventbus.AllSelectedEvent)
	})

	svc.Toggle("/d/a")
	select {
	case e := <-changed:
		assert.Equal(t, []string{"/d/a"}, e.Added)
		assert.Equal(t, 1, e.Total)
	case <-time.After(time.Second):
		require.Fail(t, "no SelectionChanged event received")
	}

	svc.SelectAll(entries("/d/a", "/d/b"))
	select {
	case e := <-all:
		assert.ElementsMatch(t, []string{"/d/a", "/d/b"}, e.Paths)
	case <-time.After(time.Second):
		require.Fail(t, "no AllSelected event received")
	}

	svc.Clear()
	select {
	case <-cleared:
	case <-time.After(time.Second):
		require.Fail(t, "no SelectionCleared event received")
	}
}
