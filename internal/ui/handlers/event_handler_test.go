package handlers

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/notify"
	"filegrip/internal/ui/state"
)

type handlerFixture struct {
	state        *state.AppState
	handler      *EventHandler
	cleared      int
	reloaded     int
	retriedKind  domain.OpKind
	retriedPaths []string
	retriedDest  string
	retriedTrash bool
}

func newFixture() *handlerFixture {
	f := &handlerFixture{state: state.NewAppState()}
	f.handler = NewEventHandler(f.state,
		func() { f.cleared++ },
		func() tea.Cmd {
			f.reloaded++
			return func() tea.Msg { return nil }
		},
		func(kind domain.OpKind, paths []string, dest string, toTrash bool) {
			f.retriedKind = kind
			f.retriedPaths = paths
			f.retriedDest = dest
			f.retriedTrash = toTrash
		})
	return f
}

func TestDirLoadedResetsOnDirectoryChange(t *testing.T) {
	f := newFixture()
	f.state.SetListing("/old", []domain.FileEntry{{Path: "/old/a", Name: "a"}})
	f.state.CursorIndex = 0
	f.state.RangeAnchor = "/old/a"

	f.handler.HandleEvent(eventbus.DirLoadedEvent{
		Dir:     "/new",
		Entries: []domain.FileEntry{{Path: "/new/x", Name: "x"}},
	})

	assert.Equal(t, "/new", f.state.CurrentDir)
	assert.Equal(t, 1, f.cleared)
	assert.Equal(t, "", f.state.RangeAnchor)
	assert.Equal(t, 0, f.state.CursorIndex)
}

func TestDirLoadedSameDirKeepsSelection(t *testing.T) {
	f := newFixture()
	f.state.SetListing("/d", []domain.FileEntry{{Path: "/d/a", Name: "a"}})

	f.handler.HandleEvent(eventbus.DirLoadedEvent{
		Dir:     "/d",
		Entries: []domain.FileEntry{{Path: "/d/a", Name: "a"}, {Path: "/d/b", Name: "b"}},
	})

	assert.Equal(t, 0, f.cleared)
	assert.Len(t, f.state.Entries, 2)
}

func TestDirChangedReloadsCurrentDirOnly(t *testing.T) {
	f := newFixture()
	f.state.CurrentDir = "/d"

	f.handler.HandleEvent(eventbus.DirChangedEvent{Dir: "/elsewhere"})
	assert.Equal(t, 0, f.reloaded)

	cmd := f.handler.HandleEvent(eventbus.DirChangedEvent{Dir: "/d"})
	assert.Equal(t, 1, f.reloaded)
	assert.NotNil(t, cmd)
}

func TestOpCompletedSuccessToast(t *testing.T) {
	f := newFixture()
	f.state.OpRunning = true

	cmd := f.handler.HandleEvent(eventbus.OpCompletedEvent{Kind: domain.OpCopy, Done: 2})

	assert.False(t, f.state.OpRunning)
	require.NotNil(t, f.state.Toast)
	assert.Equal(t, notify.SeverityInfo, f.state.Toast.Severity)
	assert.False(t, f.state.Toast.CanRetry())
	assert.NotNil(t, cmd)
}

func TestOpCompletedFailureOffersRetry(t *testing.T) {
	f := newFixture()

	f.handler.HandleEvent(eventbus.OpCompletedEvent{
		Kind: domain.OpMove,
		Done: 1,
		Failures: []domain.OpFailure{
			{Path: "/d/a", Err: errors.New("permission denied")},
			{Path: "/d/b", Err: errors.New("permission denied")},
		},
		Dest: "/dest",
	})

	require.NotNil(t, f.state.Toast)
	assert.Equal(t, notify.SeverityError, f.state.Toast.Severity)
	require.True(t, f.state.Toast.CanRetry())

	f.state.Toast.Retry()
	assert.Equal(t, domain.OpMove, f.retriedKind)
	assert.ElementsMatch(t, []string{"/d/a", "/d/b"}, f.retriedPaths)
	assert.Equal(t, "/dest", f.retriedDest)
}

func TestOpCompletedDeleteRetryKeepsTrashSetting(t *testing.T) {
	f := newFixture()

	f.handler.HandleEvent(eventbus.OpCompletedEvent{
		Kind:     domain.OpDelete,
		Failures: []domain.OpFailure{{Path: "/d/a", Err: errors.New("busy")}},
		ToTrash:  true,
	})

	require.NotNil(t, f.state.Toast)
	require.True(t, f.state.Toast.CanRetry())

	f.state.Toast.Retry()
	assert.Equal(t, domain.OpDelete, f.retriedKind)
	assert.True(t, f.retriedTrash)
}

func TestErrorEventSetsStatusAndToast(t *testing.T) {
	f := newFixture()

	f.handler.HandleEvent(eventbus.ErrorEvent{Message: "Could not open /d/a", Err: errors.New("boom")})

	assert.Contains(t, f.state.StatusMessage, "Could not open /d/a")
	require.NotNil(t, f.state.Toast)
	assert.Equal(t, notify.SeverityError, f.state.Toast.Severity)
}
