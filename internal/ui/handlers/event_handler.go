package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/notify"
	"filegrip/internal/ui/state"
)

// ClearToastMsg dismisses the current toast
type ClearToastMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state          *state.AppState
	clearSelection func()
	reloadDir      func() tea.Cmd
	retryOp        func(kind domain.OpKind, paths []string, dest string, toTrash bool)
}

// NewEventHandler creates a new event handler. clearSelection is
// invoked when the displayed directory changes; reloadDir re-reads
// the current directory after an operation or watcher event; retryOp
// re-runs a failed batch operation on the paths that failed.
func NewEventHandler(appState *state.AppState, clearSelection func(), reloadDir func() tea.Cmd,
	retryOp func(kind domain.OpKind, paths []string, dest string, toTrash bool)) *EventHandler {
	return &EventHandler{
		state:          appState,
		clearSelection: clearSelection,
		reloadDir:      reloadDir,
		retryOp:        retryOp,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DirLoadedEvent:
		dirChanged := e.Dir != h.state.CurrentDir
		h.state.SetListing(e.Dir, e.Entries)
		h.state.StatusMessage = ""
		if dirChanged {
			// A fresh directory starts with nothing selected
			h.clearSelection()
			h.state.RangeAnchor = ""
			h.state.CursorIndex = 0
			h.state.ViewportOffset = 0
		}

	case eventbus.DirChangedEvent:
		// Watcher noticed a change on disk; reload if it is the
		// directory we are showing
		if e.Dir == h.state.CurrentDir {
			return h.reloadDir()
		}

	case eventbus.OpCompletedEvent:
		h.state.OpRunning = false
		h.state.StatusMessage = ""

		n := notify.FromOpResult(e.Kind, e.Done, e.Failures)
		if len(e.Failures) > 0 && h.retryOp != nil {
			failed := make([]string, 0, len(e.Failures))
			for _, f := range e.Failures {
				failed = append(failed, f.Path)
			}
			kind, dest, toTrash := e.Kind, e.Dest, e.ToTrash
			n.Retry = func() { h.retryOp(kind, failed, dest, toTrash) }
		}
		h.state.SetToast(n)

		// A failure toast stays up so the retry offer is not yanked away
		cmds := []tea.Cmd{h.reloadDir()}
		if len(e.Failures) == 0 {
			cmds = append(cmds, clearToastLater())
		}
		return tea.Batch(cmds...)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		if e.Err != nil {
			h.state.SetToast(notify.FromError(e.Message, e.Err))
			return clearToastLater()
		}

	case eventbus.WatchStartedEvent:
		// Nothing to show; the watcher works silently

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = "Settings saved"
	}

	return nil
}

func clearToastLater() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return ClearToastMsg{}
	})
}
