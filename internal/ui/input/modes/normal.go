package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.ParentDirAction{}}, true

	case tea.KeyRight:
		if ctx.IsOnDir() {
			return []types.Action{types.EnterEntryAction{}}, true
		}
		return nil, false

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.CurrentEntryPath() != "" {
			return []types.Action{types.EnterEntryAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.ParentDirAction{}}, true

	case "l":
		if ctx.IsOnDir() {
			return []types.Action{types.EnterEntryAction{}}, true
		}
		return nil, false

	case " ":
		// Space toggles selection of the entry under the cursor
		if ctx.CurrentEntryPath() != "" {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, false

	case "v", "V":
		// Range select: first press drops the anchor, second extends
		if ctx.CurrentEntryPath() != "" {
			return []types.Action{types.RangeSelectAction{}}, true
		}
		return nil, false

	case "a", "A":
		// Toggle select all
		if ctx.AllSelected() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return []types.Action{types.SelectAllAction{}}, true

	case "m", "M":
		// Move selection (destination prompt follows)
		if ctx.HasSelection() {
			return []types.Action{types.MoveAction{}}, true
		}
		return nil, false

	case "c", "C":
		// Copy selection
		if ctx.HasSelection() {
			return []types.Action{types.CopyAction{}}, true
		}
		return nil, false

	case "d", "D":
		// Delete selection
		if ctx.HasSelection() {
			return []types.Action{types.DeleteAction{}}, true
		}
		return nil, false

	case "y", "Y":
		// Yank selected paths to the clipboard
		if ctx.HasSelection() {
			return []types.Action{types.CopyPathsAction{}}, true
		}
		return nil, false

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "R":
		return []types.Action{types.RetryAction{}}, true

	case ".":
		return []types.Action{types.ToggleHiddenAction{}}, true

	case "s":
		return []types.Action{types.ToggleSizesAction{}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear filter first, then selection
		if ctx.FilterQuery() != "" {
			return []types.Action{types.CancelTextAction{}}, true
		}
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true // consume the key but don't do anything

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
