package toolbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Action identifies one of the toolbar's buttons
type Action int

const (
	ActionSelectAll Action = iota
	ActionClear
	ActionMove
	ActionCopy
	ActionDelete
)

// String returns the button label for the action
func (a Action) String() string {
	switch a {
	case ActionSelectAll:
		return "select all"
	case ActionClear:
		return "clear"
	case ActionMove:
		return "move"
	case ActionCopy:
		return "copy"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Props is the read-only snapshot the toolbar derives everything
// from. The toolbar holds no selection state of its own.
type Props struct {
	SelectedCount int
	TotalCount    int
	AllSelected   bool
}

// Callbacks wires each button to the action it invokes. Every
// callback takes no arguments: the receiving side already knows the
// current selection.
type Callbacks struct {
	SelectAll func()
	Clear     func()
	Move      func()
	Copy      func()
	Delete    func()
}

// Styles for the toolbar row
type Styles struct {
	Bar    lipgloss.Style
	Count  lipgloss.Style
	Button lipgloss.Style
	Danger lipgloss.Style
}

// NewStyles creates toolbar styles with default values
func NewStyles() Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Count:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Button: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// slideFrames is how many animation ticks the entrance takes. The
// animation is cosmetic only; visibility and button dispatch follow
// the selection count directly.
const slideFrames = 4

// Toolbar is the contextual action bar shown while a selection is
// active. It is hidden whenever the selection is empty and never
// consults the filesystem or the selection store itself.
type Toolbar struct {
	props     Props
	callbacks Callbacks
	styles    Styles
	visible   bool
	frame     int
}

// New creates a hidden toolbar
func New(callbacks Callbacks) *Toolbar {
	return &Toolbar{
		callbacks: callbacks,
		styles:    NewStyles(),
	}
}

// SetProps updates the toolbar's snapshot and recomputes visibility.
// Going from hidden to visible restarts the entrance animation.
func (t *Toolbar) SetProps(props Props) {
	t.props = props

	wasVisible := t.visible
	t.visible = props.SelectedCount > 0
	if t.visible && !wasVisible {
		t.frame = 0
	}
	if !t.visible {
		t.frame = 0
	}
}

// Props returns the current snapshot
func (t *Toolbar) Props() Props { return t.props }

// Visible reports whether the toolbar is shown
func (t *Toolbar) Visible() bool { return t.visible }

// Tick advances the entrance animation one frame
func (t *Toolbar) Tick() {
	if t.visible && t.frame < slideFrames {
		t.frame++
	}
}

// Animating reports whether the entrance animation is still running
func (t *Toolbar) Animating() bool {
	return t.visible && t.frame < slideFrames
}

// Actions returns the buttons currently offered, in display order.
// Select-all disappears once everything is already selected; the
// rest are always available while the toolbar is visible.
func (t *Toolbar) Actions() []Action {
	if !t.visible {
		return nil
	}

	actions := make([]Action, 0, 5)
	if !t.props.AllSelected {
		actions = append(actions, ActionSelectAll)
	}
	actions = append(actions, ActionClear, ActionMove, ActionCopy, ActionDelete)
	return actions
}

// Trigger invokes the callback for the given action. Triggering an
// action that is not currently offered is a no-op, so a key pressed
// just as the toolbar hides cannot fire a stale callback.
func (t *Toolbar) Trigger(action Action) {
	offered := false
	for _, a := range t.Actions() {
		if a == action {
			offered = true
			break
		}
	}
	if !offered {
		return
	}

	var cb func()
	switch action {
	case ActionSelectAll:
		cb = t.callbacks.SelectAll
	case ActionClear:
		cb = t.callbacks.Clear
	case ActionMove:
		cb = t.callbacks.Move
	case ActionCopy:
		cb = t.callbacks.Copy
	case ActionDelete:
		cb = t.callbacks.Delete
	}
	if cb != nil {
		cb()
	}
}

var actionKeys = map[Action]string{
	ActionSelectAll: "a",
	ActionClear:     "esc",
	ActionMove:      "m",
	ActionCopy:      "c",
	ActionDelete:    "d",
}

// View renders the toolbar row, or an empty string while hidden
func (t *Toolbar) View() string {
	if !t.visible {
		return ""
	}

	label := fmt.Sprintf("%d selected", t.props.SelectedCount)
	if t.props.AllSelected {
		label += " (all)"
	}
	count := t.styles.Count.Render(label)

	parts := []string{count}
	for _, action := range t.Actions() {
		style := t.styles.Button
		if action == ActionDelete {
			style = t.styles.Danger
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s] %s", actionKeys[action], action)))
	}

	bar := t.styles.Bar.Render(strings.Join(parts, "  "))

	// Entrance animation reveals the bar from the left
	if t.frame < slideFrames {
		width := lipgloss.Width(bar) * (t.frame + 1) / (slideFrames + 1)
		if width <= 0 {
			return ""
		}
		return lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}
