package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filegrip/internal/domain"
	"filegrip/internal/notify"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	CurrentDir   string
	Entries      map[string]*domain.FileEntry
	VisiblePaths []string
	Loading      bool

	CursorIndex    int
	ViewportOffset int
	ViewportHeight int

	Selected       map[string]bool
	SelectionCount int
	RangeAnchor    string

	OpRunning     bool
	StatusMessage string
	Toast         *notify.Notification

	FilterQuery string
	IsFiltered  bool

	InputMode  string // "filter", "destination", "confirm", "overwrite" or ""
	PromptText string
	TextInput  string

	// Pre-rendered toolbar line, empty while hidden
	ToolbarView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	entryRender *EntryRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showSizes bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		entryRender: NewEntryRenderer(styles, showSizes),
		popupRender: NewPopupRenderer(styles),
	}
}

// SetShowSizes toggles the size column
func (r *Renderer) SetShowSizes(show bool) {
	r.entryRender.SetShowSizes(show)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	// Prompt line for text modes; confirm/overwrite render as a modal
	switch state.InputMode {
	case "filter", "destination":
		content.WriteString(r.styles.Filter.Render(state.PromptText))
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	// Toolbar appears while a selection is active
	if state.ToolbarView != "" {
		content.WriteString(state.ToolbarView)
		content.WriteString("\n\n")
	}

	// Main content
	if state.Loading {
		content.WriteString(r.styles.Dim.Render("Loading..."))
	} else if len(state.VisiblePaths) == 0 {
		if state.IsFiltered {
			content.WriteString(r.styles.Dim.Render("Nothing matches the filter."))
		} else {
			content.WriteString(r.styles.Dim.Render("Empty directory."))
		}
	} else {
		content.WriteString(r.renderEntryList(state))
	}

	// Toast
	if state.Toast != nil {
		content.WriteString("\n\n")
		content.WriteString(r.renderToast(*state.Toast))
	}

	// Footer
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	paddingNeeded := availableLines - currentLines - 1
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	rendered := mainStyle.Render(content.String())

	switch state.InputMode {
	case "confirm", "overwrite":
		popup := r.styles.Confirm.Render(state.PromptText)
		return r.popupRender.RenderPopupOverlay(rendered, popup, state.Height, state.Width, r.styles.InfoBox)
	}
	return rendered
}

// renderTitleLine builds the top line: app name, current directory and
// right-aligned indicators.
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("filegrip")
	dir := r.styles.Dim.Render(state.CurrentDir)
	left := fmt.Sprintf("%s %s", logo, dir)

	var indicators []string
	if state.OpRunning {
		indicators = append(indicators, "working...")
	}
	if state.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if len(indicators) == 0 {
		return left
	}

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding > 0 {
		return left + strings.Repeat(" ", padding) + right
	}
	return left + "  " + right
}

// renderEntryList renders the listing inside the viewport
func (r *Renderer) renderEntryList(state ViewState) string {
	var lines []string

	total := len(state.VisiblePaths)
	multiSelect := state.SelectionCount > 0

	effectiveHeight := state.ViewportHeight
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := total > state.ViewportOffset+state.ViewportHeight
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	for i := state.ViewportOffset; i < total && i < state.ViewportOffset+effectiveHeight; i++ {
		path := state.VisiblePaths[i]
		entry := state.Entries[path]
		line := r.entryRender.RenderEntry(
			entry,
			i == state.CursorIndex,
			multiSelect,
			state.Selected[path],
			path == state.RangeAnchor,
			state.Width,
		)
		lines = append(lines, line)
	}

	if needsBottomIndicator {
		below := total - (state.ViewportOffset + effectiveHeight)
		if below < 0 {
			below = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderToast(toast notify.Notification) string {
	style := r.styles.ToastInfo
	if toast.Severity == notify.SeverityError {
		style = r.styles.ToastError
	}
	msg := fmt.Sprintf("%s: %s", toast.Title, toast.Description)
	if toast.CanRetry() {
		msg += "  (R to retry)"
	}
	return style.Render(msg)
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}

	count := fmt.Sprintf("%d item(s)", len(state.VisiblePaths))
	if state.SelectionCount > 0 {
		count = fmt.Sprintf("%d of %d selected", state.SelectionCount, len(state.VisiblePaths))
	}
	return r.styles.Help.Render(count + "  •  Press ? for help")
}
