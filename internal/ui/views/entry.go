package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filegrip/internal/domain"
	"filegrip/internal/listing"
)

// EntryRenderer handles rendering of directory entries
type EntryRenderer struct {
	styles    *Styles
	showSizes bool
}

// NewEntryRenderer creates a new entry renderer
func NewEntryRenderer(styles *Styles, showSizes bool) *EntryRenderer {
	return &EntryRenderer{
		styles:    styles,
		showSizes: showSizes,
	}
}

// SetShowSizes toggles the size column
func (r *EntryRenderer) SetShowSizes(show bool) {
	r.showSizes = show
}

// RenderEntry renders one listing row
func (r *EntryRenderer) RenderEntry(entry *domain.FileEntry, isCursor bool,
	isMultiSelect bool, isEntrySelected bool, isAnchor bool, width int) string {
	if entry == nil {
		return ""
	}

	// Background color for the cursor row
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}

	var parts []string

	// Multi-select indicator
	if isMultiSelect {
		selectionIndicator := "[ ]"
		if isEntrySelected {
			selectionIndicator = "[x]"
		}
		selectionStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
		if isEntrySelected {
			selectionStyle = selectionStyle.Foreground(lipgloss.Color("99"))
		}
		parts = append(parts, selectionStyle.Render(selectionIndicator))
		parts = append(parts, " ")
	}

	// Name, colored by category, directories with a trailing slash
	name := entry.Name
	if entry.IsDir {
		name += "/"
	}
	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetCategoryColor(entry.Category))).
		Background(lipgloss.Color(bgColor))
	if entry.IsHidden {
		nameStyle = nameStyle.Faint(true)
	}
	if isEntrySelected {
		nameStyle = nameStyle.Bold(true)
	}
	parts = append(parts, nameStyle.Render(name))

	// Range anchor marker
	if isAnchor {
		anchorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Background(lipgloss.Color(bgColor))
		parts = append(parts, anchorStyle.Render(" •"))
	}

	line := strings.Join(parts, "")

	// Size column, right aligned
	if r.showSizes && !entry.IsDir {
		size := listing.FormatSize(entry.Size)
		pad := width - lipgloss.Width(line) - lipgloss.Width(size) - 6
		if pad > 0 {
			sizeStyle := lipgloss.NewStyle().Faint(true)
			line = fmt.Sprintf("%s%s%s", line, strings.Repeat(" ", pad), sizeStyle.Render(size))
		}
	}

	return line
}
