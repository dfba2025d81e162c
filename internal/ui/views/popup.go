package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over a dimmed base layer
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 || height <= 0 {
		return styledPopup
	}

	// Dim the base so the modal reads as the active layer
	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	modalH := len(popupLines)
	modalW := lipgloss.Width(styledPopup)

	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	pad := strings.Repeat(" ", x)

	// Splice the popup lines into the base. Base content to the left
	// and right of the modal is dropped line-wise, which reads fine on
	// a dimmed layer.
	for i, line := range popupLines {
		if y+i >= len(base) {
			break
		}
		base[y+i] = pad + line
	}

	return strings.Join(base[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	lines := strings.Split(plain, "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = dim.Render(line)
	}
	return strings.Join(lines, "\n")
}
