package views

import (
	"github.com/charmbracelet/lipgloss"

	"filegrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	InfoBox     lipgloss.Style
	Help       lipgloss.Style
	Main       lipgloss.Style
	Scroll     lipgloss.Style
	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		ToastInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		ToastError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// GetCategoryColor returns the display color for a file category
func GetCategoryColor(category domain.FileCategory) string {
	switch category {
	case domain.CategoryFolder:
		return "33" // blue
	case domain.CategoryImage, domain.CategoryVideo:
		return "170" // magenta
	case domain.CategoryAudio:
		return "51" // cyan
	case domain.CategoryArchive:
		return "203" // red
	case domain.CategoryCode:
		return "78" // green
	case domain.CategoryDocument:
		return "252"
	default:
		return "252"
	}
}
