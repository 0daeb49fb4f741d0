package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	RowTitle    lipgloss.Style
	RowMeta     lipgloss.Style
	RowURL      lipgloss.Style
	SelectionBg lipgloss.Style
	Dismiss     lipgloss.Style
	Error       lipgloss.Style
	Loading     lipgloss.Style
	LogBox      lipgloss.Style
	LogError    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ButtonFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("208")).
			Bold(true).
			Padding(0, 1),
		RowTitle:    lipgloss.NewStyle().Bold(true),
		RowMeta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		RowURL:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Dismiss:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		LogError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
