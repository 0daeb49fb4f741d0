package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	inputtypes "hnsearch/internal/ui/input/types"
)

// RenderHelpContent renders the full key reference for the pager
func RenderHelpContent(keys inputtypes.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End}},
		{"Results", []key.Binding{keys.Dismiss, keys.More, keys.Details}},
		{"Search", []key.Binding{keys.Search, keys.Submit, keys.Leave}},
		{"Other", []key.Binding{keys.Activity, keys.Help, keys.HelpPager, keys.Quit, keys.ForceQuit}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("hnsearch Help"))
	help.WriteString("\n")

	for i, section := range sections {
		help.WriteString(sectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Results are cached per search; submitting a term again shows the cached list."))

	return help.String()
}
