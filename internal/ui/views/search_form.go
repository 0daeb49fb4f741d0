package views

import (
	"github.com/charmbracelet/lipgloss"
)

// SearchFormParams are the inputs of the search form. The form holds no
// state of its own: Input is the already rendered text input bound to the
// input term, and key events are routed by the caller.
type SearchFormParams struct {
	Input   string
	Label   string // submit control content, any text
	Focused bool
	Width   int
	Styles  *Styles
}

// RenderSearchForm renders the text input next to its submit control
func RenderSearchForm(p SearchFormParams) string {
	styles := p.Styles
	if styles == nil {
		styles = NewStyles()
	}

	inputStyle := styles.Input
	buttonStyle := styles.Button
	if p.Focused {
		inputStyle = styles.InputFocus
		buttonStyle = styles.ButtonFocus
	}

	button := buttonStyle.Render(p.Label)
	if p.Width > 0 {
		// input box takes what the button and the gap leave
		w := p.Width - lipgloss.Width(button) - 1 - inputStyle.GetHorizontalFrameSize()
		if w > 10 {
			inputStyle = inputStyle.Width(w)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, inputStyle.Render(p.Input), " ", button)
}
