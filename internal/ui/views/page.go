package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrorNotice is shown in place of the result list when the last fetch failed
const ErrorNotice = "Something went wrong."

// PageParams are the already rendered parts of the screen
type PageParams struct {
	Title  string
	Form   string
	List   string
	Empty  string // shown when List is empty and there is no error
	Err    error
	More   string // load-more control label
	Status string
	Help   string
	Width  int
	Height int
	Styles *Styles
}

// RenderPage composes the screen. A set Err replaces the result list with
// an error notice; the load-more control is shown regardless.
func RenderPage(p PageParams) string {
	styles := p.Styles
	if styles == nil {
		styles = NewStyles()
	}

	var b strings.Builder
	if p.Title != "" {
		b.WriteString(styles.Title.Render(p.Title))
		b.WriteString("\n")
	}
	b.WriteString(p.Form)
	b.WriteString("\n\n")

	switch {
	case p.Err != nil:
		b.WriteString(styles.Error.Render(ErrorNotice))
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render(p.Err.Error()))
	case p.List != "":
		b.WriteString(p.List)
	case p.Empty != "":
		b.WriteString(styles.Dim.Render(p.Empty))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Button.Render(p.More))

	if p.Status != "" {
		b.WriteString("\n")
		b.WriteString(styles.Status.Render(p.Status))
	}
	if p.Help != "" {
		b.WriteString("\n")
		b.WriteString(styles.Help.Render(p.Help))
	}

	mainStyle := styles.Main
	if p.Height > 0 {
		mainStyle = mainStyle.MaxHeight(p.Height)
	}
	return mainStyle.Render(b.String())
}

// RenderPopup centers content in a bordered box over the full screen
func RenderPopup(content string, width, height int, style lipgloss.Style) string {
	box := style.Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
