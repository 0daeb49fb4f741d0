package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"hnsearch/internal/domain"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text in ov while the Bubble Tea program gives up the terminal
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager bound to program; a nil program makes Show fail
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show runs ov over content until the user quits it
func (p *Pager) Show(content string) error {
	if p == nil || p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// let ov fully exit before taking the screen back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderItemDetails renders every known field of item for the pager
func RenderItemDetails(item domain.Item) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	title := item.Title
	if title == "" {
		title = "(untitled)"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), value)
	}
	field("id", item.ID)
	field("url", item.URL)
	field("author", item.Author)
	field("publisher", item.Publisher)
	field("points", fmt.Sprint(item.Points))
	field("comments", fmt.Sprint(item.NumComments))
	if !item.CreatedAt.IsZero() {
		field("created", item.CreatedAt.Local().Format(time.DateTime))
	}
	if item.ID != "" {
		field("thread", "https://news.ycombinator.com/item?id="+item.ID)
	}

	return strings.TrimRight(b.String(), "\n")
}
