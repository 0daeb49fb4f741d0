package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"hnsearch/internal/domain"
)

// ResultListParams are the inputs of the result list. Items may be nil.
type ResultListParams struct {
	Items     []domain.Item
	Selected  int
	Focused   bool
	Width     int
	Height    int // rows available; 0 renders everything
	OnDismiss func(id string) tea.Cmd
	Styles    *Styles
}

// Dismiss fires the dismiss callback for the item at row. Out of range rows
// and a missing callback yield nil.
func (p ResultListParams) Dismiss(row int) tea.Cmd {
	if p.OnDismiss == nil || row < 0 || row >= len(p.Items) {
		return nil
	}
	return p.OnDismiss(p.Items[row].ID)
}

// linesPerRow is how many terminal lines a single item occupies
const linesPerRow = 2

// RenderResultList renders one row per item in input order. An empty or nil
// item list renders as the empty string.
func RenderResultList(p ResultListParams) string {
	if len(p.Items) == 0 {
		return ""
	}
	styles := p.Styles
	if styles == nil {
		styles = NewStyles()
	}
	width := p.Width
	if width <= 0 {
		width = 80
	}

	start, end := visibleWindow(p.Selected, len(p.Items), p.Height/linesPerRow)

	var b strings.Builder
	if start > 0 {
		b.WriteString(styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(renderRow(p.Items[i], i == p.Selected && p.Focused, width, styles))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(p.Items) {
		b.WriteString("\n")
		b.WriteString(styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(p.Items)-end)))
	}
	return b.String()
}

func renderRow(item domain.Item, selected bool, width int, styles *Styles) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}

	dismiss := styles.Dismiss.Render("[x]")
	meta := formatMeta(item)

	// title column is what is left after marker, meta, dismiss and gaps
	titleWidth := width - lipgloss.Width(marker) - lipgloss.Width(meta) - 3 - 2
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	title = truncate(title, titleWidth)
	pad := titleWidth - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}

	line := marker + styles.RowTitle.Render(title) + strings.Repeat(" ", pad) + " " + styles.RowMeta.Render(meta) + " " + dismiss

	sub := "    "
	if item.URL != "" {
		sub += styles.RowURL.Render(truncate(item.URL, width-4))
	} else {
		sub += styles.Dim.Render("no link")
	}

	if selected {
		line = styles.SelectionBg.Render(line)
	}
	return line + "\n" + sub
}

// formatMeta renders the author, comments and points columns; missing
// values are left out.
func formatMeta(item domain.Item) string {
	var parts []string
	switch {
	case item.Author != "":
		parts = append(parts, item.Author)
	case item.Publisher != "":
		parts = append(parts, item.Publisher)
	}
	if item.NumComments > 0 {
		parts = append(parts, fmt.Sprintf("%d comments", item.NumComments))
	}
	if item.Points > 0 {
		parts = append(parts, fmt.Sprintf("%d pts", item.Points))
	}
	return strings.Join(parts, " · ")
}

// visibleWindow returns the [start, end) range of rows to draw so that
// selected stays on screen
func visibleWindow(selected, count, rows int) (int, int) {
	if rows <= 0 || count <= rows {
		return 0, count
	}
	if selected < 0 {
		selected = 0
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > count {
		start = count - rows
	}
	return start, start + rows
}

// truncate shortens s to at most n terminal cells, ending in an ellipsis
// when anything was cut
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "…")
}
