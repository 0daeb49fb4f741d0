package views

import (
	"strings"

	"hnsearch/internal/logic"
)

// RenderActivity renders the activity log popup body, newest entry last
func RenderActivity(entries []logic.ActivityEntry, styles *Styles) string {
	if styles == nil {
		styles = NewStyles()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Activity"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(styles.Dim.Render("Nothing yet."))
	}
	for i, e := range entries {
		line := styles.Dim.Render(e.At.Format("15:04:05")) + " " + e.Message
		if e.IsError {
			line = styles.Dim.Render(e.At.Format("15:04:05")) + " " + styles.LogError.Render(e.Message)
		}
		b.WriteString(line)
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("esc/l to close"))
	return b.String()
}
