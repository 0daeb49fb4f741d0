package views

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

type dismissMsg struct{ id string }

func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: "1", Title: "Alpha", URL: "https://alpha.example", Author: "pg", Points: 10, NumComments: 3},
		{ID: "2", Title: "Bravo"},
		{ID: "3", Title: "Charlie", Publisher: "acme"},
	}
}

func TestResultListPreservesOrder(t *testing.T) {
	out := plain(RenderResultList(ResultListParams{Items: sampleItems(), Width: 100}))

	a := strings.Index(out, "Alpha")
	b := strings.Index(out, "Bravo")
	c := strings.Index(out, "Charlie")
	require.True(t, a >= 0 && b > a && c > b, out)
	assert.Equal(t, 3, strings.Count(out, "[x]"))
	assert.Contains(t, out, "https://alpha.example")
	assert.Contains(t, out, "pg · 3 comments · 10 pts")
	assert.Contains(t, out, "acme")
	assert.Contains(t, out, "no link")
}

func TestResultListEmptyInputs(t *testing.T) {
	require.NotPanics(t, func() {
		assert.Equal(t, "", RenderResultList(ResultListParams{}))
		assert.Equal(t, "", RenderResultList(ResultListParams{Items: []domain.Item{}}))
	})
}

func TestResultListDismissCallsBackWithID(t *testing.T) {
	p := ResultListParams{
		Items: sampleItems(),
		OnDismiss: func(id string) tea.Cmd {
			return func() tea.Msg { return dismissMsg{id} }
		},
	}

	cmd := p.Dismiss(1)
	require.NotNil(t, cmd)
	assert.Equal(t, dismissMsg{"2"}, cmd())

	assert.Nil(t, p.Dismiss(-1))
	assert.Nil(t, p.Dismiss(3))
	assert.Nil(t, ResultListParams{Items: sampleItems()}.Dismiss(0))
}

func TestResultListMarksSelectionOnlyWhenFocused(t *testing.T) {
	items := sampleItems()
	focused := plain(RenderResultList(ResultListParams{Items: items, Selected: 1, Focused: true, Width: 80}))
	assert.Contains(t, focused, "▸ Bravo")

	unfocused := plain(RenderResultList(ResultListParams{Items: items, Selected: 1, Width: 80}))
	assert.NotContains(t, unfocused, "▸")
}

func TestResultListScrollsToSelection(t *testing.T) {
	items := make([]domain.Item, 20)
	for i := range items {
		items[i] = domain.Item{ID: string(rune('a' + i)), Title: "item-" + string(rune('a'+i))}
	}

	out := plain(RenderResultList(ResultListParams{Items: items, Selected: 15, Focused: true, Height: 8, Width: 80}))
	assert.Contains(t, out, "item-p")
	assert.NotContains(t, out, "item-a ")
	assert.Contains(t, out, "↑")
	assert.Contains(t, out, "↓")
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		selected, count, rows int
		start, end            int
	}{
		{0, 5, 0, 0, 5},
		{0, 5, 10, 0, 5},
		{0, 20, 4, 0, 4},
		{10, 20, 4, 8, 12},
		{19, 20, 4, 16, 20},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.selected, tt.count, tt.rows)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel…", truncate("hello", 4))
	assert.Equal(t, "…", truncate("hello", 1))
	assert.Equal(t, "", truncate("hello", 0))
	assert.Equal(t, "héll…", truncate("héllo wörld", 5))
	assert.Equal(t, "漢字…", truncate("漢字漢字", 5))
	assert.Equal(t, "漢…", truncate("漢字漢字", 4))
}

func TestResultListAlignsWideTitles(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Title: "Go 1.26 リリースノートを読む会のまとめと感想といろいろな話題", Author: "山田", Points: 5},
		{ID: "2", Title: "Alpha", Author: "pg", Points: 5},
		{ID: "3", Title: "🚀 launch day", Author: "pg", Points: 5},
	}
	out := plain(RenderResultList(ResultListParams{Items: items, Width: 60}))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)

	for i := 0; i < len(lines); i += 2 {
		assert.Equal(t, 60, lipgloss.Width(lines[i]), lines[i])
		assert.True(t, strings.HasSuffix(lines[i], "5 pts [x]"), lines[i])
	}
	assert.Contains(t, lines[0], "…")
}

func TestSearchFormShowsInputAndLabel(t *testing.T) {
	out := plain(RenderSearchForm(SearchFormParams{Input: "redux", Label: "Go ➜ find it", Width: 60}))
	assert.Contains(t, out, "redux")
	assert.Contains(t, out, "Go ➜ find it")

	empty := plain(RenderSearchForm(SearchFormParams{}))
	assert.NotEmpty(t, empty)
}

func TestPageShowsListWithoutError(t *testing.T) {
	list := RenderResultList(ResultListParams{Items: sampleItems(), Width: 80})
	out := plain(RenderPage(PageParams{Form: "FORM", List: list, More: "More"}))

	assert.Contains(t, out, "FORM")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "More")
	assert.NotContains(t, out, ErrorNotice)
}

func TestPageErrorReplacesList(t *testing.T) {
	list := RenderResultList(ResultListParams{Items: sampleItems(), Width: 80})
	out := plain(RenderPage(PageParams{
		Form: "FORM",
		List: list,
		Err:  errors.New("search request failed: HTTP 500"),
		More: "More",
	}))

	assert.Contains(t, out, ErrorNotice)
	assert.NotContains(t, out, "Alpha")
	assert.Contains(t, out, "More")
}

func TestPageEmptyPlaceholder(t *testing.T) {
	out := plain(RenderPage(PageParams{Form: "FORM", Empty: "No results.", More: "More"}))
	assert.Contains(t, out, "No results.")
}

func TestRenderActivity(t *testing.T) {
	at := time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)
	out := plain(RenderActivity([]logic.ActivityEntry{
		{At: at, Message: "fetching \"go\" page 0 (#1)"},
		{At: at, Message: "fetch failed", IsError: true},
	}, nil))

	assert.Contains(t, out, "09:30:00 fetching \"go\" page 0 (#1)")
	assert.Contains(t, out, "fetch failed")

	assert.Contains(t, plain(RenderActivity(nil, nil)), "Nothing yet.")
}
