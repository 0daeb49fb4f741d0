package input

import "hnsearch/internal/domain"

// ListContext implements the Context interface over the visible result list
type ListContext struct {
	Selected int
	Items    []domain.Item
}

// CurrentIndex returns the current selected index
func (c ListContext) CurrentIndex() int {
	return c.Selected
}

// TotalItems returns the number of rows in the list
func (c ListContext) TotalItems() int {
	return len(c.Items)
}

// CurrentItemID returns the id of the selected row, empty when nothing is selected
func (c ListContext) CurrentItemID() string {
	if c.Selected < 0 || c.Selected >= len(c.Items) {
		return ""
	}
	return c.Items[c.Selected].ID
}
