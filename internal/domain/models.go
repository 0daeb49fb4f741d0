package domain

import "time"

// SearchKey identifies a committed search term. It indexes the result cache
// and is distinct from the live input term.
type SearchKey string

// Item is a single search hit
type Item struct {
	ID          string    `json:"objectID"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Publisher   string    `json:"publisher,omitempty"`
	Points      int       `json:"points,omitempty"`
	NumComments int       `json:"num_comments,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Page is one page of results as returned by the search API
type Page struct {
	Hits    []Item `json:"hits"`
	Page    int    `json:"page"`
	NbPages int    `json:"nbPages"`
	NbHits  int    `json:"nbHits"`
}

// ResultPage is the cached result set for a search key: every page fetched
// so far, concatenated in fetch order, minus dismissed items.
type ResultPage struct {
	Items   []Item
	Page    int // last fetched page number
	NbPages int // total pages reported by the latest merge
	NbHits  int // total hits reported by the latest merge
}
