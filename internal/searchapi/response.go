package searchapi

import (
	"time"

	"hnsearch/internal/domain"
)

type searchResponse struct {
	Hits    []hit `json:"hits"`
	Page    int   `json:"page"`
	NbPages int   `json:"nbPages"`
	NbHits  int   `json:"nbHits"`
}

// hit mirrors the API item shape. Every field except objectID may be missing
// or null.
type hit struct {
	ObjectID    string  `json:"objectID"`
	URL         *string `json:"url"`
	Title       *string `json:"title"`
	StoryTitle  *string `json:"story_title"`
	StoryURL    *string `json:"story_url"`
	Author      *string `json:"author"`
	Publisher   *string `json:"publisher"`
	Points      *int    `json:"points"`
	NumComments *int    `json:"num_comments"`
	CreatedAt   *string `json:"created_at"`
}

func (r searchResponse) toPage() domain.Page {
	items := make([]domain.Item, 0, len(r.Hits))
	for _, h := range r.Hits {
		items = append(items, h.toItem())
	}
	return domain.Page{
		Hits:    items,
		Page:    r.Page,
		NbPages: r.NbPages,
		NbHits:  r.NbHits,
	}
}

func (h hit) toItem() domain.Item {
	item := domain.Item{
		ID:          h.ObjectID,
		URL:         str(h.URL),
		Title:       str(h.Title),
		Author:      str(h.Author),
		Publisher:   str(h.Publisher),
		Points:      num(h.Points),
		NumComments: num(h.NumComments),
		CreatedAt:   timestamp(h.CreatedAt),
	}
	// comment hits carry their story's title and url instead
	if item.Title == "" {
		item.Title = str(h.StoryTitle)
	}
	if item.URL == "" {
		item.URL = str(h.StoryURL)
	}
	return item
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// timestamp parses an RFC 3339 time, yielding the zero time when it is
// missing or malformed
func timestamp(s *string) time.Time {
	if s == nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}
	}
	return t
}
