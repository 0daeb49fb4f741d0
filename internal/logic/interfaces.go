package logic

import (
	"time"

	"hnsearch/internal/domain"
)

// ActivityStore records recent session activity for display
type ActivityStore interface {
	Add(entry ActivityEntry)
	Recent(n int) []ActivityEntry
	Len() int
}

// ActivityEntry is one line of session activity
type ActivityEntry struct {
	At      time.Time
	Type    domain.EventType
	Key     domain.SearchKey
	Message string
	IsError bool
}
