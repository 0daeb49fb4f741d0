package logic

import (
	"fmt"
	"sync"
	"time"

	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
)

// DefaultActivityCapacity is how many entries the activity log keeps
const DefaultActivityCapacity = 200

// MemoryActivityStore is a bounded in-memory implementation of ActivityStore.
// The oldest entries are dropped once capacity is reached.
type MemoryActivityStore struct {
	mu       sync.RWMutex
	entries  []ActivityEntry
	capacity int
}

// NewMemoryActivityStore creates a new memory-based activity store
func NewMemoryActivityStore(capacity int) *MemoryActivityStore {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &MemoryActivityStore{
		entries:  make([]ActivityEntry, 0, capacity),
		capacity: capacity,
	}
}

func (s *MemoryActivityStore) Add(entry ActivityEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == s.capacity {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, entry)
}

// Recent returns up to n of the newest entries, oldest first
func (s *MemoryActivityStore) Recent(n int) []ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	// Return a copy to prevent external modification
	result := make([]ActivityEntry, n)
	copy(result, s.entries[len(s.entries)-n:])
	return result
}

func (s *MemoryActivityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Describe turns a session event into an activity entry
func Describe(e domain.DomainEvent, at time.Time) ActivityEntry {
	entry := ActivityEntry{At: at, Type: e.Type()}
	switch ev := e.(type) {
	case domain.SearchSubmittedEvent:
		entry.Key = ev.Key
		if ev.Cached {
			entry.Message = fmt.Sprintf("search %q served from cache", ev.Key)
		} else {
			entry.Message = fmt.Sprintf("search %q submitted", ev.Key)
		}
	case domain.FetchStartedEvent:
		entry.Key = ev.Key
		entry.Message = fmt.Sprintf("fetching %q page %d (#%d)", ev.Key, ev.Page, ev.RequestID)
	case domain.FetchSucceededEvent:
		entry.Key = ev.Key
		entry.Message = fmt.Sprintf("received %d hits for %q page %d (#%d)", ev.Hits, ev.Key, ev.Page, ev.RequestID)
	case domain.FetchFailedEvent:
		entry.Key = ev.Key
		entry.IsError = true
		entry.Message = fmt.Sprintf("fetch %q page %d failed: %v", ev.Key, ev.Page, ev.Err)
	case domain.ResponseDiscardedEvent:
		entry.Key = ev.Key
		entry.Message = fmt.Sprintf("discarded stale response for %q (#%d)", ev.Key, ev.RequestID)
	case domain.ItemDismissedEvent:
		entry.Key = ev.Key
		entry.Message = fmt.Sprintf("dismissed %s from %q", ev.ItemID, ev.Key)
	default:
		entry.Message = string(e.Type())
	}
	return entry
}

// RecordActivity subscribes store to every session event on bus and returns
// a function that removes the subscriptions.
func RecordActivity(bus eventbus.EventBus, store ActivityStore, now func() time.Time) func() {
	if now == nil {
		now = time.Now
	}
	var unsubs []func()
	for _, t := range eventbus.AllEventTypes {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			store.Add(Describe(e, now()))
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
