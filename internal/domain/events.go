package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted   EventType = "SearchSubmitted"
	EventFetchStarted      EventType = "FetchStarted"
	EventFetchSucceeded    EventType = "FetchSucceeded"
	EventFetchFailed       EventType = "FetchFailed"
	EventResponseDiscarded EventType = "ResponseDiscarded"
	EventItemDismissed     EventType = "ItemDismissed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when a term is committed as the active key
type SearchSubmittedEvent struct {
	Key    SearchKey
	Cached bool // true when the key was served from cache without a fetch
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// FetchStartedEvent is emitted when a page request is issued
type FetchStartedEvent struct {
	Key       SearchKey
	Page      int
	RequestID uint64
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when a response is merged into the cache
type FetchSucceededEvent struct {
	Key       SearchKey
	Page      int
	RequestID uint64
	Hits      int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when a request fails
type FetchFailedEvent struct {
	Key       SearchKey
	Page      int
	RequestID uint64
	Err       error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// ResponseDiscardedEvent is emitted when a stale response arrives after a
// newer request for the same key was issued
type ResponseDiscardedEvent struct {
	Key       SearchKey
	RequestID uint64
}

func (e ResponseDiscardedEvent) Type() EventType { return EventResponseDiscarded }

// ItemDismissedEvent is emitted when an item is removed from a cached page
type ItemDismissedEvent struct {
	Key    SearchKey
	ItemID string
}

func (e ItemDismissedEvent) Type() EventType { return EventItemDismissed }
