// Package session holds the search session state and the pure transition
// function that drives it. Nothing here performs I/O: fetches are requested
// through FetchEffect values that the caller executes.
package session

import "hnsearch/internal/domain"

// DefaultTerm is the term searched on mount when none is configured
const DefaultTerm = "redux"

// State is an immutable snapshot of a search session. Values are replaced,
// never mutated, by Reduce.
type State struct {
	InputTerm string
	ActiveKey domain.SearchKey
	LastError error

	cache   map[domain.SearchKey]domain.ResultPage
	latest  map[domain.SearchKey]uint64 // latest request id issued per key
	pending map[domain.SearchKey]uint64 // requests still in flight per key
	nextID  uint64
}

// New creates the initial state for a session whose input starts at term
func New(term string) State {
	return State{
		InputTerm: term,
		cache:     map[domain.SearchKey]domain.ResultPage{},
		latest:    map[domain.SearchKey]uint64{},
		pending:   map[domain.SearchKey]uint64{},
	}
}

// Entry returns the cached result page for key
func (s State) Entry(key domain.SearchKey) (domain.ResultPage, bool) {
	p, ok := s.cache[key]
	return p, ok
}

// NeedsFetch reports whether key is absent from the cache. A cached key is
// considered satisfied forever.
func (s State) NeedsFetch(key domain.SearchKey) bool {
	_, ok := s.cache[key]
	return !ok
}

// CurrentPage returns the last fetched page for key, 0 when uncached
func (s State) CurrentPage(key domain.SearchKey) int {
	return s.cache[key].Page
}

// Items returns the cached items for the active key. The result is empty,
// never nil-dereferencing, when the key is uncached.
func (s State) Items() []domain.Item {
	p, ok := s.cache[s.ActiveKey]
	if !ok || p.Items == nil {
		return []domain.Item{}
	}
	return p.Items
}

// Keys returns the number of cached search keys
func (s State) Keys() int {
	return len(s.cache)
}

// Loading reports whether a request for key is in flight
func (s State) Loading(key domain.SearchKey) bool {
	_, ok := s.pending[key]
	return ok
}

// IsLatest reports whether id is the most recent request issued for key
func (s State) IsLatest(key domain.SearchKey, id uint64) bool {
	return id != 0 && s.latest[key] == id
}

// copy-on-write helpers

func (s State) withEntry(key domain.SearchKey, page domain.ResultPage) State {
	cache := make(map[domain.SearchKey]domain.ResultPage, len(s.cache)+1)
	for k, v := range s.cache {
		cache[k] = v
	}
	cache[key] = page
	s.cache = cache
	return s
}

func (s State) withPending(key domain.SearchKey, id uint64) State {
	pending := make(map[domain.SearchKey]uint64, len(s.pending)+1)
	for k, v := range s.pending {
		pending[k] = v
	}
	if id == 0 {
		delete(pending, key)
	} else {
		pending[key] = id
	}
	s.pending = pending
	return s
}

func (s State) withLatest(key domain.SearchKey, id uint64) State {
	latest := make(map[domain.SearchKey]uint64, len(s.latest)+1)
	for k, v := range s.latest {
		latest[k] = v
	}
	latest[key] = id
	s.latest = latest
	return s
}
