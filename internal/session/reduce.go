package session

import "hnsearch/internal/domain"

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// Mounted commits the initial input term and fetches its first page
type Mounted struct{}

// InputChanged updates the live input term
type InputChanged struct {
	Term string
}

// Submitted commits Term as the active key
type Submitted struct {
	Term string
}

// FetchRequested asks for a specific page of Key
type FetchRequested struct {
	Key  domain.SearchKey
	Page int
}

// LoadMore requests the page after the active key's current page
type LoadMore struct{}

// Dismissed removes an item from the active key's cached page
type Dismissed struct {
	ID string
}

// FetchSucceeded carries a response for a previously issued request
type FetchSucceeded struct {
	Key       domain.SearchKey
	RequestID uint64
	Page      domain.Page
}

// FetchFailed carries the error of a previously issued request
type FetchFailed struct {
	Key       domain.SearchKey
	RequestID uint64
	Err       error
}

func (Mounted) isEvent()        {}
func (InputChanged) isEvent()   {}
func (Submitted) isEvent()      {}
func (FetchRequested) isEvent() {}
func (LoadMore) isEvent()       {}
func (Dismissed) isEvent()      {}
func (FetchSucceeded) isEvent() {}
func (FetchFailed) isEvent()    {}

// FetchEffect instructs the caller to fetch Page of Key and report the
// outcome back as FetchSucceeded or FetchFailed carrying RequestID.
type FetchEffect struct {
	Key       domain.SearchKey
	Page      int
	RequestID uint64
}

// Reduce applies e to s and returns the next state along with any fetches
// that must be performed. s is left untouched.
func Reduce(s State, e Event) (State, []FetchEffect) {
	switch e := e.(type) {
	case Mounted:
		s.ActiveKey = domain.SearchKey(s.InputTerm)
		return fetch(s, s.ActiveKey, 0)

	case InputChanged:
		s.InputTerm = e.Term
		return s, nil

	case Submitted:
		key := domain.SearchKey(e.Term)
		s.ActiveKey = key
		if !s.NeedsFetch(key) {
			return s, nil
		}
		return fetch(s, key, 0)

	case FetchRequested:
		return fetch(s, e.Key, e.Page)

	case LoadMore:
		// the next page number is only known once the pending one lands
		if s.Loading(s.ActiveKey) {
			return s, nil
		}
		return fetch(s, s.ActiveKey, s.CurrentPage(s.ActiveKey)+1)

	case Dismissed:
		return dismiss(s, e.ID), nil

	case FetchSucceeded:
		if !s.IsLatest(e.Key, e.RequestID) {
			return s, nil
		}
		return merge(s, e.Key, e.Page), nil

	case FetchFailed:
		if !s.IsLatest(e.Key, e.RequestID) {
			return s, nil
		}
		s = s.withPending(e.Key, 0)
		s.LastError = e.Err
		return s, nil
	}
	return s, nil
}

func fetch(s State, key domain.SearchKey, page int) (State, []FetchEffect) {
	s.nextID++
	id := s.nextID
	s = s.withLatest(key, id).withPending(key, id)
	return s, []FetchEffect{{Key: key, Page: page, RequestID: id}}
}

// merge appends the new hits after the prior items for key. There is no
// deduplication by id: an item dismissed earlier may come back with a later
// page.
func merge(s State, key domain.SearchKey, page domain.Page) State {
	prior := s.cache[key].Items
	items := make([]domain.Item, 0, len(prior)+len(page.Hits))
	items = append(items, prior...)
	items = append(items, page.Hits...)

	s = s.withEntry(key, domain.ResultPage{Items: items, Page: page.Page, NbPages: page.NbPages, NbHits: page.NbHits})
	s = s.withPending(key, 0)
	s.LastError = nil
	return s
}

func dismiss(s State, id string) State {
	entry, ok := s.cache[s.ActiveKey]
	if !ok {
		return s
	}
	found := false
	items := make([]domain.Item, 0, len(entry.Items))
	for _, it := range entry.Items {
		if it.ID == id {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return s
	}
	entry.Items = items
	return s.withEntry(s.ActiveKey, entry)
}
