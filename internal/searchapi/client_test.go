package searchapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "hits": [
    {"objectID": "1", "title": "A", "url": "https://a.example", "author": "pg", "points": 120, "num_comments": 33, "created_at": "2018-03-14T03:50:30.000Z"},
    {"objectID": "2", "title": "B", "url": null, "author": "dang", "points": null, "num_comments": null},
    {"objectID": "3", "title": null, "story_title": "Parent story", "story_url": "https://parent.example"}
  ],
  "page": 0,
  "nbPages": 5,
  "nbHits": 412
}`

func TestSearchRequestShape(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, UserAgent: "hnsearch-test"})
	_, err := c.Search(context.Background(), "redux saga", 2)
	require.NoError(t, err)

	require.Equal(t, "/search", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "redux saga", q.Get("query"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "100", q.Get("hitsPerPage"))
	assert.Equal(t, "hnsearch-test", got.Header.Get("User-Agent"))
}

func TestSearchDecodesHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	page, err := New(Options{BaseURL: srv.URL}).Search(context.Background(), "redux", 0)
	require.NoError(t, err)

	require.Equal(t, 0, page.Page)
	require.Equal(t, 5, page.NbPages)
	require.Equal(t, 412, page.NbHits)
	require.Len(t, page.Hits, 3)

	first := page.Hits[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "A", first.Title)
	assert.Equal(t, "https://a.example", first.URL)
	assert.Equal(t, "pg", first.Author)
	assert.Equal(t, 120, first.Points)
	assert.Equal(t, 33, first.NumComments)
	assert.Equal(t, time.Date(2018, 3, 14, 3, 50, 30, 0, time.UTC), first.CreatedAt.UTC())

	second := page.Hits[1]
	assert.Equal(t, "", second.URL)
	assert.Equal(t, 0, second.Points)
	assert.True(t, second.CreatedAt.IsZero())

	third := page.Hits[2]
	assert.Equal(t, "Parent story", third.Title)
	assert.Equal(t, "https://parent.example", third.URL)
}

func TestSearchToleratesMalformedTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hits": [
			{"objectID": "1", "title": "A", "created_at": "yesterday"},
			{"objectID": "2", "title": "B", "created_at": "2020-01-02T03:04:05Z"}
		], "page": 0}`))
	}))
	defer srv.Close()

	page, err := New(Options{BaseURL: srv.URL}).Search(context.Background(), "redux", 0)
	require.NoError(t, err)
	require.Len(t, page.Hits, 2)
	assert.True(t, page.Hits[0].CreatedAt.IsZero())
	assert.Equal(t, "A", page.Hits[0].Title)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), page.Hits[1].CreatedAt.UTC())
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"rate limited", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"hits": [`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(Options{BaseURL: srv.URL}).Search(context.Background(), "x", 0)
			require.ErrorIs(t, err, ErrSearchFailed)
		})
	}
}

func TestSearchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).Search(context.Background(), "x", 0)
	require.ErrorIs(t, err, ErrSearchFailed)
}

func TestSearchCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Options{BaseURL: srv.URL}).Search(ctx, "x", 0)
	require.ErrorIs(t, err, ErrSearchFailed)
}

func TestSearchCoalescesIdenticalRequests(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})

	var wg sync.WaitGroup
	results := make([]int, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := c.Search(context.Background(), "same", 1)
			if err == nil {
				results[i] = len(page.Hits)
			}
		}(i)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	// give the other callers time to join the in-flight request
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, []int{3, 3, 3, 3}, results)
}

func TestSearchURLDefaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultBaseURL+"/search?hitsPerPage=100&page=0&query=redux", c.SearchURL("redux", 0))

	c = New(Options{BaseURL: "http://local", HitsPerPage: 20})
	assert.Equal(t, "http://local/search?hitsPerPage=20&page=3&query=a+b", c.SearchURL("a b", 3))
}
