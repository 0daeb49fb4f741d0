// Package searchapi is the HTTP client for the Hacker News search API.
package searchapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"hnsearch/internal/domain"
)

// DefaultBaseURL is the public Hacker News search API
const DefaultBaseURL = "https://hn.algolia.com/api/v1"

// DefaultHitsPerPage is the fixed page size requested
const DefaultHitsPerPage = 100

// ErrSearchFailed is the single error kind surfaced to callers. Transport
// errors, non-2xx statuses and undecodable bodies all wrap it.
var ErrSearchFailed = errors.New("search request failed")

// Options configures a Client
type Options struct {
	BaseURL     string
	HitsPerPage int
	Timeout     time.Duration
	UserAgent   string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client queries the search endpoint. Identical concurrent requests share a
// single round trip.
type Client struct {
	baseURL     string
	hitsPerPage int
	userAgent   string
	http        *http.Client
	logger      *slog.Logger
	group       singleflight.Group
}

// New creates a client, filling unset options with defaults
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HitsPerPage <= 0 {
		opts.HitsPerPage = DefaultHitsPerPage
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:     opts.BaseURL,
		hitsPerPage: opts.HitsPerPage,
		userAgent:   opts.UserAgent,
		http:        opts.HTTPClient,
		logger:      opts.Logger,
	}
}

// SearchURL builds the request URL for term and page
func (c *Client) SearchURL(term string, page int) string {
	params := url.Values{
		"query":       {term},
		"page":        {strconv.Itoa(page)},
		"hitsPerPage": {strconv.Itoa(c.hitsPerPage)},
	}
	return c.baseURL + "/search?" + params.Encode()
}

// Search fetches one page of results for term
func (c *Client) Search(ctx context.Context, term string, page int) (domain.Page, error) {
	reqURL := c.SearchURL(term, page)

	v, err, shared := c.group.Do(reqURL, func() (interface{}, error) {
		return c.do(ctx, reqURL)
	})
	if shared {
		c.logger.Debug("search request coalesced", "query", term, "page", page)
	}
	if err != nil {
		return domain.Page{}, err
	}

	// Callers own the hits slice they receive.
	res := v.(domain.Page)
	res.Hits = append([]domain.Item(nil), res.Hits...)
	return res, nil
}

func (c *Client) do(ctx context.Context, reqURL string) (domain.Page, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: creating request: %v", ErrSearchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("search request failed", "url", reqURL, "error", err)
		return domain.Page{}, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("search request rejected", "url", reqURL, "status", resp.StatusCode)
		return domain.Page{}, fmt.Errorf("%w: HTTP %d", ErrSearchFailed, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Page{}, fmt.Errorf("%w: parsing response: %v", ErrSearchFailed, err)
	}

	page := body.toPage()
	c.logger.Debug("search request done", "url", reqURL, "hits", len(page.Hits), "page", page.Page, "elapsed", time.Since(start))
	return page, nil
}
