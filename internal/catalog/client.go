package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pokedex-table/internal/logging/events"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public catalog API root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	// DefaultLimit is the listing page size requested on startup.
	DefaultLimit = 60
)

// ErrListing marks failures of the listing request.
var ErrListing = errors.New("listing fetch failed")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.Code)
}

// DetailError reports the summary whose detail request failed.
type DetailError struct {
	Name string
	Err  error
}

func (e *DetailError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Name, e.Err)
}

func (e *DetailError) Unwrap() error {
	return e.Err
}

// Options configures a Client. Zero values mean: default base URL, unlimited
// concurrency, no pacing and no per-request timeout.
type Options struct {
	BaseURL         string
	Concurrency     int
	RequestInterval time.Duration
	Timeout         time.Duration
	HTTPClient      *http.Client
}

// Client talks to the remote catalog API.
type Client struct {
	baseURL     string
	concurrency int
	timeout     time.Duration
	http        *http.Client
	throttle    *throttle
}

// New builds a client from opts.
func New(opts Options) *Client {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:     strings.TrimRight(base, "/"),
		concurrency: opts.Concurrency,
		timeout:     opts.Timeout,
		http:        httpClient,
		throttle:    newThrottle(opts.RequestInterval),
	}
}

// ListingURL returns the listing endpoint for the given page size.
func (c *Client) ListingURL(limit int) (string, error) {
	u, err := url.Parse(c.baseURL + "/pokemon")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ListPage issues the single listing request. Non-positive limits fall back to
// DefaultLimit. Every failure wraps ErrListing.
func (c *Client) ListPage(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	target, err := c.ListingURL(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListing, err)
	}
	events.Catalog.List(target, limit)
	var resp listingResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		events.Catalog.Failure("list", err)
		return nil, fmt.Errorf("%w: %w", ErrListing, err)
	}
	events.Catalog.Listed(len(resp.Results))
	return resp.Results, nil
}

// ResolveAll fetches every summary's detail record concurrently and returns
// them in the same order as refs. The first failure cancels the outstanding
// requests and is returned as a *DetailError; no partial result is returned.
func (c *Client) ResolveAll(ctx context.Context, refs []Summary) ([]Record, error) {
	records := make([]Record, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i, ref := range refs {
		g.Go(func() error {
			var rec Record
			if err := c.getJSON(gctx, ref.URL, &rec); err != nil {
				return &DetailError{Name: ref.Name, Err: err}
			}
			events.Catalog.Detail(ref.Name)
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		events.Catalog.Failure("resolve", err)
		return nil, err
	}
	events.Catalog.Resolved(len(records))
	return records, nil
}

func (c *Client) getJSON(ctx context.Context, target string, dst interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.throttle.wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: target, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}
