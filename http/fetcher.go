// Package http provides the HTTP implementation of vlrgg.Fetcher and the
// vlrgg.Client that fetches pages and hands them to the goquery parsers.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/govlr/vlrgg"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the library to the site.
const DefaultUserAgent = "vlrgg (+https://github.com/govlr/vlrgg)"

// Ensure Fetcher implements vlrgg.Fetcher at compile time.
var _ vlrgg.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages over plain HTTP. All requests go to a
// single site, so one optional rate limiter covers politeness.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying *http.Client. The client's own
// timeout takes precedence over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithRateLimit caps outgoing requests at rps requests per second with a
// burst of 1. Zero or negative rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. A non-2xx status
// is reported as vlrgg.ESTATUS; transport and body failures map to
// vlrgg.EHTTP and vlrgg.EBODY. Every error carries the URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", vlrgg.WrapError(vlrgg.Errorf(vlrgg.EHTTP, "rate limit wait: %v", err), url, "")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", vlrgg.WrapError(vlrgg.Errorf(vlrgg.EHTTP, "build request: %v", err), url, "")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", vlrgg.WrapError(vlrgg.Errorf(vlrgg.EHTTP, "request failed: %v", err), url, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", vlrgg.WrapError(vlrgg.Errorf(vlrgg.ESTATUS, "unexpected status %d", resp.StatusCode), url, "")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", vlrgg.WrapError(vlrgg.Errorf(vlrgg.EBODY, "read body: %v", err), url, "")
	}

	return string(body), nil
}

// Close releases resources. The fetcher holds nothing that needs
// explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
