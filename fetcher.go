package vlrgg

import "context"

// Fetcher retrieves raw HTML pages over the network. It owns all
// transport concerns (timeouts, politeness, retries); parsers never
// touch the network themselves.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
