package domain

import "context"

// Fetcher performs a single HTTP GET. It does not interpret status codes;
// a response is returned for any status the server sends.
type Fetcher interface {
	// Get fetches content from a URL
	Get(ctx context.Context, url string) (*Response, error)
	// Close releases resources
	Close() error
}

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Opener hands a resolved URL to whatever displays it
type Opener interface {
	Open(url string) error
}
