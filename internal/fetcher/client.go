package fetcher

import (
	"context"
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/quantmind-br/cargo-navigate/internal/domain"
)

// Client is an HTTP client using tls-client. It sends exactly one request
// per Get: no retries, no caching.
type Client struct {
	tlsClient tls_client.HttpClient
	userAgent string
	accept    string
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	// Timeout bounds the whole request; zero means no deadline
	Timeout   time.Duration
	UserAgent string
	Accept    string
	ProxyURL  string
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:   0,
		UserAgent: DefaultUserAgent(),
		Accept:    "application/json",
		ProxyURL:  "",
	}
}

// NewClient creates a new HTTP client. Empty fields of opts take their
// value from DefaultClientOptions.
func NewClient(opts ClientOptions) (*Client, error) {
	defaults := DefaultClientOptions()
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Accept == "" {
		opts.Accept = defaults.Accept
	}

	// tls-client applies its own 30s deadline unless told otherwise; zero
	// disables it
	timeoutMs := 0
	if opts.Timeout > 0 {
		timeoutMs = int(opts.Timeout.Milliseconds())
		if timeoutMs < 1 {
			timeoutMs = 1
		}
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_131),
		tls_client.WithTimeoutMilliseconds(timeoutMs),
	}

	if opts.ProxyURL != "" {
		tlsOpts = append(tlsOpts, tls_client.WithProxyUrl(opts.ProxyURL))
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &Client{
		tlsClient: tlsClient,
		userAgent: opts.UserAgent,
		accept:    opts.Accept,
	}, nil
}

// Get fetches content from a URL. Status codes are not interpreted; only
// transport failures are returned as errors.
func (c *Client) Get(ctx context.Context, targetURL string) (*domain.Response, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, targetURL, nil)
	if err != nil {
		return nil, &domain.FetchError{
			URL: targetURL,
			Err: fmt.Errorf("failed to create request: %w", err),
		}
	}

	for k, v := range Headers(c.userAgent, c.accept) {
		req.Header.Set(k, v)
	}

	resp, err := c.tlsClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{
			URL: targetURL,
			Err: fmt.Errorf("request failed: %w", err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{
			URL:        targetURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// Close releases client resources
func (c *Client) Close() error {
	// tls-client has no Close; kept for domain.Fetcher
	return nil
}
