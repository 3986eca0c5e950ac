// Package registry looks up crate metadata through the crates.io read API.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/utils"
)

// DefaultAPIURL is the crates.io API root
const DefaultAPIURL = "https://crates.io/api/v1"

// Client fetches crate records from the registry API
type Client struct {
	fetcher domain.Fetcher
	apiURL  string
	logger  *utils.Logger
}

// Options contains options for creating a Client
type Options struct {
	APIURL string
	Logger *utils.Logger
}

// NewClient creates a registry client on top of f
func NewClient(f domain.Fetcher, opts Options) *Client {
	apiURL := strings.TrimRight(opts.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Client{
		fetcher: f,
		apiURL:  apiURL,
		logger:  logger.WithComponent("registry"),
	}
}

// EndpointFor returns the metadata URL for name. The name is inserted
// verbatim, without escaping.
func (c *Client) EndpointFor(name string) string {
	return c.apiURL + "/crates/" + name
}

// Lookup fetches the record for name with exactly one request
func (c *Client) Lookup(ctx context.Context, name string) (*Record, error) {
	endpoint := c.EndpointFor(name)
	log := c.logger.WithCrate(name).WithURL(endpoint)

	log.Debug().Msg("Fetching crate metadata")

	resp, err := c.fetcher.Get(ctx, endpoint)
	if err != nil {
		log.Debug().Err(err).Msg("Registry request failed")
		return nil, domain.NewNetworkError(err)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Str("content_type", resp.ContentType).
		Int("bytes", len(resp.Body)).
		Msg("Registry responded")

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewCrateNotFoundError(name)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, domain.NewNetworkError(domain.NewFetchError(endpoint, resp.StatusCode,
			fmt.Errorf("HTTP %d", resp.StatusCode)))
	}

	var rec Record
	if err := json.Unmarshal(resp.Body, &rec); err != nil {
		return nil, domain.NewResponseInvalidError(name, "", err)
	}
	if rec.Crate == nil {
		return nil, domain.NewResponseInvalidError(name, rec.ErrorDetail(), nil)
	}

	return &rec, nil
}
