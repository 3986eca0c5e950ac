// Package resolver turns a parsed manifest or registry record into the
// URL for a navigation target. Functions here never touch the network or
// the filesystem.
package resolver

import (
	"errors"
	"strings"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/manifest"
	"github.com/quantmind-br/cargo-navigate/internal/registry"
)

const (
	// DefaultRegistryHost serves the crate listing pages
	DefaultRegistryHost = "https://crates.io"
	// DefaultDocsHost serves generated crate documentation
	DefaultDocsHost = "https://docs.rs"
)

// ErrListingFromRecord is returned when FromRegistry is asked for the
// listing page, which is built from the crate name alone.
var ErrListingFromRecord = errors.New("registry listing is not resolved from a registry record")

// Hosts holds the bases used for synthesised URLs
type Hosts struct {
	Registry string
	Docs     string
}

// DefaultHosts returns crates.io and docs.rs
func DefaultHosts() Hosts {
	return Hosts{Registry: DefaultRegistryHost, Docs: DefaultDocsHost}
}

// ListingURL returns the registry page for name
func (h Hosts) ListingURL(name string) string {
	return base(h.Registry, DefaultRegistryHost) + "/crates/" + name
}

// DocsURL returns the generated documentation page for name
func (h Hosts) DocsURL(name string) string {
	return base(h.Docs, DefaultDocsHost) + "/" + name
}

func base(host, fallback string) string {
	host = strings.TrimRight(host, "/")
	if host == "" {
		return fallback
	}
	return host
}

// FromManifest resolves kind against a local Cargo.toml. A missing
// documentation link falls back to the docs host.
func FromManifest(m *manifest.Manifest, kind domain.URLKind, hosts Hosts) (string, error) {
	if kind == domain.KindRegistryListing {
		name, err := m.CrateName()
		if err != nil {
			return "", err
		}
		return hosts.ListingURL(name), nil
	}

	if url, ok := m.Field(kind); ok {
		return url, nil
	}

	if kind == domain.KindDocumentation {
		name, err := m.CrateName()
		if err != nil {
			return "", err
		}
		return hosts.DocsURL(name), nil
	}

	return "", domain.NewFieldNotRegisteredError(kind)
}

// FromRegistry resolves kind against a registry record. There is no
// docs host fallback on this path.
func FromRegistry(rec *registry.Record, kind domain.URLKind) (string, error) {
	if kind == domain.KindRegistryListing {
		return "", ErrListingFromRecord
	}

	if url, ok := rec.Field(kind); ok {
		return url, nil
	}
	return "", domain.NewFieldNotRegisteredError(kind)
}
