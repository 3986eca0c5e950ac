// Package app wires manifest, registry and browser together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/cargo-navigate/internal/browser"
	"github.com/quantmind-br/cargo-navigate/internal/config"
	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/fetcher"
	"github.com/quantmind-br/cargo-navigate/internal/manifest"
	"github.com/quantmind-br/cargo-navigate/internal/registry"
	"github.com/quantmind-br/cargo-navigate/internal/resolver"
	"github.com/quantmind-br/cargo-navigate/internal/utils"
)

// Navigator resolves navigation targets and opens them
type Navigator struct {
	loader   *manifest.Loader
	registry *registry.Client
	fetcher  domain.Fetcher
	opener   domain.Opener
	hosts    resolver.Hosts
	workDir  func() (string, error)
	logger   *utils.Logger
}

// NavigatorOptions contains options for creating a navigator. Only
// Config is required; the rest default to the real implementations.
type NavigatorOptions struct {
	Config  *config.Config
	Verbose bool

	Fetcher domain.Fetcher
	Opener  domain.Opener
	// Stdout receives URLs when Config.Navigate.Print is set
	Stdout  io.Writer
	WorkDir func() (string, error)
	Logger  *utils.Logger
}

// NewNavigator creates a navigator from the given configuration
func NewNavigator(opts NavigatorOptions) (*Navigator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	f := opts.Fetcher
	if f == nil {
		client, err := fetcher.NewClient(fetcher.ClientOptions{
			Timeout:   cfg.HTTP.Timeout,
			UserAgent: cfg.HTTP.UserAgent,
			ProxyURL:  cfg.HTTP.ProxyURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		f = client
	}

	opener := opts.Opener
	if opener == nil {
		if cfg.Navigate.Print {
			stdout := opts.Stdout
			if stdout == nil {
				stdout = os.Stdout
			}
			opener = browser.NewPrinter(stdout)
		} else {
			opener = browser.NewLauncher(browser.WithLogger(logger))
		}
	}

	workDir := opts.WorkDir
	if workDir == nil {
		workDir = os.Getwd
	}

	return &Navigator{
		loader: manifest.NewLoader(),
		registry: registry.NewClient(f, registry.Options{
			APIURL: cfg.Registry.APIURL,
			Logger: logger,
		}),
		fetcher: f,
		opener:  opener,
		hosts: resolver.Hosts{
			Registry: cfg.Registry.URL,
			Docs:     cfg.Docs.URL,
		},
		workDir: workDir,
		logger:  logger.WithComponent("navigator"),
	}, nil
}

// Resolve returns the URL for kind. With a crate name the registry is
// consulted, except for the listing page which is built from the name
// alone. Without a name the Cargo.toml in the working directory is used.
func (n *Navigator) Resolve(ctx context.Context, name string, kind domain.URLKind) (string, error) {
	log := n.logger.WithKind(kind.String())

	if name != "" {
		log = log.WithCrate(name)

		if kind == domain.KindRegistryListing {
			url := n.hosts.ListingURL(name)
			log.Debug().Str("url", url).Msg("Resolved listing from crate name")
			return url, nil
		}

		rec, err := n.registry.Lookup(ctx, name)
		if err != nil {
			return "", err
		}
		url, err := resolver.FromRegistry(rec, kind)
		if err != nil {
			return "", err
		}
		log.Debug().Str("url", url).Msg("Resolved from registry")
		return url, nil
	}

	dir, err := n.workDir()
	if err != nil {
		return "", domain.NewManifestUnreadableError(err)
	}

	m, err := n.loader.Load(dir)
	if err != nil {
		return "", err
	}
	url, err := resolver.FromManifest(m, kind, n.hosts)
	if err != nil {
		return "", err
	}
	log.Debug().Str("manifest", manifest.Path(dir)).Str("url", url).Msg("Resolved from manifest")
	return url, nil
}

// Navigate resolves kind and hands the URL to the opener
func (n *Navigator) Navigate(ctx context.Context, name string, kind domain.URLKind) error {
	url, err := n.Resolve(ctx, name, kind)
	if err != nil {
		return err
	}

	n.logger.Info().Str("url", url).Msg("Opening")

	if err := n.opener.Open(url); err != nil {
		var navErr *domain.NavigationError
		if errors.As(err, &navErr) {
			return err
		}
		return domain.NewLaunchFailedError(url, err)
	}
	return nil
}

// Close releases the HTTP client
func (n *Navigator) Close() error {
	if n.fetcher != nil {
		return n.fetcher.Close()
	}
	return nil
}
