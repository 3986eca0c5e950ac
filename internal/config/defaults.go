package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/cargo-navigate/internal/resolver"
	"github.com/quantmind-br/cargo-navigate/pkg/version"
)

// Default values
const (
	DefaultRegistryURL = resolver.DefaultRegistryHost
	DefaultDocsURL     = resolver.DefaultDocsHost

	// Zero leaves the transport without a deadline
	DefaultTimeout = time.Duration(0)

	DefaultTarget = "repo"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix is prepended to upper-cased keys, e.g. CARGO_NAVIGATE_DOCS_URL
	EnvPrefix = "CARGO_NAVIGATE"
)

// DefaultUserAgent identifies the tool to the registry
func DefaultUserAgent() string {
	return version.UserAgent()
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cargo-navigate"
	}
	return filepath.Join(home, ".cargo-navigate")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			URL:    DefaultRegistryURL,
			APIURL: DefaultRegistryURL + "/api/v1",
		},
		Docs: DocsConfig{
			URL: DefaultDocsURL,
		},
		HTTP: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent(),
		},
		Navigate: NavigateConfig{
			DefaultTarget: DefaultTarget,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
