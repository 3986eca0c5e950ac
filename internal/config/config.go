package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/utils"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`
	Docs     DocsConfig     `mapstructure:"docs" yaml:"docs"`
	HTTP     HTTPConfig     `mapstructure:"http" yaml:"http"`
	Navigate NavigateConfig `mapstructure:"navigate" yaml:"navigate"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// RegistryConfig points at the crate registry
type RegistryConfig struct {
	URL    string `mapstructure:"url" yaml:"url"`
	APIURL string `mapstructure:"api_url" yaml:"api_url"`
}

// DocsConfig points at the documentation host used when a crate has no
// documentation link
type DocsConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// HTTPConfig contains registry transport settings
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
	ProxyURL  string        `mapstructure:"proxy_url" yaml:"proxy_url"`
}

// NavigateConfig contains navigation behaviour
type NavigateConfig struct {
	DefaultTarget string `mapstructure:"default_target" yaml:"default_target"`
	Print         bool   `mapstructure:"print" yaml:"print"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate fills empty or invalid values with defaults and rejects
// values that cannot be repaired
func (c *Config) Validate() error {
	var err error

	if c.Registry.URL, err = normalizeURL("registry.url", c.Registry.URL, DefaultRegistryURL); err != nil {
		return err
	}
	if c.Registry.APIURL == "" {
		c.Registry.APIURL = c.Registry.URL + "/api/v1"
	}
	if c.Registry.APIURL, err = normalizeURL("registry.api_url", c.Registry.APIURL, ""); err != nil {
		return err
	}
	if c.Docs.URL, err = normalizeURL("docs.url", c.Docs.URL, DefaultDocsURL); err != nil {
		return err
	}

	if c.HTTP.Timeout < 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(c.HTTP.UserAgent) == "" {
		c.HTTP.UserAgent = DefaultUserAgent()
	}
	if c.HTTP.ProxyURL != "" {
		u, perr := url.Parse(c.HTTP.ProxyURL)
		if perr != nil || u.Host == "" {
			return domain.NewValidationError("http.proxy_url", fmt.Sprintf("invalid proxy URL %q", c.HTTP.ProxyURL))
		}
		switch u.Scheme {
		case "http", "https", "socks5":
		default:
			return domain.NewValidationError("http.proxy_url", fmt.Sprintf("unsupported proxy scheme %q", u.Scheme))
		}
	}

	if strings.TrimSpace(c.Navigate.DefaultTarget) == "" {
		c.Navigate.DefaultTarget = DefaultTarget
	}
	if _, kerr := domain.ParseURLKind(c.Navigate.DefaultTarget); kerr != nil {
		return domain.NewValidationError("navigate.default_target", kerr.Error())
	}

	if !utils.ValidLogLevel(c.Logging.Level) {
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		c.Logging.Format = DefaultLogFormat
	}

	return nil
}

// DefaultKind returns the target used when none is given on the command line
func (c *Config) DefaultKind() domain.URLKind {
	kind, err := domain.ParseURLKind(c.Navigate.DefaultTarget)
	if err != nil {
		return domain.KindRepository
	}
	return kind
}

// YAML renders the configuration in the config file format
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(out), nil
}

func normalizeURL(field, raw, fallback string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		if fallback == "" {
			return "", domain.NewValidationError(field, "must not be empty")
		}
		return fallback, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", domain.NewValidationError(field, fmt.Sprintf("invalid URL %q", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", domain.NewValidationError(field, fmt.Sprintf("URL %q must use http or https", raw))
	}
	if u.Host == "" {
		return "", domain.NewValidationError(field, fmt.Sprintf("URL %q has no host", raw))
	}
	return raw, nil
}
