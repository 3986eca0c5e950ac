package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolateHome points ConfigDir at an empty temporary home
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr string
	}{
		{
			name: "defaults are valid",
		},
		{
			name: "empty config is filled",
			modify: func(c *Config) {
				*c = Config{}
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "https://crates.io", c.Registry.URL)
				assert.Equal(t, "https://crates.io/api/v1", c.Registry.APIURL)
				assert.Equal(t, "https://docs.rs", c.Docs.URL)
				assert.Equal(t, DefaultUserAgent(), c.HTTP.UserAgent)
				assert.Equal(t, "repo", c.Navigate.DefaultTarget)
				assert.Equal(t, "warn", c.Logging.Level)
				assert.Equal(t, "pretty", c.Logging.Format)
			},
		},
		{
			name: "api url derived from registry url",
			modify: func(c *Config) {
				c.Registry.URL = "https://mirror.example/"
				c.Registry.APIURL = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "https://mirror.example", c.Registry.URL)
				assert.Equal(t, "https://mirror.example/api/v1", c.Registry.APIURL)
			},
		},
		{
			name: "explicit api url kept",
			modify: func(c *Config) {
				c.Registry.APIURL = "http://localhost:8080/api/v1/"
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "http://localhost:8080/api/v1", c.Registry.APIURL)
			},
		},
		{
			name: "negative timeout reset",
			modify: func(c *Config) {
				c.HTTP.Timeout = -time.Second
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
			},
		},
		{
			name: "invalid log level and format reset",
			modify: func(c *Config) {
				c.Logging.Level = "chatty"
				c.Logging.Format = "xml"
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
				assert.Equal(t, DefaultLogFormat, c.Logging.Format)
			},
		},
		{
			name: "default target alias",
			modify: func(c *Config) {
				c.Navigate.DefaultTarget = "Docs"
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, domain.KindDocumentation, c.DefaultKind())
			},
		},
		{
			name: "unknown default target",
			modify: func(c *Config) {
				c.Navigate.DefaultTarget = "wiki"
			},
			wantErr: "navigate.default_target",
		},
		{
			name: "registry url without scheme",
			modify: func(c *Config) {
				c.Registry.URL = "crates.io"
			},
			wantErr: "registry.url",
		},
		{
			name: "docs url with ftp scheme",
			modify: func(c *Config) {
				c.Docs.URL = "ftp://docs.example"
			},
			wantErr: "docs.url",
		},
		{
			name: "socks proxy accepted",
			modify: func(c *Config) {
				c.HTTP.ProxyURL = "socks5://127.0.0.1:1080"
			},
		},
		{
			name: "proxy with unsupported scheme",
			modify: func(c *Config) {
				c.HTTP.ProxyURL = "gopher://proxy:70"
			},
			wantErr: "http.proxy_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if tt.modify != nil {
				tt.modify(cfg)
			}

			err := cfg.Validate()
			if tt.wantErr != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Field)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_DefaultKind(t *testing.T) {
	cfg := Default()
	assert.Equal(t, domain.KindRepository, cfg.DefaultKind())

	cfg.Navigate.DefaultTarget = "crates.io"
	assert.Equal(t, domain.KindRegistryListing, cfg.DefaultKind())
}

func TestConfig_YAML(t *testing.T) {
	cfg := Default()
	cfg.HTTP.Timeout = 15 * time.Second

	out, err := cfg.YAML()
	require.NoError(t, err)

	assert.Contains(t, out, "registry:")
	assert.Contains(t, out, "api_url: https://crates.io/api/v1")
	assert.Contains(t, out, "timeout: 15s")
	assert.Contains(t, out, "default_target: repo")

	var back Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, *cfg, back)
}

func TestConfigDir(t *testing.T) {
	home := isolateHome(t)

	assert.Equal(t, filepath.Join(home, ".cargo-navigate"), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".cargo-navigate", "config.yaml"), ConfigFilePath())
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want, cfg)
}

func TestLoad_ConfigDirFile(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".cargo-navigate"), `
registry:
  url: https://mirror.example
docs:
  url: https://docs.example/
http:
  timeout: 10s
navigate:
  default_target: home
logging:
  level: debug
`)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example", cfg.Registry.URL)
	assert.Equal(t, "https://mirror.example/api/v1", cfg.Registry.APIURL)
	assert.Equal(t, "https://docs.example", cfg.Docs.URL)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, domain.KindHomepage, cfg.DefaultKind())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, t.TempDir(), "navigate:\n  print: true\n")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.True(t, cfg.Navigate.Print)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolateHome(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".cargo-navigate"), "invalid: yaml: content: [")

	cfg, err := Load(viper.New(), "")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValue(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".cargo-navigate"), "navigate:\n  default_target: wiki\n")

	_, err := Load(viper.New(), "")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoad_Environment(t *testing.T) {
	isolateHome(t)
	t.Setenv("CARGO_NAVIGATE_DOCS_URL", "https://docs.internal")
	t.Setenv("CARGO_NAVIGATE_HTTP_TIMEOUT", "3s")
	t.Setenv("CARGO_NAVIGATE_NAVIGATE_DEFAULT_TARGET", "crates")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://docs.internal", cfg.Docs.URL)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, domain.KindRegistryListing, cfg.DefaultKind())
}

func TestLoad_FlagsOverrideFileAndEnv(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".cargo-navigate"), "registry:\n  url: https://from-file.example\n")
	t.Setenv("CARGO_NAVIGATE_REGISTRY_URL", "https://from-env.example")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("registry-url", "", "")
	require.NoError(t, flags.Parse([]string{"--registry-url", "https://from-flag.example"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("registry.url", flags.Lookup("registry-url")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "https://from-flag.example", cfg.Registry.URL)
	assert.Equal(t, "https://from-flag.example/api/v1", cfg.Registry.APIURL)
}

func TestLoad_UnchangedFlagKeepsDefault(t *testing.T) {
	isolateHome(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Duration("timeout", 0, "")
	require.NoError(t, flags.Parse(nil))

	v := viper.New()
	require.NoError(t, v.BindPFlag("http.timeout", flags.Lookup("timeout")))
	t.Setenv("CARGO_NAVIGATE_HTTP_TIMEOUT", "7s")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.HTTP.Timeout)
}
