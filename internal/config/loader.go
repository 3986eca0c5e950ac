package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration into v from defaults, the config file, the
// environment and any flags already bound to v, in increasing priority.
// An empty configFile searches ConfigDir for config.yaml; a missing file
// there is not an error, a missing explicit file is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// CARGO_NAVIGATE_*
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("registry.url", DefaultRegistryURL)
	v.SetDefault("registry.api_url", "")

	v.SetDefault("docs.url", DefaultDocsURL)

	v.SetDefault("http.timeout", DefaultTimeout)
	v.SetDefault("http.user_agent", "")
	v.SetDefault("http.proxy_url", "")

	v.SetDefault("navigate.default_target", DefaultTarget)
	v.SetDefault("navigate.print", false)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
