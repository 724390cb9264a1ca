// Package config loads the CLI's settings from viper and resolves
// filesystem paths the commands write to.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/common"
)

// Config holds everything the CLI needs to talk to the backend.
type Config struct {
	BaseURL   string
	LogLevel  string
	LogFormat string
	Timeout   time.Duration
}

// SetDefaults registers the default configuration values on viper.
func SetDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8080/api")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// Load reads the configuration from viper (flags, environment, config
// file) and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:   viper.GetString("api.base_url"),
		LogLevel:  viper.GetString("logging.level"),
		LogFormat: viper.GetString("logging.format"),
		Timeout:   viper.GetDuration("api.timeout"),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: api.base_url is required", common.ErrMissingConfig)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: api.timeout must be positive", common.ErrInvalidConfig)
	}
	return cfg, nil
}
