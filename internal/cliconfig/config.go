// Package cliconfig loads cmd/rollingquantile's configuration, layering defaults, an optional
// config file, and environment variables the way the performance-analysis tooling this CLI was
// adapted from does.
package cliconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting cmd/rollingquantile's run command needs.
type Config struct {
	Filter FilterConfig `mapstructure:"filter"`
	Log    LogConfig    `mapstructure:"log"`
}

// FilterConfig controls the rolling quantile computation itself.
type FilterConfig struct {
	// Width is the sliding window width k.
	Width int `mapstructure:"width"`
	// Quantile is the quantile q in [0, 1]; 0.5 is the median.
	Quantile float64 `mapstructure:"quantile"`
	// NaNPolicy is either "error" (NaNError, the reference ordering) or "high" (NaNHigh).
	NaNPolicy string `mapstructure:"nan_policy"`
}

// LogConfig controls cmd/rollingquantile's logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath if non-empty, falling back to ./rollingquantile.yaml
// and ./configs/rollingquantile.yaml, then to defaults. Environment variables with the
// ROLLINGQUANTILE_ prefix override any of the above (e.g. ROLLINGQUANTILE_FILTER_WIDTH).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("rollingquantile")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file anywhere we looked; defaults and env vars stand alone.
		} else if os.IsNotExist(err) {
			// An explicit --config path that doesn't exist; same fallback.
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("rollingquantile")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("filter.width", 5)
	v.SetDefault("filter.quantile", 0.5)
	v.SetDefault("filter.nan_policy", "error")
	v.SetDefault("log.level", "info")
}
