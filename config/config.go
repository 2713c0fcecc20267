package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/tmdbctl/tmdb"
)

// EnvPrefix prefixes every environment override, e.g. TMDB_API_KEY.
const EnvPrefix = "TMDB"

const appDir = "tmdbctl"

// Override sets a configuration key after files and environment are read.
type Override func(v *viper.Viper)

// Set overrides key with value unless value is the zero value of its type.
func Set[T comparable](key string, value T) Override {
	return func(v *viper.Viper) {
		var zero T
		if value != zero {
			v.Set(key, value)
		}
	}
}

// Load reads the configuration from configPath, or from config.yaml in the
// working directory, ~/.tmdbctl or /etc/tmdbctl. A .env file in the working
// directory is loaded into the environment first. A missing config file is
// fine as long as the API key arrives some other way.
func Load(configPath string, overrides ...Override) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+appDir))
		}
		v.AddConfigPath(filepath.Join("/etc", appDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for _, o := range overrides {
		o(v)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default
// so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", tmdb.DefaultBaseURL)
	v.SetDefault("language", "en-US")
	v.SetDefault("region", "")
	v.SetDefault("timeout", tmdb.DefaultTimeout)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 40.0)
	v.SetDefault("rate_limit.burst", 20)

	v.SetDefault("metrics.enabled", false)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.show_details", false)

	v.SetDefault("filter.presets", map[string]string{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.APIKey == "" || cfg.APIKey == "your-api-key-here" {
		return fmt.Errorf("api_key must be set (config file, --api-key or %s_API_KEY)", EnvPrefix)
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be positive when rate limiting is enabled")
		}
		if cfg.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be at least 1")
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", cfg.Output.Format)
	}

	return nil
}
