package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// placeholderKeys are values that must never reach the recipe API in production
var placeholderKeys = []string{
	"YOUR_KEY_HERE",
	"YOUR_API_KEY",
	"changeme",
	"CHANGEME",
	"",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variables override everything, e.g. RECIPES_SPOONACULAR_API_KEY
		viper.SetEnvPrefix("RECIPES")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !os.IsNotExist(err) && !errors.As(err, &notFound) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetInt("spoonacular.requests_per_minute") < 0 {
		return fmt.Errorf("spoonacular.requests_per_minute must not be negative")
	}

	switch backend := viper.GetString("cache.backend"); backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid cache backend: %q", backend)
	}

	if viper.GetDuration("grid.idle_timeout") <= 0 {
		viper.Set("grid.idle_timeout", 30*time.Minute)
	}

	return validateAPIKey()
}

// validateAPIKey rejects placeholder recipe API keys in production.
// Elsewhere a missing key only surfaces when a request is made.
func validateAPIKey() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	apiKey := viper.GetString("spoonacular.api_key")
	for _, placeholder := range placeholderKeys {
		if apiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid Spoonacular API key: cannot use placeholder values in production")
			}
			fmt.Fprintln(os.Stderr, "Warning: Spoonacular API key is not configured; searches will fail")
			break
		}
	}
	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Cache.Enabled {
		if c.Cache.SearchTTL < 0 || c.Cache.RecipeTTL < 0 {
			return fmt.Errorf("cache TTLs must not be negative")
		}
		if c.Cache.Backend == "redis" && c.Redis.Addr == "" && c.Redis.URL == "" {
			return fmt.Errorf("redis cache backend requires redis.addr or redis.url")
		}
	}

	if c.Grid.IdleTimeout <= 0 {
		c.Grid.IdleTimeout = 30 * time.Minute
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/recipes.db")
	viper.SetDefault("database.verbose", false)

	// Spoonacular defaults. No timeout: requests are bounded by the transport only.
	viper.SetDefault("spoonacular.api_key", "")
	viper.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	viper.SetDefault("spoonacular.timeout", time.Duration(0))
	viper.SetDefault("spoonacular.user_agent", "RecipeSearch/1.0")
	viper.SetDefault("spoonacular.requests_per_minute", 0)

	// Cache defaults mirror the upstream freshness windows
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.search_ttl", time.Hour)
	viper.SetDefault("cache.recipe_ttl", 24*time.Hour)

	// Redis defaults
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.url", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Session defaults
	viper.SetDefault("session.cookie_name", "recipes_session")
	viper.SetDefault("session.max_age", 365*24*time.Hour)
	viper.SetDefault("session.secure", false)
	viper.SetDefault("session.cleanup_interval", 24*time.Hour)

	// Grid defaults
	viper.SetDefault("grid.idle_timeout", 30*time.Minute)
	viper.SetDefault("grid.sweep_interval", 5*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 5)
	viper.SetDefault("rate_limiting.burst", 10)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}
