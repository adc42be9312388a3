package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string            `mapstructure:"environment"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Spoonacular  SpoonacularConfig `mapstructure:"spoonacular"`
	Cache        CacheConfig       `mapstructure:"cache"`
	Redis        RedisConfig       `mapstructure:"redis"`
	Session      SessionConfig     `mapstructure:"session"`
	Grid         GridConfig        `mapstructure:"grid"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting"`
	Logging      LoggingConfig     `mapstructure:"logging"`
	Monitoring   MonitoringConfig  `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// SpoonacularConfig contains recipe API settings
type SpoonacularConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`

	// RequestsPerMinute throttles calls to the upstream API; 0 disables it
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// CacheConfig contains upstream response cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Backend   string        `mapstructure:"backend"` // memory | redis
	MaxSizeMB int64         `mapstructure:"max_size_mb"`
	SearchTTL time.Duration `mapstructure:"search_ttl"`
	RecipeTTL time.Duration `mapstructure:"recipe_ttl"`
}

// RedisConfig contains Redis connection settings for the redis cache backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	URL      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig contains visitor cookie settings
type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age"`
	Secure     bool          `mapstructure:"secure"`

	// CleanupInterval is how often preferences older than MaxAge are pruned
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// GridConfig contains recipe grid registry settings
type GridConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// RateLimitConfig contains rate limiting settings for the JSON API
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}
