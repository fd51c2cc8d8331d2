package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	YouTube      YouTubeConfig    `mapstructure:"youtube"`
	Processing   ProcessingConfig `mapstructure:"processing"`
	Cleaning     CleaningConfig   `mapstructure:"cleaning"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
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

// YouTubeConfig contains YouTube caption provider settings
type YouTubeConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	OEmbedURL string        `mapstructure:"oembed_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	Languages []string      `mapstructure:"languages"`
}

// ProcessingConfig contains transcript fetch worker settings
type ProcessingConfig struct {
	Workers      int           `mapstructure:"workers"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// CleaningConfig contains text cleaning settings
type CleaningConfig struct {
	StripEmoji         bool `mapstructure:"strip_emoji"`
	NormalizeUnicode   bool `mapstructure:"normalize_unicode"`
	CollapseWhitespace bool `mapstructure:"collapse_whitespace"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}
