package config

import "time"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Host to bind the HTTP API server
	Host string `mapstructure:"host"`

	// Port for the HTTP API server
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`

	// Request timeouts
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// Graceful shutdown deadline
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Rate limiting settings for inbound requests
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
