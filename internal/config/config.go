package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs access tokens; it must be long enough to resist
	// brute-force attacks against HMAC-SHA256.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is how long an issued access token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// RateLimitConfig contains the fixed-window rate limiter settings applied
// per client IP.
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed per window.
	Requests int `mapstructure:"requests" validate:"required,gt=0"`

	// WindowSeconds is the length of the counting window.
	WindowSeconds int `mapstructure:"window_seconds" validate:"required,gt=0"`
}

// CacheConfig contains the response cache settings.
type CacheConfig struct {
	// TTLSeconds is how long a cached response stays valid. Entries expire
	// only by TTL; writes do not invalidate them.
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"required,gt=0"`

	// RedisURL selects the Redis cache backend when set. Empty means the
	// in-process memory backend.
	RedisURL string `mapstructure:"redis_url" validate:"omitempty,url"`
}
