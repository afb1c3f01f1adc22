// Package config loads the service configuration from environment variables
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	CacheTTL    time.Duration
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Debug       bool
}

// RateLimitConfig is the per-client request budget: Requests per Window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables.
// It loads .env from the current directory when present, or the file given
// in envPath.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	requests, err := parseIntEnv("RATE_LIMIT_REQUESTS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}
	window, err := parseDurationEnv("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cacheTTL, err := parseDurationEnv("CACHE_TTL", time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrDefault("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CacheTTL:    cacheTTL,
		RateLimit: RateLimitConfig{
			Requests: requests,
			Window:   window,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("APP_PORT must not be empty")
	}
	if c.RateLimit.Requests <= 0 {
		return errors.New("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	if c.CacheTTL < 0 {
		return errors.New("CACHE_TTL must not be negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
