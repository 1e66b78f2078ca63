package server

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the HTTP server settings, loaded from the environment.
type Config struct {
	Host           string
	Port           string
	RequestTimeout time.Duration
	DetectTimeout  time.Duration
	MaxUploadBytes int64
	MinUploadBytes int64
	LogLevel       string
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}

// LoadConfig reads settings from environment variables, falling back to
// defaults suitable for local development.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Host:           getEnvOrDefault("HOST", "0.0.0.0"),
		Port:           getEnvOrDefault("PORT", "8080"),
		RequestTimeout: parseDurationOrDefault("REQUEST_TIMEOUT", 60*time.Second),
		DetectTimeout:  parseDurationOrDefault("DETECT_TIMEOUT", 30*time.Second),
		MaxUploadBytes: parseIntOrDefault("MAX_UPLOAD_BYTES", 10*1024*1024),
		MinUploadBytes: parseIntOrDefault("MIN_UPLOAD_BYTES", 10*1024),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
	}

	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxUploadBytes <= 0 || cfg.MinUploadBytes < 0 {
		return nil, fmt.Errorf("invalid upload limits (min=%d, max=%d)", cfg.MinUploadBytes, cfg.MaxUploadBytes)
	}
	if cfg.MinUploadBytes >= cfg.MaxUploadBytes {
		return nil, fmt.Errorf("MIN_UPLOAD_BYTES (%d) must be below MAX_UPLOAD_BYTES (%d)", cfg.MinUploadBytes, cfg.MaxUploadBytes)
	}
	if cfg.RequestTimeout <= 0 || cfg.DetectTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, detect=%s)", cfg.RequestTimeout, cfg.DetectTimeout)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
