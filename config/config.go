// Package config loads the service configuration from the environment.
//
// Values come from process environment variables, optionally seeded from a
// .env file in the working directory. Cloud Run injects PORT, K_SERVICE and
// K_REVISION; everything else falls back to the defaults below.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvGinMode         = "GIN_MODE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvReadTimeout     = "HTTP_READ_TIMEOUT"
	EnvWriteTimeout    = "HTTP_WRITE_TIMEOUT"
	EnvIdleTimeout     = "HTTP_IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvService         = "K_SERVICE"
	EnvRevision        = "K_REVISION"
	EnvProject         = "GOOGLE_CLOUD_PROJECT"
	EnvRateLimitRPS    = "RATE_LIMIT_RPS"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
)

const (
	// DefaultServiceName is used when K_SERVICE is unset, i.e. outside Cloud Run
	DefaultServiceName = "hello-service"

	// ShutdownTimeout is the default time allowed for in-flight requests to drain
	ShutdownTimeout = 30 * time.Second

	defaultPort         = "8080"
	defaultLogLevel     = "info"
	defaultRateBurst    = 20
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Config holds the service configuration.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ServiceName string
	Revision    string
	ProjectID   string

	RateLimit RateLimitConfig

	// TrustedProxies lists the IPs/CIDRs allowed to set X-Forwarded-For.
	// Empty means the socket peer is always the client.
	TrustedProxies []string
}

// RateLimitConfig configures the per-client limiter. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Enabled reports whether requests should be rate limited.
func (r RateLimitConfig) Enabled() bool {
	return r.RPS > 0
}

// Load reads the configuration from the environment and validates it.
// A missing .env file is not an error.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv seeds the process environment from ./.env if it exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// FromEnv builds a Config from environment variables without validating it.
func FromEnv() *Config {
	return &Config{
		Port:            getEnv(EnvPort, defaultPort),
		GinMode:         getEnv(EnvGinMode, gin.ReleaseMode),
		LogLevel:        getEnv(EnvLogLevel, defaultLogLevel),
		ReadTimeout:     getEnvDuration(EnvReadTimeout, defaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, defaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, defaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, ShutdownTimeout),
		ServiceName:     getEnv(EnvService, DefaultServiceName),
		Revision:        getEnv(EnvRevision, ""),
		ProjectID:       getEnv(EnvProject, ""),
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat(EnvRateLimitRPS, 0),
			Burst: getEnvInt(EnvRateLimitBurst, defaultRateBurst),
		},
		TrustedProxies: getEnvList(EnvTrustedProxies),
	}
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return errors.New("invalid port: must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %d out of range", port)
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid gin mode: %q (must be debug, release or test)", c.GinMode)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return errors.New("http timeouts must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	if c.RateLimit.RPS < 0 {
		return errors.New("rate limit rps must not be negative")
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst must be at least 1")
	}

	for _, proxy := range c.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("invalid trusted proxy: %q", proxy)
		}
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvList splits a comma separated value, dropping blank entries
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validProxy(proxy string) bool {
	if strings.Contains(proxy, "/") {
		_, _, err := net.ParseCIDR(proxy)
		return err == nil
	}
	return net.ParseIP(proxy) != nil
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
