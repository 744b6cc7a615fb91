// Package config loads the gateway configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Netflix/go-env"
	"github.com/jub0bs/cors"
)

// Config is the gateway server configuration
type Config struct {
	Environment    string        `env:"ENVIRONMENT,default=dev"`
	Host           string        `env:"HOST,default=0.0.0.0"`
	Port           int           `env:"PORT,default=3000"`
	LogLevel       string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	APIBaseURL     string        `env:"API_BASE_URL,default=http://localhost:8080"`
	StaticDir      string        `env:"STATIC_DIR,default=./web/dist"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS,separator=|"`
	RateLimitRPS   int32         `env:"RATE_LIMIT_RPS,default=100"`
	RateLimitBurst int32         `env:"RATE_LIMIT_BURST,default=20"`
	MaxRequestSize int64         `env:"MAX_REQUEST_SIZE,default=12582912"` // 12MB: 10MB video ceiling + form overhead
}

const (
	// ServerShutdownTimeout is the timeout for graceful server shutdown
	ServerShutdownTimeout = 10 * time.Second

	// ReadinessTimeout bounds the backend probe done by /health/ready
	ReadinessTimeout = 2 * time.Second

	CORSMaxAgeInSeconds = 86400 // 24 hours
)

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", cfg.IdleTimeout)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}
	if _, err := url.Parse(cfg.APIBaseURL); err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %w", err)
	}

	if cfg.MaxRequestSize <= 0 {
		return fmt.Errorf("max request size must be positive, got %d", cfg.MaxRequestSize)
	}

	return nil
}

// NewCORSMiddleware builds the CORS middleware for the configured SPA origins.
// Returns nil when no origins are configured (same-origin deployment).
func NewCORSMiddleware(cfg *Config) (*cors.Middleware, error) {
	if len(cfg.AllowedOrigins) == 0 {
		return nil, nil
	}

	corsMw, err := cors.NewMiddleware(cors.Config{
		Origins:         cfg.AllowedOrigins,
		Methods:         []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		RequestHeaders:  []string{"Authorization", "Content-Type"},
		MaxAgeInSeconds: CORSMaxAgeInSeconds,
		Credentialed:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create CORS middleware: %w", err)
	}

	return corsMw, nil
}
