package config

import (
	"testing"
	"time"
)

func validTestConfig() *Config {
	return &Config{
		Environment:    "dev",
		Host:           "0.0.0.0",
		Port:           3000,
		LogLevel:       "debug",
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		APIBaseURL:     "http://localhost:8080",
		StaticDir:      "./web/dist",
		RateLimitRPS:   100,
		RateLimitBurst: 20,
		MaxRequestSize: 12582912,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"staging environment", func(c *Config) { c.Environment = "staging" }, false},
		{"unknown environment", func(c *Config) { c.Environment = "production" }, true},
		{"port too low", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }, true},
		{"negative write timeout", func(c *Config) { c.WriteTimeout = -time.Second }, true},
		{"empty API base URL", func(c *Config) { c.APIBaseURL = "" }, true},
		{"zero max request size", func(c *Config) { c.MaxRequestSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCORSMiddleware(t *testing.T) {
	t.Run("no origins means no middleware", func(t *testing.T) {
		cfg := validTestConfig()

		mw, err := NewCORSMiddleware(cfg)
		if err != nil {
			t.Fatalf("NewCORSMiddleware: %v", err)
		}
		if mw != nil {
			t.Error("want nil middleware for same-origin deployment")
		}
	})

	t.Run("origins configured", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.AllowedOrigins = []string{"https://app.example.com"}

		mw, err := NewCORSMiddleware(cfg)
		if err != nil {
			t.Fatalf("NewCORSMiddleware: %v", err)
		}
		if mw == nil {
			t.Fatal("want middleware, got nil")
		}
	})

	t.Run("invalid origin rejected", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.AllowedOrigins = []string{"not a url"}

		if _, err := NewCORSMiddleware(cfg); err == nil {
			t.Error("want error for malformed origin")
		}
	})
}
