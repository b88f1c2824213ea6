package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8080"
	defaultAPITimeout = 10 * time.Second
	// devSessionSecret is only accepted when APP_ENV=development.
	devSessionSecret = "sevahub-development-session-secret"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and modules depend on this interface rather than on *Config so
// tests can substitute their own values.
type Provider interface {
	GetAppEnv() string
	GetAppAddr() string
	GetAppBaseURL() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetCatalogPath() string
	GetCatalogWatch() bool
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string
	AppAddr       string
	AppBaseURL    string
	APIBaseURL    string
	APITimeout    time.Duration
	SessionSecret string
	LogFormat     string
	LogLevel      string
	CatalogPath   string
	CatalogWatch  bool
}

// New loads configuration from a .env file (if present) and environment
// variables. It exits the process when required values are missing.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppEnv:        valueOr(getenv("APP_ENV"), "production"),
		AppAddr:       valueOr(getenv("APP_ADDR"), defaultAddr),
		AppBaseURL:    getenv("APP_BASE_URL"),
		APIBaseURL:    strings.TrimRight(getenv("API_BASE_URL"), "/"),
		APITimeout:    defaultAPITimeout,
		SessionSecret: getenv("SESSION_SECRET"),
		LogFormat:     valueOr(getenv("LOG_FORMAT"), "text"),
		LogLevel:      valueOr(getenv("LOG_LEVEL"), "info"),
		CatalogPath:   getenv("CATALOG_PATH"),
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("API_BASE_URL is required")
	}

	if raw := getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT %q: %w", raw, err)
		}
		cfg.APITimeout = d
	}

	if raw := getenv("CATALOG_WATCH"); raw != "" {
		watch, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CATALOG_WATCH %q: %w", raw, err)
		}
		cfg.CatalogWatch = watch
	}

	if cfg.SessionSecret == "" {
		if cfg.AppEnv != "development" {
			return nil, errors.New("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = devSessionSecret
	}

	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = "http://localhost" + cfg.AppAddr
	}

	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (c *Config) GetAppEnv() string { return c.AppEnv }
func (c *Config) GetAppAddr() string { return c.AppAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetAPIBaseURL() string { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) GetCatalogPath() string { return c.CatalogPath }
func (c *Config) GetCatalogWatch() bool { return c.CatalogWatch }
