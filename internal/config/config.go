package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the tracker service.
// Environment variables are parsed from the BETTER_BITES_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Database. DBDriver "auto" resolves to postgres when a DSN is present,
	// otherwise sqlite.
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"better-bites.db"`

	// Auth. AuthMode "jwt" validates bearer tokens with JWTSecret;
	// "dev" accepts the shared development token only.
	AuthMode  string `envconfig:"AUTH_MODE" default:"dev"`
	JWTSecret string `envconfig:"JWT_SECRET" default:""`

	// ServiceKey guards privileged food-cache endpoints (refresh, bulk).
	ServiceKey string `envconfig:"SERVICE_KEY" default:""`

	// Open Food Facts proxy cache
	OpenFoodFactsURL  string `envconfig:"OPENFOODFACTS_URL" default:"https://world.openfoodfacts.org"`
	FoodCacheTTLHours int    `envconfig:"FOOD_CACHE_TTL_HOURS" default:"24"`
}

// ResolveDefaults validates driver and auth settings and derives DBDriver
// when set to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		if c.PostgresDSN != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}

	allowedDB := map[string]bool{"postgres": true, "sqlite": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
	}

	switch c.AuthMode {
	case "jwt":
		if c.JWTSecret == "" {
			return fmt.Errorf("AUTH_MODE=jwt requires JWT_SECRET")
		}
	case "dev":
	default:
		return fmt.Errorf("unsupported AUTH_MODE: %s", c.AuthMode)
	}

	if c.FoodCacheTTLHours <= 0 {
		return fmt.Errorf("FOOD_CACHE_TTL_HOURS must be positive")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with BETTER_BITES_
// Example: BETTER_BITES_HTTP_PORT, BETTER_BITES_POSTGRES_DSN
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BETTER_BITES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("db_driver", cfg.DBDriver).
		Str("auth_mode", cfg.AuthMode).
		Str("postgres_dsn_present", func() string {
			if cfg.PostgresDSN != "" {
				return "true"
			}
			return "false"
		}()).
		Str("openfoodfacts_url", cfg.OpenFoodFactsURL).
		Int("food_cache_ttl_hours", cfg.FoodCacheTTLHours).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	cfg := &Config{
		Environment:       EnvTesting,
		HTTPPort:          8080,
		DBDriver:          "sqlite",
		SQLitePath:        ":memory:",
		AuthMode:          "dev",
		OpenFoodFactsURL:  "https://world.openfoodfacts.org",
		FoodCacheTTLHours: 24,
	}
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
