package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultSessionSecret = "change-me-session-secret"

// Config holds the whole application configuration.
// It is populated from environment variables (optionally loaded from .env).
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Session SessionConfig
	Auth    AuthConfig
	Books   BooksConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

type AuthConfig struct {
	BcryptCost        int
	MaxFailedAttempts int
	LockoutWindow     time.Duration
}

// BooksConfig carries the tracker entity policies.
type BooksConfig struct {
	AutoPromoteStatusOnFinish bool
}

type CatalogConfig struct {
	PageSize    int
	ClampPage   bool
	SeedIfEmpty bool
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookshelf"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", defaultSessionSecret),
			TTL:        getEnvDuration("SESSION_TTL", time.Hour),
			CookieName: getEnv("SESSION_COOKIE", "bookshelf_session"),
		},
		Auth: AuthConfig{
			BcryptCost:        getEnvInt("BCRYPT_COST", 10),
			MaxFailedAttempts: getEnvInt("AUTH_MAX_FAILED_ATTEMPTS", 5),
			LockoutWindow:     getEnvDuration("AUTH_LOCKOUT_WINDOW", 15*time.Minute),
		},
		Books: BooksConfig{
			AutoPromoteStatusOnFinish: getEnvBool("BOOK_AUTO_PROMOTE_STATUS", true),
		},
		Catalog: CatalogConfig{
			PageSize:    getEnvInt("CATALOG_PAGE_SIZE", 10),
			ClampPage:   getEnvBool("CATALOG_CLAMP_PAGE", false),
			SeedIfEmpty: getEnvBool("CATALOG_SEED", true),
		},
	}
	cfg.Session.Secure = cfg.App.Environment == "production"

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.App.Environment == "production" {
		if c.Session.Secret == "" || c.Session.Secret == defaultSessionSecret {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
