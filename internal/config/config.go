package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultJWTSecret = "change-me-jwt-secret"

	StorageMemory   = "memory"
	StorageDatabase = "database"
	StorageRedis    = "redis"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	AppEnv   string    `env:"APP_ENV" envDefault:"dev"`
	AppName  string    `env:"APP_NAME" envDefault:"AutoElite"`
	HTTPAddr string    `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel string    `env:"LOG_LEVEL" envDefault:"info"`
	DSN      string    `env:"DATABASE_URL" envDefault:"file:autosalon.db?_pragma=foreign_keys(1)"`
	JWT      JWTConfig `envPrefix:"JWT_"`
	Storage  StorageConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	CookieSecure       bool     `env:"COOKIE_SECURE" envDefault:"false"`
}

type JWTConfig struct {
	Secret string        `env:"SECRET" envDefault:"change-me-jwt-secret"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// StorageConfig selects where client-side state (favorites, history,
// sessions, tokens) is kept.
type StorageConfig struct {
	Backend     string `env:"STORAGE_BACKEND" envDefault:"database"`
	RedisURL    string `env:"REDIS_URL"`
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"autoelite:"`
}

// Load reads an optional .env file, then the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageDatabase:
	case StorageRedis:
		if cfg.Storage.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: memory, database, redis")
	}

	if cfg.IsProdLike() {
		if isEmptyOrDefault(cfg.JWT.Secret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
		if cfg.Storage.Backend == StorageMemory {
			return fmt.Errorf("in prod/release STORAGE_BACKEND=memory is not allowed")
		}
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
