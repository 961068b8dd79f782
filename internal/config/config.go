// Package config loads the full application configuration from the
// environment in one pass at startup. A missing required variable fails
// startup instead of surfacing later as a request-time error.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/estatehub/api/internal/auth"
	"github.com/estatehub/api/internal/contact"
	"github.com/estatehub/api/internal/reviews"
	"github.com/estatehub/api/internal/server"
	"github.com/estatehub/api/pkg/db"
	"github.com/estatehub/api/pkg/logger"
	"github.com/estatehub/api/pkg/storage"
)

// Config aggregates the per-package configuration structs.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// RedisURL is optional; when empty the review cache falls back to
	// the in-memory backend and the readiness probe skips redis.
	RedisURL string `env:"REDIS_URL"`

	Server  server.Config
	DB      db.Config
	Sentry  logger.SentryConfig
	Contact contact.Config
	Reviews reviews.Config
	Storage storage.Config
	Auth    auth.Config
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return &cfg, nil
}
