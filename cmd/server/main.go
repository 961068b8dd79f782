package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/estatehub/api/internal/auth"
	"github.com/estatehub/api/internal/catalog"
	"github.com/estatehub/api/internal/config"
	"github.com/estatehub/api/internal/contact"
	"github.com/estatehub/api/internal/handlers"
	"github.com/estatehub/api/internal/reviews"
	"github.com/estatehub/api/internal/server"
	"github.com/estatehub/api/middlewares"
	"github.com/estatehub/api/pkg/cache"
	"github.com/estatehub/api/pkg/db"
	"github.com/estatehub/api/pkg/health"
	"github.com/estatehub/api/pkg/logger"
	"github.com/estatehub/api/pkg/mailer/resend"
	redisconn "github.com/estatehub/api/pkg/redis"
	"github.com/estatehub/api/pkg/storage"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor())

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if err := db.Migrate(ctx, pool, catalog.Migrations(), cfg.DB.MigrationsTable, log); err != nil {
		return err
	}

	checks := health.Checks{"postgres": db.Healthcheck(pool)}
	hooks := []server.ShutdownHook{db.Shutdown(pool)}

	// The review cache only exists when a positive TTL makes it
	// consultable; at the default TTL of zero every fetch re-queries
	// the upstream and no cache (or janitor goroutine) is created.
	var reviewsCache cache.Cache[*reviews.Summary]
	if cfg.RedisURL != "" {
		client, err := redisconn.Open(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		checks["redis"] = redisconn.Healthcheck(client)
		hooks = append(hooks, redisconn.Shutdown(client))
		if cfg.Reviews.CacheTTL > 0 {
			reviewsCache = cache.NewRedis[*reviews.Summary](client, nil, cache.WithPrefix("estatehub"))
		}
	} else if cfg.Reviews.CacheTTL > 0 {
		mem := cache.NewMemory[*reviews.Summary]()
		hooks = append(hooks, func(context.Context) error { return mem.Close() })
		reviewsCache = mem
	}

	sender := resend.New(resend.Config{
		APIKey:      cfg.Contact.APIKey,
		SenderEmail: cfg.Contact.FromEmail,
		SenderName:  cfg.Contact.FromName,
	})

	media, err := storage.New(cfg.Storage)
	if err != nil {
		return err
	}

	authSvc, err := auth.NewService(cfg.Auth)
	if err != nil {
		return err
	}

	router := handlers.NewRouter(handlers.Deps{
		Log:            log,
		Contact:        contact.NewService(sender, cfg.Contact, log),
		Reviews:        reviews.NewService(cfg.Reviews),
		ReviewsCache:   reviewsCache,
		Catalog:        catalog.NewStore(pool),
		Media:          media,
		Auth:           authSvc,
		Tokens:         authSvc.Tokens(),
		Health:         checks,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	return server.Run(ctx, cfg.Server, router, log, hooks...)
}
