package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	apiMiddleware "github.com/taskflowhq/taskflow-api/internal/api/middleware"
	"github.com/taskflowhq/taskflow-api/internal/cache"
	"github.com/taskflowhq/taskflow-api/internal/config"
	"github.com/taskflowhq/taskflow-api/internal/metrics"
	"github.com/taskflowhq/taskflow-api/internal/platform/postgres"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// application carries every long-lived dependency of the server. Anything
// that needs explicit shutdown hangs off this struct so cleanup can release
// it all in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	taskService      service.TaskService

	registry  *prometheus.Registry
	collector *metrics.Collector

	// Middleware with background goroutines or connections of their own.
	cacheBackend  cache.Cache
	rateLimiter   *apiMiddleware.RateLimiter
	responseCache *apiMiddleware.ResponseCache
}

// newApplication builds the dependency graph on top of the already
// established config, logger, and database handle. Construction is ordered:
// stores before services, services before middleware.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT service ready",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, bcrypt.DefaultCost)
	app.taskStore = postgres.NewPostgresTaskStore(db)

	app.taskService, err = service.NewTaskService(app.taskStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.registry = prometheus.NewRegistry()
	app.collector = metrics.NewCollector(app.registry)

	// Redis backs the response cache when configured; otherwise responses
	// are cached in process memory.
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if cfg.Cache.RedisURL != "" {
		app.cacheBackend, err = cache.NewRedis(ctx, cfg.Cache.RedisURL, cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
		logger.Info("Response cache initialized",
			"backend", "redis",
			"ttl_seconds", cfg.Cache.TTLSeconds)
	} else {
		app.cacheBackend = cache.NewMemory(cacheTTL)
		logger.Info("Response cache initialized",
			"backend", "memory",
			"ttl_seconds", cfg.Cache.TTLSeconds)
	}

	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit.Requests, window, app.collector)
	app.responseCache = apiMiddleware.NewResponseCache(app.cacheBackend, app.collector)
	logger.Info("Rate limiter initialized",
		"requests", cfg.RateLimit.Requests,
		"window_seconds", cfg.RateLimit.WindowSeconds)

	logger.Info("Application initialized")
	return app, nil
}

// Run serves HTTP until the context is canceled, a termination signal
// arrives, or the listener fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases everything the application holds open. Safe to call with
// partially initialized state; each field is checked before use.
func (app *application) cleanup() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	if app.cacheBackend != nil {
		if err := app.cacheBackend.Close(); err != nil {
			app.logger.Error("Failed to close cache backend", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown complete")
}
