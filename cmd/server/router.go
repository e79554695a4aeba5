package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskflowhq/taskflow-api/internal/api"
	apiMiddleware "github.com/taskflowhq/taskflow-api/internal/api/middleware"
	"github.com/taskflowhq/taskflow-api/internal/metrics"
)

// setupRouter assembles the chi router: the global middleware chain, the
// public auth endpoints, the authenticated task endpoints, and the health
// and metrics endpoints.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Order matters here. RealIP must run before the rate limiter so limits
	// key on the client address rather than the proxy's. Recoverer sits last
	// so panics in handlers are caught after a trace ID exists for the log.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics(app.collector))
	r.Use(app.rateLimiter.Limit)
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints.
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Everything below requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		// Response caching runs after authentication so cache keys can be
		// scoped to the requesting user.
		r.Use(app.responseCache.Serve)

		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Put("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", metrics.Handler(app.registry))

	return r
}
