package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may keep running
// once a stop signal arrives.
const shutdownTimeout = 10 * time.Second

// startHTTPServer serves router on the configured port and blocks until
// a termination signal, a listener failure, or ctx cancellation. It
// drains in-flight requests before releasing application resources.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("HTTP server listening", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stopCh)

	select {
	case sig := <-stopCh:
		app.logger.Info("Termination signal received", "signal", sig.String())
	case err := <-errCh:
		app.logger.Error("HTTP server failed", "error", err)
		app.cleanup()
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		app.logger.Info("Context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Graceful shutdown failed", "error", err)
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	app.cleanup()

	app.logger.Info("HTTP server stopped")
	return nil
}
