// Package logger configures the process-wide slog logger and passes
// request-scoped loggers through the context.
package logger

import (
	"log/slog"
	"os"

	"github.com/taskflowhq/taskflow-api/internal/config"
)

// Setup builds the process-wide JSON logger at the configured level,
// installs it as the slog default, and returns it. An unrecognized level
// falls back to info.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo

		// JSON logging is not up yet, so the complaint goes to stderr.
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
			"invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// Install as process default so package-level slog calls use it too.
	slog.SetDefault(logger)

	return logger, nil
}
