package logger

import (
	"io"
	"log/slog"

	"github.com/jwebster45206/expedition/internal/config"
)

// Setup configures the global slog logger based on environment.
// The console passes its log file as w since stdout belongs to the terminal UI.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// WithExpedition adds the expedition and region to logger context
func WithExpedition(logger *slog.Logger, expeditionID, regionID string) *slog.Logger {
	return logger.With("expedition_id", expeditionID, "region", regionID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
