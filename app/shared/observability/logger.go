package observability

import (
	"io"
	"log/slog"
	"os"
)

// NoOpLogger discards everything; used by tests and as a safe default.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewLogger builds the service logger: JSON to stdout, debug level outside
// production.
func NewLogger(environment string) *slog.Logger {
	level := slog.LevelDebug
	if environment == "production" {
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("env", environment))
}
