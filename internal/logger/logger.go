// Package logger provides structured logging setup using slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// New creates a new structured JSON logger writing to stderr, keeping
// stdout free for command output.
func New() *slog.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a structured JSON logger writing to w.
func NewWithWriter(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// ForRun tags the logger with a unique ID identifying one CLI invocation.
func ForRun(base *slog.Logger) *slog.Logger {
	return base.With("run_id", uuid.NewString())
}
