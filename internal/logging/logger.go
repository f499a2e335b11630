// Package logging provides the configured slog logger for svcgen.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Options configures the slog logger used by svcgen.
type Options struct {
	// Verbose toggles debug level logging when true.
	Verbose bool
	// Writer directs log output; defaults to os.Stderr when nil.
	Writer io.Writer
	// RunID, when set, is attached to every record as run=<id>.
	RunID string
}

// New constructs a slog.Logger with svcgen defaults.
func New(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
	if opts.RunID != "" {
		logger = logger.With("run", opts.RunID)
	}
	return logger
}

// NewRunID returns a short random identifier for correlating the log lines
// of one invocation.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
