// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// EnvVarLogFormat is the environment variable name for setting the log format.
	EnvVarLogFormat = "LOG_FORMAT"

	// FormatJSON emits one JSON object per record.
	FormatJSON = "json"

	// FormatText emits logfmt style key=value records.
	FormatText = "text"
)

// Options configures a structured logger.
type Options struct {
	// Module and Version are attached to every record.
	Module  string
	Version string

	// Level is the minimum level (e.g., "debug", "info", "warn", "error").
	Level string

	// Format is FormatJSON (default) or FormatText.
	Format string
}

// New creates a structured logger writing to w.
// AddSource is enabled for debug level logging only.
func New(w io.Writer, opts Options) *slog.Logger {
	lev := ParseLogLevel(opts.Level)
	hopts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), FormatText) {
		h = slog.NewTextHandler(w, hopts)
	} else {
		h = slog.NewJSONHandler(w, hopts)
	}

	return slog.New(h).With("module", opts.Module, "version", opts.Version)
}

// NewLogLogger creates a new standard library log.Logger that writes logs
// using the slog package with the specified log level.
// Used for the http.Server error log.
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefault builds a logger from opts and sets it as the slog default.
// Empty Level and Format fall back to LOG_LEVEL and LOG_FORMAT.
func SetDefault(w io.Writer, opts Options) *slog.Logger {
	if opts.Level == "" {
		opts.Level = os.Getenv(EnvVarLogLevel)
	}
	if opts.Format == "" {
		opts.Format = os.Getenv(EnvVarLogFormat)
	}

	l := New(w, opts)
	slog.SetDefault(l)
	return l
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	var lev slog.Level

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lev = slog.LevelDebug
	case "warn", "warning":
		lev = slog.LevelWarn
	case "error":
		lev = slog.LevelError
	default:
		lev = slog.LevelInfo
	}

	return lev
}
