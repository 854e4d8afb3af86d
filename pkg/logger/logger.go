// Package logger builds the process-wide slog.Logger from the logging
// configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var knownLevels = []string{"debug", "info", "warn", "warning", "error"}

// New creates a *slog.Logger writing to stderr. Level is one of debug,
// info, warn or error and defaults to info; format is text or json and
// defaults to text.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a *slog.Logger writing to w. Every record carries
// a service attribute.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("service", "vps-stock-monitor")
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level string to slog.Level, ignoring case.
// Unrecognized values return LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level is a recognized level name.
func ValidLevel(level string) bool {
	return slices.Contains(knownLevels, strings.ToLower(strings.TrimSpace(level)))
}

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	f := strings.ToLower(format)
	return f == FormatText || f == FormatJSON
}
