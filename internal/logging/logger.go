// Package logging wraps charmbracelet/log with the surface the cssunity
// commands use: a shared stderr logger, an interactive stdout variant for
// user-facing command output, and string-based level control.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // The shared default logger is package state.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// parseLevel maps a level name to its log.Level. Unknown names fall back
// to info.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(level)
	return logger
}

// New creates a stderr logger at the named level ("debug", "info",
// "warn", "error").
func New(level string) *log.Logger {
	return newLogger(os.Stderr, parseLevel(level))
}

// NewInteractive creates a logger for user-facing command output. It
// writes to stdout without timestamps so output reads like plain text.
func NewInteractive() *log.Logger {
	return newLogger(os.Stdout, log.InfoLevel)
}

// Default returns the shared logger, creating it on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the level of the shared logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
