// Package log provides the logging facility for qlaunch.
// It wraps log/slog with a process-wide logger that can be reconfigured
// at runtime from the loaded configuration.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	mu     sync.RWMutex
)

// ParseLevel converts a string log level to a slog.Level.
// Valid values are "debug", "info", "warn", "error"; anything else
// falls back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init конфигурира глобалния logger с level и формат ("text" или "json")
func Init(level, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(handler)
}

// Get връща текущия logger
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}
