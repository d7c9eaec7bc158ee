// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup("info")
//
// Accepted levels: debug, info, warn, error (unknown values fall back to
// info).
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler at the given level as the slog default.
func Setup(level string) {
	SetupWithLevel(parseLevel(level))
}

// SetupWithLevel installs a tint handler at the given slog level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
