package observability

import (
	"io"
	"log/slog"
	"os"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/weather-overview/internal/config"
	"github.com/lmittmann/tint"
)

const serviceName = "weather-overview"

// NewLogger builds the service logger on stdout and installs it as the slog
// default. LOG_FORMAT=json uses the shared JSON logger; text uses tint.
func NewLogger(cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == "text" {
		logger := NewWriterLogger(os.Stdout, cfg)
		slog.SetDefault(logger)
		return logger
	}
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat).With("service", serviceName)
}

// NewWriterLogger builds a logger that writes to w, for tools that keep
// stdout for their own output.
func NewWriterLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := levelOf(cfg.LogLevel)

	var h slog.Handler
	if cfg.LogFormat == "text" {
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(h).With("service", serviceName)
}

// levelOf decodes a level already normalized by config.Load. Unknown names
// fall back to info.
func levelOf(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
