// Command weather prints the multi-day overview and the per-day summary for
// a weather CSV file.
//
// Usage:
//
//	go run ./cmd/weather -file data/weather.csv
//
// The file defaults to WEATHER_DATA_PATH. Logging follows LOG_LEVEL and
// LOG_FORMAT and goes to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/weather-overview/internal/config"
	"github.com/couchcryptid/weather-overview/internal/domain"
	"github.com/couchcryptid/weather-overview/internal/loader"
	"github.com/couchcryptid/weather-overview/internal/observability"
)

type options struct {
	path     string
	overview bool
	daily    bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	opts := options{}
	flag.StringVar(&opts.path, "file", cfg.DataPath, "path to the weather CSV file")
	flag.BoolVar(&opts.overview, "overview", true, "print the multi-day overview")
	flag.BoolVar(&opts.daily, "daily", true, "print the per-day summary")
	flag.Parse()

	logger := observability.NewWriterLogger(os.Stderr, cfg)

	if err := run(os.Stdout, opts, logger); err != nil {
		logger.Error("weather summary failed", "error", err, "file", opts.path)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options, logger *slog.Logger) error {
	table, err := loader.Load(opts.path)
	if err != nil {
		return err
	}
	logger.Debug("table loaded", "file", opts.path, "rows", len(table))

	if opts.overview {
		overview, err := domain.GenerateSummary(table)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, overview); err != nil {
			return err
		}
	}

	if opts.daily {
		daily, err := domain.GenerateDailySummary(table)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, daily); err != nil {
			return err
		}
	}
	return nil
}
