// Command genmock writes a deterministic weather CSV fixture and, optionally,
// the JSON report the service renders for it. It uses the actual domain and
// loader packages so the report fixture matches real service output.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out data/mock/weather_2021_07.csv \
//	  -report-out data/mock/weather_2021_07_report.json \
//	  -start 2021-07-06 -days 7 -seed 42
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-overview/internal/domain"
	"github.com/couchcryptid/weather-overview/internal/loader"
	"github.com/jonboulle/clockwork"
)

// generatedAt is the fixed report timestamp for reproducible fixtures.
var generatedAt = time.Date(2021, time.July, 5, 18, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the CSV fixture")
	reportOut := flag.String("report-out", "", "optional output path for the rendered JSON report")
	start := flag.String("start", "2021-07-06", "first date (YYYY-MM-DD)")
	days := flag.Int("days", 7, "number of data rows")
	seed := flag.Uint64("seed", 42, "random seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *days < 0 {
		return fmt.Errorf("-days must be >= 0, got %d", *days)
	}

	first, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}

	table := generate(first, *days, *seed)
	if err := writeCSV(*out, table); err != nil {
		return fmt.Errorf("writing CSV fixture: %w", err)
	}
	log.Printf("wrote CSV fixture: %s (%d rows)", *out, len(table))

	// Re-read through the real loader so the report reflects what the service sees.
	loaded, err := loader.Load(*out)
	if err != nil {
		return err
	}

	domain.SetClock(clockwork.NewFakeClockAt(generatedAt))
	defer domain.SetClock(nil)

	report, err := domain.NewReport(filepath.Base(*out), loaded)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if *reportOut != "" {
		if err := writeJSON(*reportOut, report); err != nil {
			return fmt.Errorf("writing report fixture: %w", err)
		}
		log.Printf("wrote report fixture: %s", *reportOut)
	}

	printStats(report)
	return nil
}

// generate produces days rows of plausible summer temperatures in °F.
func generate(first time.Time, days int, seed uint64) domain.Table {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	table := make(domain.Table, 0, days)
	for i := range days {
		low := 45 + rng.IntN(21)
		table = append(table, domain.Row{
			Date:     first.AddDate(0, 0, i).Format(time.DateOnly),
			MinTempF: low,
			MaxTempF: low + 12 + rng.IntN(19),
		})
	}
	return table
}

func writeCSV(path string, table domain.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "min", "max"}); err != nil {
		return err
	}
	for _, row := range table {
		rec := []string{row.Date, strconv.Itoa(row.MinTempF), strconv.Itoa(row.MaxTempF)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(report domain.Report) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Days: %d\n", report.Days)
	if report.Stats == nil {
		fmt.Println(report.Overview)
		return
	}
	s := report.Stats
	fmt.Printf("Lowest: %s on %s (row %d)\n", domain.FormatTemperature(s.Lowest.Temperature), s.Lowest.Date, s.Lowest.Index)
	fmt.Printf("Highest: %s on %s (row %d)\n", domain.FormatTemperature(s.Highest.Temperature), s.Highest.Date, s.Highest.Index)
	fmt.Printf("Average low: %s\n", domain.FormatTemperature(s.AverageLow))
	fmt.Printf("Average high: %s\n", domain.FormatTemperature(s.AverageHigh))
}
