// Package loader reads weather tables from comma-delimited files.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-overview/internal/domain"
)

// Column positions in a data row. The header row is never inspected.
const (
	colDate = iota
	colMinTemp
	colMaxTemp
	minFields
)

// Source loads a table for a file path.
type Source interface {
	Load(path string) (domain.Table, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(path string) (domain.Table, error)

func (f SourceFunc) Load(path string) (domain.Table, error) { return f(path) }

// Load reads the file at path into a table. The first line is a header and is
// skipped unconditionally; blank lines are skipped (encoding/csv never
// returns them). Fields 1 and 2 must be
// base-10 integers.
func Load(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, domain.ErrNotFound, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}

// Read parses CSV weather data from r. See Load for the expected layout.
func Read(r io.Reader) (domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Table{}, nil
		}
		return nil, readError(err)
	}

	table := domain.Table{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table = append(table, row)
	}
	return table, nil
}

func parseRow(record []string) (domain.Row, error) {
	if len(record) < minFields {
		return domain.Row{}, fmt.Errorf("expected %d fields, got %d: %w", minFields, len(record), domain.ErrFormat)
	}
	minTemp, err := parseInt(record[colMinTemp])
	if err != nil {
		return domain.Row{}, err
	}
	maxTemp, err := parseInt(record[colMaxTemp])
	if err != nil {
		return domain.Row{}, err
	}
	return domain.Row{
		Date:     record[colDate],
		MinTempF: minTemp,
		MaxTempF: maxTemp,
	}, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse temperature %q: %w", s, domain.ErrFormat)
	}
	return v, nil
}

func readError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("line %d: %w: %w", perr.Line, domain.ErrFormat, err)
	}
	return fmt.Errorf("read: %w: %w", domain.ErrNotFound, err)
}
