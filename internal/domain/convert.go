package domain

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// DegreeSymbol is appended to every rendered temperature.
const DegreeSymbol = "°C"

// displayDateLayout renders dates like "Tuesday 06 July 2021".
const displayDateLayout = "Monday 02 January 2006"

// isoLayouts lists the ISO-8601 calendar-date forms accepted by ConvertDate:
// a bare date, or a date with a T or space separated time and optional offset.
// Fractional seconds are accepted by time.Parse after any seconds field.
var isoLayouts = func() []string {
	layouts := []string{time.DateOnly}
	for _, sep := range []string{"T", " "} {
		for _, clk := range []string{"15", "15:04", "15:04:05"} {
			base := time.DateOnly + sep + clk
			layouts = append(layouts, base, base+"Z07:00")
		}
	}
	return layouts
}()

// ParseNumber parses a decimal number, ignoring surrounding whitespace.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, ErrFormat)
	}
	return v, nil
}

// ParseNumbers parses every element with ParseNumber, failing on the first
// element that is not numeric.
func ParseNumbers(values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, s := range values {
		v, err := ParseNumber(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// ConvertFToC converts Fahrenheit to Celsius, rounded to one decimal place.
func ConvertFToC(tempF float64) float64 {
	return RoundTenths((tempF - 32) * 5 / 9)
}

// RoundTenths rounds v to one decimal place. Rounding is decided on the exact
// binary value of v, with exact ties going to the even digit, so 0.25 becomes
// 0.2 and 0.35 (stored as 0.3499...) becomes 0.3.
func RoundTenths(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// FormatTemperature renders temp followed by the degree symbol, without
// rounding. Integers render as integers ("20°C"); floats always carry a
// fractional part ("15.0°C").
func FormatTemperature[T constraints.Integer | constraints.Float](temp T) string {
	var s string
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		s = formatFloat(float64(temp), 32)
	case reflect.Float64:
		s = formatFloat(float64(temp), 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = strconv.FormatUint(uint64(temp), 10)
	default:
		s = strconv.FormatInt(int64(temp), 10)
	}
	return s + DegreeSymbol
}

// formatFloat writes the shortest representation that round-trips, switching
// to exponent notation for very large or very small magnitudes.
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, bitSize)
	}

	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ConvertDate turns an ISO-8601 date such as "2021-07-06" into
// "Tuesday 06 July 2021". The calendar date is used as written; an offset in
// the input does not shift it.
func ConvertDate(iso string) (string, error) {
	t, err := parseISODate(iso)
	if err != nil {
		return "", err
	}
	return t.Format(displayDateLayout), nil
}

func parseISODate(iso string) (time.Time, error) {
	if !hasTwoDigitHour(iso) {
		return time.Time{}, fmt.Errorf("convert date %q: %w", iso, ErrFormat)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("convert date %q: %w", iso, ErrFormat)
}

// hasTwoDigitHour reports whether a time part, if present, starts with a
// two-digit hour. time.Parse alone also accepts a single-digit hour.
func hasTwoDigitHour(iso string) bool {
	n := len(time.DateOnly)
	if len(iso) <= n {
		return true
	}
	return len(iso) >= n+3 && isDigit(iso[n+1]) && isDigit(iso[n+2])
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
