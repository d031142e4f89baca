package domain

import (
	"fmt"
	"strings"
)

// NoDataMessage is the overview rendered for an empty table.
const NoDataMessage = "No data available"

// DayExtreme is a temperature in Celsius and the display date it occurs on.
type DayExtreme struct {
	Temperature float64 `json:"temperature"`
	Date        string  `json:"date"`
	Index       int     `json:"index"`
}

// Stats holds the figures behind the multi-day overview. Temperatures are
// Celsius rounded to one decimal place.
type Stats struct {
	Days        int        `json:"days"`
	Lowest      DayExtreme `json:"lowest"`
	Highest     DayExtreme `json:"highest"`
	AverageLow  float64    `json:"average_low"`
	AverageHigh float64    `json:"average_high"`
}

// Summarize computes the lowest minimum, the highest maximum, and the average
// of each column. The table must not be empty.
func Summarize(table Table) (Stats, error) {
	if len(table) == 0 {
		return Stats{}, fmt.Errorf("summarize empty table: %w", ErrInvalidArgument)
	}

	minTemps := table.MinTemps()
	maxTemps := table.MaxTemps()

	// Both lookups succeed: the columns have one entry per row.
	lowest, _ := FindMin(minTemps)
	highest, _ := FindMax(maxTemps)

	avgMin, err := CalculateMean(minTemps)
	if err != nil {
		return Stats{}, err
	}
	avgMax, err := CalculateMean(maxTemps)
	if err != nil {
		return Stats{}, err
	}

	minDate, err := ConvertDate(table[lowest.Index].Date)
	if err != nil {
		return Stats{}, fmt.Errorf("row %d: %w", lowest.Index, err)
	}
	maxDate, err := ConvertDate(table[highest.Index].Date)
	if err != nil {
		return Stats{}, fmt.Errorf("row %d: %w", highest.Index, err)
	}

	return Stats{
		Days:        len(table),
		Lowest:      DayExtreme{Temperature: lowest.Value, Date: minDate, Index: lowest.Index},
		Highest:     DayExtreme{Temperature: highest.Value, Date: maxDate, Index: highest.Index},
		AverageLow:  RoundTenths(avgMin),
		AverageHigh: RoundTenths(avgMax),
	}, nil
}

// GenerateSummary renders the multi-day overview for table, or NoDataMessage
// when the table is empty.
func GenerateSummary(table Table) (string, error) {
	if len(table) == 0 {
		return NoDataMessage, nil
	}
	stats, err := Summarize(table)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return stats.String(), nil
}

// String renders the overview text.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", s.Days)
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n",
		FormatTemperature(s.Lowest.Temperature), s.Lowest.Date)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n",
		FormatTemperature(s.Highest.Temperature), s.Highest.Date)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", FormatTemperature(s.AverageLow))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", FormatTemperature(s.AverageHigh))
	return b.String()
}

// GenerateDailySummary renders one block per row, in row order. An empty
// table renders as the empty string.
func GenerateDailySummary(table Table) (string, error) {
	var b strings.Builder
	for i, row := range table {
		date, err := ConvertDate(row.Date)
		if err != nil {
			return "", fmt.Errorf("generate daily summary: row %d: %w", i, err)
		}
		fmt.Fprintf(&b, "---- %s ----\n", date)
		fmt.Fprintf(&b, "  Minimum Temperature: %s\n", FormatTemperature(ConvertFToC(float64(row.MinTempF))))
		fmt.Fprintf(&b, "  Maximum Temperature: %s\n\n", FormatTemperature(ConvertFToC(float64(row.MaxTempF))))
	}
	return b.String(), nil
}
