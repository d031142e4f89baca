package domain

import "time"

// Report bundles everything rendered for one table: the overview text, the
// per-day text, and the structured figures behind the overview.
type Report struct {
	Source      string    `json:"source"`
	Days        int       `json:"days"`
	Overview    string    `json:"overview"`
	Daily       string    `json:"daily"`
	Stats       *Stats    `json:"stats,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport renders table into a Report stamped with the current time.
// Stats is nil for an empty table.
func NewReport(source string, table Table) (Report, error) {
	report := Report{
		Source:   source,
		Days:     len(table),
		Overview: NoDataMessage,
	}

	if len(table) > 0 {
		stats, err := Summarize(table)
		if err != nil {
			return Report{}, err
		}
		report.Stats = &stats
		report.Overview = stats.String()
	}

	daily, err := GenerateDailySummary(table)
	if err != nil {
		return Report{}, err
	}
	report.Daily = daily
	report.GeneratedAt = clock.Now().UTC()
	return report, nil
}
