package model

import "time"

// Wire and display date layouts. Maintenance endpoints speak
// day-first, asset endpoints ISO; tables and exports render the
// abbreviated form.
const (
	WireDateMaintenance = "02-01-2006"
	WireDateAsset       = "2006-01-02"
	DisplayDate         = "02 Jan 2006"
)

var parseLayouts = []string{
	WireDateMaintenance,
	WireDateAsset,
	time.RFC3339,
	"2006-01-02T15:04:05.999Z07:00",
}

// ParseDate parses a wire date in any of the formats the API emits.
// Returns the zero time when the value is empty or unparseable; zero
// times sort after real dates and render as "N/A".
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDisplay renders a date for tables and exports.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(DisplayDate)
}

// DisplayDateOf is ParseDate followed by FormatDisplay.
func DisplayDateOf(s string) string {
	return FormatDisplay(ParseDate(s))
}

// PerformedAt returns the record's temporal sort key.
func (r MaintenanceRecord) PerformedAt() time.Time { return ParseDate(r.PerformedDate) }

// PerformedAt returns the entry's temporal sort key.
func (e HistoryEntry) PerformedAt() time.Time { return ParseDate(e.PerformedDate) }

// PlannedAt returns the plan's temporal sort key.
func (p MaintenancePlan) PlannedAt() time.Time { return ParseDate(p.PlannedDate) }
