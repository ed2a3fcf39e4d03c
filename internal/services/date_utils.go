package services

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical map key for daily entries. It is always the
// local calendar date, and sorts lexicographically in chronological order.
const DateKeyLayout = "2006-01-02"

const MonthKeyLayout = "2006-01"

// DateAtLocation truncates a moment to local midnight in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// FormatDateKey renders the canonical zero-padded YYYY-MM-DD key for a date.
func FormatDateKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as a local midnight date.
func ParseDateKey(key string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(DateKeyLayout, key, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return parsed, nil
}

// MonthStart returns local midnight on the first day of the month containing
// the given date.
func MonthStart(value time.Time, location *time.Location) time.Time {
	localized := DateAtLocation(value, location)
	return time.Date(localized.Year(), localized.Month(), 1, 0, 0, 0, 0, localized.Location())
}

// MonthLabel renders the report-facing month heading, e.g. "January 2024".
func MonthLabel(monthStart time.Time) string {
	return monthStart.Format("January 2006")
}

// DaysBetween counts whole days from one local midnight to another. Both
// arguments are expected to be midnight-aligned; AddDate is used instead of
// Sub so daylight-saving transitions never shift the count.
func DaysBetween(from time.Time, to time.Time) int {
	days := 0
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		days++
	}
	return days
}
