package services

import (
	"errors"
	"time"

	"github.com/RACSolutions/endocare/internal/models"
)

var ErrUnknownTimeWindow = errors.New("unknown time window")

type TimeWindow string

const (
	Window30Days  TimeWindow = "30d"
	Window3Months TimeWindow = "3m"
	Window6Months TimeWindow = "6m"
	Window1Year   TimeWindow = "1y"
	WindowAll     TimeWindow = "all"
)

type timeWindowOption struct {
	Window TimeWindow
	Label  string
	Days   int // 0 means unbounded
}

// Window day counts are fixed (90/180/365), not calendar-accurate month
// lengths.
var timeWindowOptions = []timeWindowOption{
	{Window: Window30Days, Label: "30 Days", Days: 30},
	{Window: Window3Months, Label: "3 Months", Days: 90},
	{Window: Window6Months, Label: "6 Months", Days: 180},
	{Window: Window1Year, Label: "1 Year", Days: 365},
	{Window: WindowAll, Label: "All Time", Days: 0},
}

func ParseTimeWindow(raw string) (TimeWindow, error) {
	for _, option := range timeWindowOptions {
		if string(option.Window) == raw {
			return option.Window, nil
		}
	}
	return "", ErrUnknownTimeWindow
}

func (window TimeWindow) Label() string {
	for _, option := range timeWindowOptions {
		if option.Window == window {
			return option.Label
		}
	}
	return string(window)
}

// FilterEntries restricts the entry log to the named window and returns the
// expected-day denominator for missed-day accounting.
//
// Bounded windows keep entries dated on or after today minus N days (the
// boundary day itself is included). The "all" window keeps everything; its
// expected day count is the span from the earliest entry to today, or zero
// when the log is empty.
func FilterEntries(entries map[string]models.DailyEntry, window TimeWindow, now time.Time, location *time.Location) (map[string]models.DailyEntry, int) {
	days := 0
	for _, option := range timeWindowOptions {
		if option.Window == window {
			days = option.Days
			break
		}
	}

	today := DateAtLocation(now, location)

	if days == 0 {
		if len(entries) == 0 {
			return entries, 0
		}
		earliestKey := ""
		for dateKey := range entries {
			if earliestKey == "" || dateKey < earliestKey {
				earliestKey = dateKey
			}
		}
		expected := 0
		if earliest, err := ParseDateKey(earliestKey, location); err == nil {
			expected = DaysBetween(earliest, today)
			if expected < 0 {
				expected = 0
			}
		}
		return entries, expected
	}

	cutoffKey := FormatDateKey(today.AddDate(0, 0, -days), location)
	filtered := make(map[string]models.DailyEntry)
	for dateKey, entry := range entries {
		// Lexicographic comparison of YYYY-MM-DD keys is chronological.
		if dateKey >= cutoffKey {
			filtered[dateKey] = entry
		}
	}
	return filtered, days
}
