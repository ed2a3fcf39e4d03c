package services

import (
	"testing"
	"time"
)

func TestFormatDateKeyZeroPads(t *testing.T) {
	moment := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	if got := FormatDateKey(moment, time.UTC); got != "2024-03-05" {
		t.Fatalf("FormatDateKey() = %q, want 2024-03-05", got)
	}
}

func TestDateAtLocationUsesLocalCalendarDay(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 01:30 UTC on March 6 is still March 5 in New York.
	moment := time.Date(2024, time.March, 6, 1, 30, 0, 0, time.UTC)
	if got := FormatDateKey(moment, newYork); got != "2024-03-05" {
		t.Fatalf("FormatDateKey() = %q, want 2024-03-05", got)
	}
}

func TestParseDateKeyRoundTrips(t *testing.T) {
	parsed, err := ParseDateKey("2024-11-30", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateKey() unexpected error: %v", err)
	}
	if got := FormatDateKey(parsed, time.UTC); got != "2024-11-30" {
		t.Fatalf("round trip = %q, want 2024-11-30", got)
	}
}

func TestParseDateKeyRejectsMalformedKey(t *testing.T) {
	if _, err := ParseDateKey("30/11/2024", time.UTC); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestMonthStart(t *testing.T) {
	moment := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)

	start := MonthStart(moment, time.UTC)
	if start.Day() != 1 || start.Month() != time.February || start.Hour() != 0 {
		t.Fatalf("MonthStart() = %v, want 2024-02-01 midnight", start)
	}
	if got := MonthLabel(start); got != "February 2024" {
		t.Fatalf("MonthLabel() = %q, want February 2024", got)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2024-03-01", to: "2024-03-01", want: 0},
		{name: "one day", from: "2024-03-01", to: "2024-03-02", want: 1},
		{name: "across month", from: "2024-02-27", to: "2024-03-02", want: 4},
		{name: "reversed", from: "2024-03-02", to: "2024-03-01", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, err := ParseDateKey(tc.from, time.UTC)
			if err != nil {
				t.Fatalf("ParseDateKey(%q): %v", tc.from, err)
			}
			to, err := ParseDateKey(tc.to, time.UTC)
			if err != nil {
				t.Fatalf("ParseDateKey(%q): %v", tc.to, err)
			}
			if got := DaysBetween(from, to); got != tc.want {
				t.Fatalf("DaysBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}
