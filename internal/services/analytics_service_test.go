package services

import (
	"errors"
	"testing"
	"time"

	"github.com/RACSolutions/endocare/internal/models"
)

type stubAnalyticsEntries struct {
	entries map[string]models.DailyEntry
	err     error
}

func (stub *stubAnalyticsEntries) Entries(uint) (map[string]models.DailyEntry, error) {
	return stub.entries, stub.err
}

type stubAnalyticsProfiles struct{}

func (stub *stubAnalyticsProfiles) Profile(uint) (models.ProfileData, error) {
	return models.NewProfileData(), nil
}

func (stub *stubAnalyticsProfiles) Medications(uint) ([]models.Medication, error) {
	return []models.Medication{}, nil
}

func (stub *stubAnalyticsProfiles) Diagnoses(uint) ([]models.Diagnosis, error) {
	return []models.Diagnosis{}, nil
}

func TestBuildAnalyticsAppliesWindow(t *testing.T) {
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

	inWindow := models.NewDailyEntry("2024-03-20")
	inWindow.Symptoms = map[string]map[string]models.Severity{
		"pain": {"Headache": models.SeverityMild},
	}
	outOfWindow := models.NewDailyEntry("2023-01-01")
	outOfWindow.Symptoms = map[string]map[string]models.Severity{
		"pain": {"Back pain": models.SeveritySevere},
	}

	service := NewAnalyticsService(
		&stubAnalyticsEntries{entries: map[string]models.DailyEntry{
			inWindow.Date:    inWindow,
			outOfWindow.Date: outOfWindow,
		}},
		&stubAnalyticsProfiles{},
		time.UTC,
	)

	analytics, err := service.BuildAnalytics(1, Window30Days, now)
	if err != nil {
		t.Fatalf("BuildAnalytics() unexpected error: %v", err)
	}
	if analytics.TotalEntries != 1 {
		t.Fatalf("TotalEntries = %d, want 1 after filtering", analytics.TotalEntries)
	}
	if analytics.ExpectedDays != 30 {
		t.Fatalf("ExpectedDays = %d, want 30", analytics.ExpectedDays)
	}
	if _, exists := analytics.SymptomFrequency["Back pain"]; exists {
		t.Fatal("out-of-window symptom leaked into the aggregation")
	}
}

func TestBuildAnalyticsPropagatesLoadFailure(t *testing.T) {
	service := NewAnalyticsService(
		&stubAnalyticsEntries{err: errors.New("db locked")},
		&stubAnalyticsProfiles{},
		time.UTC,
	)

	if _, err := service.BuildAnalytics(1, Window30Days, time.Now()); err == nil {
		t.Fatal("expected entry load failure to propagate")
	}
}

func TestBuildReportCalendarIgnoresWindow(t *testing.T) {
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

	// Outside the 30-day window, inside the trailing 3-month calendar.
	january := models.NewDailyEntry("2024-01-15")
	january.NoSymptomsRecorded = true

	service := NewAnalyticsService(
		&stubAnalyticsEntries{entries: map[string]models.DailyEntry{january.Date: january}},
		&stubAnalyticsProfiles{},
		time.UTC,
	)

	report, err := service.BuildReport(1, Window30Days, now)
	if err != nil {
		t.Fatalf("BuildReport() unexpected error: %v", err)
	}
	if report.Analytics.TotalEntries != 0 {
		t.Fatalf("window analytics counted %d entries, want 0", report.Analytics.TotalEntries)
	}

	found := false
	for _, day := range report.CalendarMonths[0].Days {
		if day.DateKey == "2024-01-15" && day.NoSymptoms {
			found = true
		}
	}
	if !found {
		t.Fatal("calendar must annotate entries outside the analysis window")
	}
}
