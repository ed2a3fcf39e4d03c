package services

import (
	"time"

	"github.com/RACSolutions/endocare/internal/models"
)

type AnalyticsEntryReader interface {
	Entries(userID uint) (map[string]models.DailyEntry, error)
}

type AnalyticsProfileReader interface {
	Profile(userID uint) (models.ProfileData, error)
	Medications(userID uint) ([]models.Medication, error)
	Diagnoses(userID uint) ([]models.Diagnosis, error)
}

// AnalyticsService wires the entry log, time-window filter, aggregation
// engine, and report assembler together for the API layer.
type AnalyticsService struct {
	entries  AnalyticsEntryReader
	profiles AnalyticsProfileReader
	location *time.Location
}

func NewAnalyticsService(entries AnalyticsEntryReader, profiles AnalyticsProfileReader, location *time.Location) *AnalyticsService {
	return &AnalyticsService{
		entries:  entries,
		profiles: profiles,
		location: location,
	}
}

// BuildAnalytics aggregates the user's log over the named window.
func (service *AnalyticsService) BuildAnalytics(userID uint, window TimeWindow, now time.Time) (Analytics, error) {
	allEntries, err := service.entries.Entries(userID)
	if err != nil {
		return Analytics{}, err
	}
	filtered, expectedDays := FilterEntries(allEntries, window, now, service.location)
	return Aggregate(filtered, expectedDays), nil
}

// BuildMonthly computes the calendar-month rollups for the named window.
func (service *AnalyticsService) BuildMonthly(userID uint, window TimeWindow, now time.Time) ([]MonthlyStats, error) {
	allEntries, err := service.entries.Entries(userID)
	if err != nil {
		return nil, err
	}
	filtered, _ := FilterEntries(allEntries, window, now, service.location)
	return MonthlyBreakdown(filtered, service.location), nil
}

// BuildReport assembles the full medical-report payload for the named
// window. The visual calendar inside it always covers the trailing three
// calendar months of the complete log.
func (service *AnalyticsService) BuildReport(userID uint, window TimeWindow, now time.Time) (ReportData, error) {
	allEntries, err := service.entries.Entries(userID)
	if err != nil {
		return ReportData{}, err
	}
	filtered, expectedDays := FilterEntries(allEntries, window, now, service.location)

	profile, err := service.profiles.Profile(userID)
	if err != nil {
		return ReportData{}, err
	}
	medications, err := service.profiles.Medications(userID)
	if err != nil {
		return ReportData{}, err
	}
	diagnoses, err := service.profiles.Diagnoses(userID)
	if err != nil {
		return ReportData{}, err
	}

	return AssembleReport(
		filtered,
		allEntries,
		expectedDays,
		profile,
		medications,
		diagnoses,
		window.Label(),
		now,
		service.location,
	), nil
}
