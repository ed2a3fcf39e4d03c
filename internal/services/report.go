package services

import (
	"sort"
	"time"

	"github.com/RACSolutions/endocare/internal/models"
)

const reportRankingLimit = 10

type ReportPatient struct {
	Name          string `json:"name"`
	Age           string `json:"age"`
	DiagnosisYear string `json:"diagnosisYear"`
	Stage         string `json:"stage"`
}

type ReportSymptomMark struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Severity models.Severity `json:"severity"`
}

type ReportCalendarDay struct {
	DateKey    string              `json:"date"`
	Day        int                 `json:"day"`
	InMonth    bool                `json:"inMonth"`
	NoSymptoms bool                `json:"noSymptoms"`
	Symptoms   []ReportSymptomMark `json:"symptoms"`
	Activities []string            `json:"activities"`
}

type ReportMonth struct {
	Month string              `json:"month"`
	Label string              `json:"label"`
	Days  []ReportCalendarDay `json:"days"`
}

// ReportData is everything the document renderer needs, with no markup
// assumptions: window analytics, per-month rollups, the trailing 3-month
// visual calendar, and the profile header fields.
type ReportData struct {
	GeneratedAt string `json:"generatedAt"`
	WindowLabel string `json:"windowLabel"`

	Patient          ReportPatient       `json:"patient"`
	Medications      []models.Medication `json:"medications"`
	Diagnoses        []models.Diagnosis  `json:"diagnoses"`
	Surgeries        []string            `json:"surgeries"`
	Vitamins         []string            `json:"vitamins"`
	CustomSymptoms   map[string][]string `json:"customSymptoms"`
	CustomActivities []string            `json:"customActivities"`

	Analytics          Analytics        `json:"analytics"`
	TopSymptoms        []RankedCount    `json:"topSymptoms"`
	MostSevereSymptoms []RankedSeverity `json:"mostSevereSymptoms"`
	TopActivities      []RankedCount    `json:"topActivities"`
	Monthly            []MonthlyStats   `json:"monthly"`

	// Always the current month plus the two before it, built from the full
	// entry log regardless of the selected analysis window.
	CalendarMonths []ReportMonth `json:"calendarMonths"`
}

// AssembleReport combines the aggregation output, the monthly rollups, the
// fixed trailing 3-month calendar, and the profile header into one report
// payload. Pure function of its inputs; zero entries yield an
// empty-but-valid result.
func AssembleReport(
	filteredEntries map[string]models.DailyEntry,
	allEntries map[string]models.DailyEntry,
	expectedDays int,
	profile models.ProfileData,
	medications []models.Medication,
	diagnoses []models.Diagnosis,
	windowLabel string,
	now time.Time,
	location *time.Location,
) ReportData {
	analytics := Aggregate(filteredEntries, expectedDays)

	return ReportData{
		GeneratedAt: FormatDateKey(now, location),
		WindowLabel: windowLabel,

		Patient: ReportPatient{
			Name:          profile.Name,
			Age:           profile.Age,
			DiagnosisYear: profile.DiagnosisYear,
			Stage:         profile.Stage,
		},
		Medications:      emptyIfNilMedications(medications),
		Diagnoses:        emptyIfNilDiagnoses(diagnoses),
		Surgeries:        emptyIfNilStrings(profile.Surgeries),
		Vitamins:         emptyIfNilStrings(profile.SelectedVitamins),
		CustomSymptoms:   profile.CustomSymptoms,
		CustomActivities: emptyIfNilStrings(profile.CustomActivities),

		Analytics:          analytics,
		TopSymptoms:        TopCounts(analytics.TopSymptoms, reportRankingLimit),
		MostSevereSymptoms: TopSeverities(analytics.MostSevereSymptoms, reportRankingLimit),
		TopActivities:      TopCounts(analytics.TopActivities, reportRankingLimit),
		Monthly:            MonthlyBreakdown(filteredEntries, location),

		CalendarMonths: buildTrailingCalendar(allEntries, now, location),
	}
}

// buildTrailingCalendar renders the last three calendar months (current plus
// two previous) with each in-month cell annotated from the full entry log.
func buildTrailingCalendar(allEntries map[string]models.DailyEntry, now time.Time, location *time.Location) []ReportMonth {
	months := make([]ReportMonth, 0, 3)
	for offset := 2; offset >= 0; offset-- {
		monthStart := MonthStart(now, location).AddDate(0, -offset, 0)
		grid := BuildMonthGrid(monthStart, location)

		days := make([]ReportCalendarDay, 0, len(grid.Cells))
		for _, cell := range grid.Cells {
			day := ReportCalendarDay{
				DateKey:    cell.DateKey,
				Day:        cell.Day,
				InMonth:    cell.InMonth,
				Symptoms:   []ReportSymptomMark{},
				Activities: []string{},
			}
			if entry, exists := allEntries[cell.DateKey]; exists && cell.InMonth {
				day.NoSymptoms = entry.NoSymptomsRecorded
				day.Symptoms = collectSymptomMarks(entry)
				day.Activities = append(day.Activities, entry.Activities...)
			}
			days = append(days, day)
		}

		months = append(months, ReportMonth{
			Month: grid.Month,
			Label: grid.Label,
			Days:  days,
		})
	}
	return months
}

func collectSymptomMarks(entry models.DailyEntry) []ReportSymptomMark {
	marks := make([]ReportSymptomMark, 0, entry.SymptomInstanceCount())
	for categoryID, categorySymptoms := range entry.Symptoms {
		for name, severity := range categorySymptoms {
			marks = append(marks, ReportSymptomMark{
				Category: categoryID,
				Name:     name,
				Severity: severity,
			})
		}
	}
	sort.Slice(marks, func(i, j int) bool {
		if marks[i].Category == marks[j].Category {
			return marks[i].Name < marks[j].Name
		}
		return marks[i].Category < marks[j].Category
	})
	return marks
}

func emptyIfNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func emptyIfNilMedications(values []models.Medication) []models.Medication {
	if values == nil {
		return []models.Medication{}
	}
	return values
}

func emptyIfNilDiagnoses(values []models.Diagnosis) []models.Diagnosis {
	if values == nil {
		return []models.Diagnosis{}
	}
	return values
}
