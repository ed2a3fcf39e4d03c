package models

type Severity int

const (
	SeverityMild     Severity = 1
	SeverityModerate Severity = 2
	SeveritySevere   Severity = 3
)

func (severity Severity) Valid() bool {
	return severity >= SeverityMild && severity <= SeveritySevere
}

// DailyEntry holds everything recorded for one local calendar day. Symptoms
// are keyed category-id -> symptom-name -> severity; an absent key means "not
// recorded", never "severity zero".
type DailyEntry struct {
	Date               string                          `json:"date"`
	Symptoms           map[string]map[string]Severity  `json:"symptoms"`
	Activities         []string                        `json:"activities"`
	Notes              string                          `json:"notes"`
	CustomActivities   string                          `json:"customActivities"`
	NoSymptomsRecorded bool                            `json:"noSymptomsRecorded,omitempty"`
}

// NewDailyEntry returns the canonical zero-value entry for a date key, so
// callers never branch on existence.
func NewDailyEntry(dateKey string) DailyEntry {
	return DailyEntry{
		Date:       dateKey,
		Symptoms:   map[string]map[string]Severity{},
		Activities: []string{},
	}
}

// SymptomInstanceCount counts the individual (category, symptom) pairs
// recorded on this day.
func (entry DailyEntry) SymptomInstanceCount() int {
	count := 0
	for _, categorySymptoms := range entry.Symptoms {
		count += len(categorySymptoms)
	}
	return count
}

func (entry DailyEntry) HasSymptoms() bool {
	return entry.SymptomInstanceCount() > 0
}
