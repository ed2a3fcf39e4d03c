package services

import (
	"encoding/json"
	"log"
	"math"

	"github.com/RACSolutions/endocare/internal/models"
)

// The entries document is decoded leniently: one malformed category or
// severity is dropped on its own, and one malformed entry never discards the
// rest of the log. All severity validation happens here, at the read
// boundary, so aggregation can trust its input.

type rawDailyEntry struct {
	Date               string                     `json:"date"`
	Symptoms           map[string]json.RawMessage `json:"symptoms"`
	Activities         []string                   `json:"activities"`
	Notes              string                     `json:"notes"`
	CustomActivities   string                     `json:"customActivities"`
	NoSymptomsRecorded bool                       `json:"noSymptomsRecorded"`
}

// DecodeEntriesDocument converts the stored raw document into validated
// entries keyed by date. The date key always wins over whatever is stored
// inside the record.
func DecodeEntriesDocument(document map[string]json.RawMessage) map[string]models.DailyEntry {
	entries := make(map[string]models.DailyEntry, len(document))
	for dateKey, rawEntry := range document {
		entry, ok := decodeDailyEntry(dateKey, rawEntry)
		if !ok {
			log.Printf("skipping unreadable entry %s", dateKey)
			continue
		}
		entries[dateKey] = entry
	}
	return entries
}

func decodeDailyEntry(dateKey string, raw json.RawMessage) (models.DailyEntry, bool) {
	decoded := rawDailyEntry{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return models.DailyEntry{}, false
	}

	entry := models.NewDailyEntry(dateKey)
	entry.Notes = decoded.Notes
	entry.CustomActivities = decoded.CustomActivities
	entry.NoSymptomsRecorded = decoded.NoSymptomsRecorded
	if decoded.Activities != nil {
		entry.Activities = decoded.Activities
	}
	entry.Symptoms = sanitizeSymptoms(dateKey, decoded.Symptoms)

	// An explicitly confirmed symptom-free day never carries symptom data.
	if entry.NoSymptomsRecorded {
		entry.Symptoms = map[string]map[string]models.Severity{}
	}

	return entry, true
}

func sanitizeSymptoms(dateKey string, rawCategories map[string]json.RawMessage) map[string]map[string]models.Severity {
	symptoms := make(map[string]map[string]models.Severity, len(rawCategories))
	for categoryID, rawCategory := range rawCategories {
		severities := map[string]float64{}
		if err := json.Unmarshal(rawCategory, &severities); err != nil {
			log.Printf("skipping unreadable symptom category %s on %s", categoryID, dateKey)
			continue
		}

		categorySymptoms := make(map[string]models.Severity, len(severities))
		for name, value := range severities {
			severity, ok := severityFromNumber(value)
			if !ok {
				log.Printf("skipping invalid severity %v for %q on %s", value, name, dateKey)
				continue
			}
			categorySymptoms[name] = severity
		}
		if len(categorySymptoms) == 0 {
			continue
		}
		symptoms[categoryID] = categorySymptoms
	}
	return symptoms
}

func severityFromNumber(value float64) (models.Severity, bool) {
	if math.IsNaN(value) || value != math.Trunc(value) {
		return 0, false
	}
	severity := models.Severity(int(value))
	if !severity.Valid() {
		return 0, false
	}
	return severity, true
}
