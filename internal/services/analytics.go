package services

import (
	"sort"
	"time"

	"github.com/RACSolutions/endocare/internal/models"
)

// A day counts as "bad" when at least this many individual symptom instances
// were recorded, independent of severity.
const badDayThreshold = 3

type RankedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RankedSeverity struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// Analytics is the derived view over one filtered entry set. It is computed,
// never persisted, and recomputed whenever the window or the log changes.
//
// DaysWithSymptoms (entries with at least one symptom) and BadDays (entries
// with badDayThreshold or more symptom instances) are two independent queries
// over the same days, not a partition.
type Analytics struct {
	TotalEntries      int     `json:"totalEntries"`
	DaysWithSymptoms  int     `json:"daysWithSymptoms"`
	UniqueSymptoms    int     `json:"uniqueSymptoms"`
	GoodDays          int     `json:"goodDays"`
	BadDays           int     `json:"badDays"`
	MissedDays        int     `json:"missedDays"`
	ExpectedDays      int     `json:"expectedDays"`
	AvgSymptomsPerDay float64 `json:"avgSymptomsPerDay"`

	SymptomFrequency       map[string]int     `json:"symptomFrequency"`
	SymptomAverageSeverity map[string]float64 `json:"symptomAverageSeverity"`
	CategoryFrequency      map[string]int     `json:"categoryFrequency"`
	ActivityFrequency      map[string]int     `json:"activityFrequency"`
	DailySymptomCounts     map[string]int     `json:"dailySymptomCounts"`

	// Full descending rankings; consumers slice to taste (top 5 in-app,
	// top 10 in the report). Ties keep first-encountered order.
	TopSymptoms        []RankedCount    `json:"topSymptoms"`
	MostSevereSymptoms []RankedSeverity `json:"mostSevereSymptoms"`
	TopActivities      []RankedCount    `json:"topActivities"`
}

// MonthlyStats is one calendar month's slice of the same frequency and
// severity aggregation, used by the exported report.
type MonthlyStats struct {
	Month                  string             `json:"month"`
	Label                  string             `json:"label"`
	TotalEntries           int                `json:"totalEntries"`
	NoSymptomDays          int                `json:"noSymptomDays"`
	DaysWithSymptoms       int                `json:"daysWithSymptoms"`
	Symptoms               []RankedCount      `json:"symptoms"`
	Activities             []RankedCount      `json:"activities"`
	SymptomAverageSeverity map[string]float64 `json:"symptomAverageSeverity"`
}

// Aggregate runs the single-pass scan over a filtered entry set. Entries are
// visited in ascending date order so ranking tie-breaks are deterministic.
func Aggregate(entries map[string]models.DailyEntry, expectedDays int) Analytics {
	tally := tallyEntries(entries)

	totalEntries := len(entries)
	badDays := 0
	symptomInstances := 0
	for _, count := range tally.dailyCounts {
		symptomInstances += count
		if count >= badDayThreshold {
			badDays++
		}
	}

	avgSymptomsPerDay := 0.0
	if totalEntries > 0 {
		avgSymptomsPerDay = float64(symptomInstances) / float64(totalEntries)
	}

	missedDays := expectedDays - totalEntries
	if missedDays < 0 {
		missedDays = 0
	}

	return Analytics{
		TotalEntries:      totalEntries,
		DaysWithSymptoms:  tally.daysWithSymptoms,
		UniqueSymptoms:    len(tally.symptomFrequency),
		GoodDays:          tally.noSymptomDays,
		BadDays:           badDays,
		MissedDays:        missedDays,
		ExpectedDays:      expectedDays,
		AvgSymptomsPerDay: avgSymptomsPerDay,

		SymptomFrequency:       tally.symptomFrequency,
		SymptomAverageSeverity: tally.severityAverages(),
		CategoryFrequency:      tally.categoryFrequency,
		ActivityFrequency:      tally.activityFrequency,
		DailySymptomCounts:     tally.dailyCounts,

		TopSymptoms:        rankCounts(tally.symptomOrder, tally.symptomFrequency),
		MostSevereSymptoms: rankSeverities(tally.symptomOrder, tally.severityAverages()),
		TopActivities:      rankCounts(tally.activityOrder, tally.activityFrequency),
	}
}

// MonthlyBreakdown partitions the filtered set into calendar months and
// re-runs the frequency/severity/activity aggregation per month. Months with
// no entries are skipped; results are ordered chronologically.
func MonthlyBreakdown(entries map[string]models.DailyEntry, location *time.Location) []MonthlyStats {
	if len(entries) == 0 {
		return []MonthlyStats{}
	}

	byMonth := make(map[string]map[string]models.DailyEntry)
	monthKeys := make([]string, 0)
	for dateKey, entry := range entries {
		if len(dateKey) < len(MonthKeyLayout) {
			continue
		}
		monthKey := dateKey[:len(MonthKeyLayout)]
		if byMonth[monthKey] == nil {
			byMonth[monthKey] = make(map[string]models.DailyEntry)
			monthKeys = append(monthKeys, monthKey)
		}
		byMonth[monthKey][dateKey] = entry
	}
	sort.Strings(monthKeys)

	breakdown := make([]MonthlyStats, 0, len(monthKeys))
	for _, monthKey := range monthKeys {
		monthEntries := byMonth[monthKey]
		tally := tallyEntries(monthEntries)

		label := monthKey
		if monthStart, err := time.ParseInLocation(MonthKeyLayout, monthKey, location); err == nil {
			label = MonthLabel(monthStart)
		}

		breakdown = append(breakdown, MonthlyStats{
			Month:                  monthKey,
			Label:                  label,
			TotalEntries:           len(monthEntries),
			NoSymptomDays:          tally.noSymptomDays,
			DaysWithSymptoms:       tally.daysWithSymptoms,
			Symptoms:               rankCounts(tally.symptomOrder, tally.symptomFrequency),
			Activities:             rankCounts(tally.activityOrder, tally.activityFrequency),
			SymptomAverageSeverity: tally.severityAverages(),
		})
	}
	return breakdown
}

// entryTally accumulates the per-scan counters. Order slices remember the
// first time each name was encountered, which is the ranking tie-break.
type entryTally struct {
	symptomOrder     []string
	symptomFrequency map[string]int
	severitySums     map[string]int
	severityCounts   map[string]int

	categoryFrequency map[string]int
	activityOrder     []string
	activityFrequency map[string]int

	dailyCounts      map[string]int
	noSymptomDays    int
	daysWithSymptoms int
}

func tallyEntries(entries map[string]models.DailyEntry) entryTally {
	tally := entryTally{
		symptomOrder:      []string{},
		symptomFrequency:  map[string]int{},
		severitySums:      map[string]int{},
		severityCounts:    map[string]int{},
		categoryFrequency: map[string]int{},
		activityOrder:     []string{},
		activityFrequency: map[string]int{},
		dailyCounts:       map[string]int{},
	}

	dateKeys := make([]string, 0, len(entries))
	for dateKey := range entries {
		dateKeys = append(dateKeys, dateKey)
	}
	sort.Strings(dateKeys)

	for _, dateKey := range dateKeys {
		entry := entries[dateKey]

		// Explicitly confirmed symptom-free days stay out of the symptom
		// and activity tallies entirely.
		if entry.NoSymptomsRecorded {
			tally.noSymptomDays++
			tally.dailyCounts[dateKey] = 0
			continue
		}

		dailyCount := 0
		if len(entry.Symptoms) > 0 {
			hadSymptom := false
			categoryIDs := make([]string, 0, len(entry.Symptoms))
			for categoryID := range entry.Symptoms {
				categoryIDs = append(categoryIDs, categoryID)
			}
			sort.Strings(categoryIDs)

			for _, categoryID := range categoryIDs {
				categorySymptoms := entry.Symptoms[categoryID]
				if len(categorySymptoms) == 0 {
					continue
				}
				hadSymptom = true
				tally.categoryFrequency[categoryID]++

				names := make([]string, 0, len(categorySymptoms))
				for name := range categorySymptoms {
					names = append(names, name)
				}
				sort.Strings(names)

				for _, name := range names {
					severity := categorySymptoms[name]
					if _, seen := tally.symptomFrequency[name]; !seen {
						tally.symptomOrder = append(tally.symptomOrder, name)
					}
					tally.symptomFrequency[name]++
					tally.severitySums[name] += int(severity)
					tally.severityCounts[name]++
					dailyCount++
				}
			}
			if hadSymptom {
				tally.daysWithSymptoms++
			}
		}

		for _, activity := range entry.Activities {
			if _, seen := tally.activityFrequency[activity]; !seen {
				tally.activityOrder = append(tally.activityOrder, activity)
			}
			tally.activityFrequency[activity]++
		}

		tally.dailyCounts[dateKey] = dailyCount
	}

	return tally
}

func (tally entryTally) severityAverages() map[string]float64 {
	averages := make(map[string]float64, len(tally.severitySums))
	for name, sum := range tally.severitySums {
		count := tally.severityCounts[name]
		if count == 0 {
			continue
		}
		averages[name] = float64(sum) / float64(count)
	}
	return averages
}

func rankCounts(order []string, counts map[string]int) []RankedCount {
	ranked := make([]RankedCount, 0, len(order))
	for _, name := range order {
		if count, exists := counts[name]; exists {
			ranked = append(ranked, RankedCount{Name: name, Count: count})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func rankSeverities(order []string, averages map[string]float64) []RankedSeverity {
	ranked := make([]RankedSeverity, 0, len(order))
	for _, name := range order {
		if average, exists := averages[name]; exists {
			ranked = append(ranked, RankedSeverity{Name: name, Average: average})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Average > ranked[j].Average
	})
	return ranked
}

// TopCounts slices a count ranking without reslicing past its end.
func TopCounts(ranked []RankedCount, limit int) []RankedCount {
	if limit <= 0 || len(ranked) <= limit {
		return ranked
	}
	return ranked[:limit]
}

// TopSeverities slices a severity ranking without reslicing past its end.
func TopSeverities(ranked []RankedSeverity, limit int) []RankedSeverity {
	if limit <= 0 || len(ranked) <= limit {
		return ranked
	}
	return ranked[:limit]
}
