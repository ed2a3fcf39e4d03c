package services

import (
	"github.com/RACSolutions/endocare/internal/models"
)

// MergedSymptomCategories returns the built-in symptom catalog with each
// user-defined symptom name appended to its category. Custom names that
// duplicate a built-in are dropped. Unknown custom category ids are ignored.
func MergedSymptomCategories(customSymptoms map[string][]string) map[string]models.SymptomCategory {
	merged := make(map[string]models.SymptomCategory)
	for _, category := range models.BuiltinSymptomCategories() {
		merged[category.ID] = category
	}

	for categoryID, names := range customSymptoms {
		category, known := merged[categoryID]
		if !known {
			continue
		}
		category.Symptoms = appendMissingNames(category.Symptoms, names)
		merged[categoryID] = category
	}

	return merged
}

// SymptomsForCategory returns the ordered symptom list for one category,
// built-ins first, then the category's custom additions. Unknown category ids
// yield an empty list.
func SymptomsForCategory(categoryID string, customSymptoms map[string][]string) []string {
	for _, category := range models.BuiltinSymptomCategories() {
		if category.ID != categoryID {
			continue
		}
		return appendMissingNames(category.Symptoms, customSymptoms[categoryID])
	}

	if names, exists := customSymptoms[categoryID]; exists {
		return appendMissingNames([]string{}, names)
	}
	return []string{}
}

// IsCustomSymptom reports whether a symptom name was user-added to the given
// category, by membership test against the custom list.
func IsCustomSymptom(categoryID string, name string, customSymptoms map[string][]string) bool {
	for _, custom := range customSymptoms[categoryID] {
		if custom == name {
			return true
		}
	}
	return false
}

// SymptomCategoryByID resolves a category for icon/name lookups. The second
// result is false for unknown ids.
func SymptomCategoryByID(categoryID string) (models.SymptomCategory, bool) {
	for _, category := range models.BuiltinSymptomCategories() {
		if category.ID == categoryID {
			return category, true
		}
	}
	return models.SymptomCategory{}, false
}

// MergedActivityNames returns the built-in activity catalog names followed by
// the user's custom activities, deduplicated, in catalog order.
func MergedActivityNames(customActivities []string) []string {
	names := make([]string, 0, len(customActivities)+8)
	for _, category := range models.BuiltinActivityCategories() {
		names = append(names, category.Name)
	}
	return appendMissingNames(names, customActivities)
}

func appendMissingNames(existing []string, candidates []string) []string {
	merged := make([]string, 0, len(existing)+len(candidates))
	seen := make(map[string]struct{}, len(existing)+len(candidates))
	for _, name := range existing {
		merged = append(merged, name)
		seen[name] = struct{}{}
	}
	for _, name := range candidates {
		if _, exists := seen[name]; exists {
			continue
		}
		merged = append(merged, name)
		seen[name] = struct{}{}
	}
	return merged
}
