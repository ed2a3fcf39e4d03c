package models

import "testing"

func TestBuiltinSymptomCategoriesAreWellFormed(t *testing.T) {
	categories := BuiltinSymptomCategories()

	if len(categories) != 6 {
		t.Fatalf("got %d categories, want 6", len(categories))
	}

	seenIDs := map[string]bool{}
	for _, category := range categories {
		if category.ID == "" || category.Name == "" || len(category.Symptoms) == 0 {
			t.Fatalf("category %+v is incomplete", category)
		}
		if seenIDs[category.ID] {
			t.Fatalf("duplicate category id %q", category.ID)
		}
		seenIDs[category.ID] = true

		seenNames := map[string]bool{}
		for _, name := range category.Symptoms {
			if seenNames[name] {
				t.Fatalf("duplicate symptom %q in category %q", name, category.ID)
			}
			seenNames[name] = true
		}
	}
}

func TestBuiltinSymptomCategoriesReturnFreshCopies(t *testing.T) {
	first := BuiltinSymptomCategories()
	first[0].Symptoms = append(first[0].Symptoms, "mutated")

	second := BuiltinSymptomCategories()
	for _, name := range second[0].Symptoms {
		if name == "mutated" {
			t.Fatal("catalog mutation leaked across calls")
		}
	}
}

func TestBuiltinActivityCategories(t *testing.T) {
	categories := BuiltinActivityCategories()

	if len(categories) != 8 {
		t.Fatalf("got %d activity categories, want 8", len(categories))
	}
	seen := map[string]bool{}
	for _, category := range categories {
		if category.ID == "" || category.Name == "" {
			t.Fatalf("activity category %+v is incomplete", category)
		}
		if seen[category.ID] {
			t.Fatalf("duplicate activity id %q", category.ID)
		}
		seen[category.ID] = true
	}
}
