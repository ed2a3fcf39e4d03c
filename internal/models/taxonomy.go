package models

type SymptomCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Symptoms []string `json:"symptoms"`
}

type ActivityCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// BuiltinSymptomCategories returns the static symptom catalog in display
// order. Callers receive a fresh copy and may append to it freely.
func BuiltinSymptomCategories() []SymptomCategory {
	return []SymptomCategory{
		{
			ID:   "pain",
			Name: "Pain",
			Icon: "🔥",
			Symptoms: []string{
				"Pelvic pain",
				"Back pain",
				"Leg pain",
				"Headache",
				"Muscle aches",
				"Joint pain",
				"Abdominal pain",
				"Chest pain",
				"Painful intercourse",
				"Ovulation pain",
				"Tailbone pain",
				"Shoulder pain",
			},
		},
		{
			ID:   "menstrual",
			Name: "Menstrual",
			Icon: "🩸",
			Symptoms: []string{
				"Heavy bleeding",
				"Light bleeding",
				"Spotting",
				"Clots",
				"Irregular cycle",
				"Missed period",
				"Cramps",
				"PMS symptoms",
			},
		},
		{
			ID:   "digestive",
			Name: "Digestive",
			Icon: "🤢",
			Symptoms: []string{
				"Nausea",
				"Vomiting",
				"Bloating",
				"Constipation",
				"Diarrhea",
				"Gas",
				"Food sensitivity",
				"Loss of appetite",
				"Stomach pain",
				"Acid reflux",
			},
		},
		{
			ID:   "emotional",
			Name: "Emotional",
			Icon: "😔",
			Symptoms: []string{
				"Anxiety",
				"Depression",
				"Mood swings",
				"Irritability",
				"Brain fog",
				"Stress",
				"Vivid dreams",
				"Difficulty concentrating",
				"Memory issues",
				"Emotional numbness",
			},
		},
		{
			ID:   "physical",
			Name: "Physical",
			Icon: "💪",
			Symptoms: []string{
				"Weakness",
				"Dizziness",
				"Hot flashes",
				"Cold chills",
				"Night sweats",
				"Muscle tension",
				"Restlessness",
				"Tender breasts",
				"Frequent urination",
				"Painful urination",
				"Hair changes",
				"Skin changes",
			},
		},
		{
			ID:   "sleepEnergy",
			Name: "Sleep & Energy",
			Icon: "😴",
			Symptoms: []string{
				"Fatigue",
				"Exhaustion",
				"Sleep disturbances",
				"Insomnia",
				"Excessive sleepiness",
				"Energy crashes",
				"Restless sleep",
				"Difficulty falling asleep",
				"Waking up tired",
				"Needing frequent naps",
			},
		},
	}
}

// BuiltinActivityCategories returns the static activity/trigger catalog in
// display order.
func BuiltinActivityCategories() []ActivityCategory {
	return []ActivityCategory{
		{ID: "work", Name: "Work", Icon: "💼"},
		{ID: "exercise", Name: "Exercise", Icon: "🏃"},
		{ID: "travel", Name: "Travel", Icon: "✈️"},
		{ID: "stress", Name: "Stress", Icon: "😰"},
		{ID: "weather", Name: "Weather change", Icon: "🌦️"},
		{ID: "social", Name: "Social events", Icon: "👥"},
		{ID: "medication", Name: "Medication", Icon: "💊"},
		{ID: "sleep", Name: "Poor sleep", Icon: "😴"},
	}
}
