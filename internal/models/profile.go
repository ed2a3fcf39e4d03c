package models

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

type Diagnosis struct {
	Condition string `json:"condition"`
	Date      string `json:"date"`
}

// ProfileData is the patient metadata shown in the report header plus the
// user-defined taxonomy additions merged into the built-in catalogs at read
// time.
type ProfileData struct {
	Name             string              `json:"name"`
	Age              string              `json:"age"`
	DiagnosisYear    string              `json:"diagnosisYear"`
	Stage            string              `json:"stage"`
	Surgeries        []string            `json:"surgeries"`
	SelectedVitamins []string            `json:"selectedVitamins"`
	CustomSymptoms   map[string][]string `json:"customSymptoms"`
	CustomActivities []string            `json:"customActivities"`
}

// NewProfileData returns an empty profile with all collections allocated.
func NewProfileData() ProfileData {
	return ProfileData{
		Surgeries:        []string{},
		SelectedVitamins: []string{},
		CustomSymptoms:   map[string][]string{},
		CustomActivities: []string{},
	}
}
