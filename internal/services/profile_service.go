package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RACSolutions/endocare/internal/models"
)

var (
	ErrProfileLoadFailed  = errors.New("load profile failed")
	ErrProfileSaveFailed  = errors.New("save profile failed")
	ErrInvalidSymptomName = errors.New("invalid symptom name")
	ErrInvalidActivity    = errors.New("invalid activity name")
	ErrUnknownCategory    = errors.New("unknown symptom category")
)

const maxCustomNameLength = 80

type ProfileDocumentStore interface {
	Save(userID uint, name string, value any) error
	Load(userID uint, name string, target any) (bool, error)
}

// ProfileService owns the patient profile, medication and diagnosis lists,
// and the user-defined taxonomy additions. Each collection lives in its own
// per-user document and is persisted on every change.
type ProfileService struct {
	documents ProfileDocumentStore
}

func NewProfileService(documents ProfileDocumentStore) *ProfileService {
	return &ProfileService{documents: documents}
}

// ProfilePatch carries a partial profile update; nil fields stay untouched.
type ProfilePatch struct {
	Name             *string   `json:"name"`
	Age              *string   `json:"age"`
	DiagnosisYear    *string   `json:"diagnosisYear"`
	Stage            *string   `json:"stage"`
	Surgeries        *[]string `json:"surgeries"`
	SelectedVitamins *[]string `json:"selectedVitamins"`
}

func (service *ProfileService) Profile(userID uint) (models.ProfileData, error) {
	profile := models.NewProfileData()
	if _, err := service.documents.Load(userID, models.DocumentProfile, &profile); err != nil {
		return models.ProfileData{}, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	normalizeProfile(&profile)
	return profile, nil
}

func (service *ProfileService) UpdateProfile(userID uint, patch ProfilePatch) (models.ProfileData, error) {
	profile, err := service.Profile(userID)
	if err != nil {
		return models.ProfileData{}, err
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Age != nil {
		profile.Age = *patch.Age
	}
	if patch.DiagnosisYear != nil {
		profile.DiagnosisYear = *patch.DiagnosisYear
	}
	if patch.Stage != nil {
		profile.Stage = *patch.Stage
	}
	if patch.Surgeries != nil {
		profile.Surgeries = append([]string{}, (*patch.Surgeries)...)
	}
	if patch.SelectedVitamins != nil {
		profile.SelectedVitamins = append([]string{}, (*patch.SelectedVitamins)...)
	}

	return profile, service.saveProfile(userID, profile)
}

func (service *ProfileService) Medications(userID uint) ([]models.Medication, error) {
	medications := []models.Medication{}
	if _, err := service.documents.Load(userID, models.DocumentMedications, &medications); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	return medications, nil
}

func (service *ProfileService) SetMedications(userID uint, medications []models.Medication) error {
	if medications == nil {
		medications = []models.Medication{}
	}
	if err := service.documents.Save(userID, models.DocumentMedications, medications); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}
	return nil
}

func (service *ProfileService) Diagnoses(userID uint) ([]models.Diagnosis, error) {
	diagnoses := []models.Diagnosis{}
	if _, err := service.documents.Load(userID, models.DocumentDiagnoses, &diagnoses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	return diagnoses, nil
}

func (service *ProfileService) SetDiagnoses(userID uint, diagnoses []models.Diagnosis) error {
	if diagnoses == nil {
		diagnoses = []models.Diagnosis{}
	}
	if err := service.documents.Save(userID, models.DocumentDiagnoses, diagnoses); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}
	return nil
}

// AddCustomSymptom appends a user-defined symptom name to a built-in
// category. Duplicates are silently ignored.
func (service *ProfileService) AddCustomSymptom(userID uint, categoryID string, name string) (models.ProfileData, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxCustomNameLength {
		return models.ProfileData{}, ErrInvalidSymptomName
	}
	if _, known := SymptomCategoryByID(categoryID); !known {
		return models.ProfileData{}, ErrUnknownCategory
	}

	profile, err := service.Profile(userID)
	if err != nil {
		return models.ProfileData{}, err
	}

	for _, existing := range profile.CustomSymptoms[categoryID] {
		if existing == name {
			return profile, nil
		}
	}
	profile.CustomSymptoms[categoryID] = append(profile.CustomSymptoms[categoryID], name)

	return profile, service.saveProfile(userID, profile)
}

// RemoveCustomSymptom drops a user-defined symptom; a category left empty is
// removed from the custom map entirely.
func (service *ProfileService) RemoveCustomSymptom(userID uint, categoryID string, name string) (models.ProfileData, error) {
	profile, err := service.Profile(userID)
	if err != nil {
		return models.ProfileData{}, err
	}

	existing, found := profile.CustomSymptoms[categoryID]
	if !found {
		return profile, nil
	}

	remaining := make([]string, 0, len(existing))
	for _, candidate := range existing {
		if candidate != name {
			remaining = append(remaining, candidate)
		}
	}
	if len(remaining) == len(existing) {
		return profile, nil
	}

	if len(remaining) == 0 {
		delete(profile.CustomSymptoms, categoryID)
	} else {
		profile.CustomSymptoms[categoryID] = remaining
	}

	return profile, service.saveProfile(userID, profile)
}

func (service *ProfileService) AddCustomActivity(userID uint, name string) (models.ProfileData, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxCustomNameLength {
		return models.ProfileData{}, ErrInvalidActivity
	}

	profile, err := service.Profile(userID)
	if err != nil {
		return models.ProfileData{}, err
	}

	for _, existing := range profile.CustomActivities {
		if existing == name {
			return profile, nil
		}
	}
	profile.CustomActivities = append(profile.CustomActivities, name)

	return profile, service.saveProfile(userID, profile)
}

func (service *ProfileService) RemoveCustomActivity(userID uint, name string) (models.ProfileData, error) {
	profile, err := service.Profile(userID)
	if err != nil {
		return models.ProfileData{}, err
	}

	remaining := make([]string, 0, len(profile.CustomActivities))
	for _, candidate := range profile.CustomActivities {
		if candidate != name {
			remaining = append(remaining, candidate)
		}
	}
	if len(remaining) == len(profile.CustomActivities) {
		return profile, nil
	}
	profile.CustomActivities = remaining

	return profile, service.saveProfile(userID, profile)
}

func (service *ProfileService) saveProfile(userID uint, profile models.ProfileData) error {
	if err := service.documents.Save(userID, models.DocumentProfile, profile); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}
	return nil
}

func normalizeProfile(profile *models.ProfileData) {
	if profile.Surgeries == nil {
		profile.Surgeries = []string{}
	}
	if profile.SelectedVitamins == nil {
		profile.SelectedVitamins = []string{}
	}
	if profile.CustomSymptoms == nil {
		profile.CustomSymptoms = map[string][]string{}
	}
	if profile.CustomActivities == nil {
		profile.CustomActivities = []string{}
	}
}
