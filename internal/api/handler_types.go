package api

import (
	"time"

	"github.com/RACSolutions/endocare/internal/db"
	"github.com/RACSolutions/endocare/internal/models"
	"github.com/RACSolutions/endocare/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName      = "endocare_auth"
	defaultAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	users     *db.UserRepository
	entries   *services.EntryStore
	profiles  *services.ProfileService
	analytics *services.AnalyticsService

	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	// now is swappable in tests; everything date-keyed flows through it.
	now func() time.Time
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	repositories := db.NewRepositories(database)
	documents := services.NewDocumentStore(repositories.Documents)
	entries := services.NewEntryStore(documents)
	profiles := services.NewProfileService(documents)

	return &Handler{
		users:        repositories.Users,
		entries:      entries,
		profiles:     profiles,
		analytics:    services.NewAnalyticsService(entries, profiles, location),
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		now:          time.Now,
	}
}

// Shutdown waits for in-flight background persists before the process exits.
func (handler *Handler) Shutdown() {
	handler.entries.Wait()
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type symptomSeverityInput struct {
	Category string `json:"category"`
	Symptom  string `json:"symptom"`
	Severity int    `json:"severity"`
}

type activityToggleInput struct {
	Name string `json:"name"`
}

type customSymptomInput struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type customActivityInput struct {
	Name string `json:"name"`
}

type medicationsInput struct {
	Medications []models.Medication `json:"medications"`
}

type diagnosesInput struct {
	Diagnoses []models.Diagnosis `json:"diagnoses"`
}
