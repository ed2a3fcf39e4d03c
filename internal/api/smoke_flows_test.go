package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/RACSolutions/endocare/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "endocare-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	handler := NewHandler(database, "test-secret", time.UTC, false)
	handler.now = func() time.Time {
		return time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method string, target string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "ada@example.com",
		"password": "correct-horse",
	}, nil)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", response.StatusCode)
	}
	response.Body.Close()

	cookies := response.Cookies()
	if len(cookies) == 0 {
		t.Fatal("register must set the auth cookie")
	}
	return cookies
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/healthz", nil, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()
}

func TestEntriesRequireAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/entries", nil, nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated entries status = %d, want 401", response.StatusCode)
	}
	response.Body.Close()
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "ADA@example.com",
		"password": "another-pass",
	}, nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", response.StatusCode)
	}
	response.Body.Close()
}

func TestLoginWithWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	}, nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", response.StatusCode)
	}
	response.Body.Close()
}

func TestSymptomLoggingToAnalyticsFlow(t *testing.T) {
	app, handler := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPut, "/api/entries/2024-03-20/symptoms", map[string]any{
		"category": "pain",
		"symptom":  "Pelvic pain",
		"severity": 2,
	}, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("set severity status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()

	var entryBody struct {
		Entry struct {
			Date     string                    `json:"date"`
			Symptoms map[string]map[string]int `json:"symptoms"`
		} `json:"entry"`
	}
	response = doJSON(t, app, http.MethodGet, "/api/entries/2024-03-20", nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("get entry status = %d, want 200", response.StatusCode)
	}
	decodeBody(t, response, &entryBody.Entry)
	if entryBody.Entry.Symptoms["pain"]["Pelvic pain"] != 2 {
		t.Fatalf("entry symptoms = %v, want Pelvic pain severity 2", entryBody.Entry.Symptoms)
	}

	var analyticsBody struct {
		Window    string `json:"window"`
		Analytics struct {
			TotalEntries     int `json:"totalEntries"`
			DaysWithSymptoms int `json:"daysWithSymptoms"`
		} `json:"analytics"`
		TopSymptoms []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"topSymptoms"`
	}
	response = doJSON(t, app, http.MethodGet, "/api/analytics?window=30d", nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("analytics status = %d, want 200", response.StatusCode)
	}
	decodeBody(t, response, &analyticsBody)

	if analyticsBody.Window != "30d" {
		t.Fatalf("window = %q, want 30d", analyticsBody.Window)
	}
	if analyticsBody.Analytics.TotalEntries != 1 || analyticsBody.Analytics.DaysWithSymptoms != 1 {
		t.Fatalf("analytics counters = %+v", analyticsBody.Analytics)
	}
	if len(analyticsBody.TopSymptoms) != 1 || analyticsBody.TopSymptoms[0].Name != "Pelvic pain" {
		t.Fatalf("topSymptoms = %v", analyticsBody.TopSymptoms)
	}

	handler.Shutdown()
}

func TestAnalyticsRejectsUnknownWindow(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodGet, "/api/analytics?window=2w", nil, cookies)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown window status = %d, want 400", response.StatusCode)
	}
	response.Body.Close()
}

func TestEntryDateValidation(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodGet, "/api/entries/20-03-2024", nil, cookies)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed date status = %d, want 400", response.StatusCode)
	}
	response.Body.Close()
}

func TestInvalidSeverityRejected(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPut, "/api/entries/2024-03-20/symptoms", map[string]any{
		"category": "pain",
		"symptom":  "Pelvic pain",
		"severity": 7,
	}, cookies)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid severity status = %d, want 400", response.StatusCode)
	}
	response.Body.Close()
}

func TestCalendarMonthGrid(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	var body struct {
		Month string `json:"month"`
		Days  []struct {
			Date    string `json:"date"`
			InMonth bool   `json:"inMonth"`
			HasData bool   `json:"hasData"`
		} `json:"days"`
	}
	response := doJSON(t, app, http.MethodGet, "/api/calendar/2024-03", nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("calendar status = %d, want 200", response.StatusCode)
	}
	decodeBody(t, response, &body)

	if body.Month != "2024-03" {
		t.Fatalf("month = %q, want 2024-03", body.Month)
	}
	if len(body.Days)%7 != 0 {
		t.Fatalf("calendar has %d days, want a multiple of 7", len(body.Days))
	}
}

func TestTaxonomyIncludesCustomSymptoms(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPost, "/api/profile/custom-symptoms", map[string]string{
		"category": "pain",
		"name":     "Hip pain",
	}, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("add custom symptom status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()

	var body struct {
		SymptomCategories []struct {
			ID       string   `json:"id"`
			Symptoms []string `json:"symptoms"`
		} `json:"symptomCategories"`
		ActivityNames []string `json:"activityNames"`
	}
	response = doJSON(t, app, http.MethodGet, "/api/taxonomy", nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("taxonomy status = %d, want 200", response.StatusCode)
	}
	decodeBody(t, response, &body)

	found := false
	for _, category := range body.SymptomCategories {
		if category.ID != "pain" {
			continue
		}
		for _, name := range category.Symptoms {
			if name == "Hip pain" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("taxonomy must include the user's custom symptom")
	}
	if len(body.ActivityNames) == 0 {
		t.Fatal("taxonomy must include the activity catalog")
	}
}

func TestProfilePatchPersists(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPatch, "/api/profile", map[string]any{
		"name":  "Ada",
		"stage": "II",
	}, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("patch profile status = %d, want 200", response.StatusCode)
	}
	response.Body.Close()

	var body struct {
		Profile struct {
			Name  string `json:"name"`
			Stage string `json:"stage"`
		} `json:"profile"`
	}
	response = doJSON(t, app, http.MethodGet, "/api/profile", nil, cookies)
	decodeBody(t, response, &body)

	if body.Profile.Name != "Ada" || body.Profile.Stage != "II" {
		t.Fatalf("profile = %+v, want Ada / II", body.Profile)
	}
}

func TestNoSymptomsToggleFlow(t *testing.T) {
	app, _ := newTestApp(t)
	cookies := registerTestUser(t, app)

	response := doJSON(t, app, http.MethodPut, "/api/entries/2024-03-20/symptoms", map[string]any{
		"category": "pain",
		"symptom":  "Headache",
		"severity": 1,
	}, cookies)
	response.Body.Close()

	var body struct {
		Entry struct {
			Symptoms           map[string]map[string]int `json:"symptoms"`
			NoSymptomsRecorded bool                      `json:"noSymptomsRecorded"`
		} `json:"entry"`
	}
	response = doJSON(t, app, http.MethodPost, "/api/entries/2024-03-20/no-symptoms", nil, cookies)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("toggle no-symptoms status = %d, want 200", response.StatusCode)
	}
	decodeBody(t, response, &body)

	if !body.Entry.NoSymptomsRecorded {
		t.Fatal("expected first toggle to confirm the symptom-free day")
	}
	if len(body.Entry.Symptoms) != 0 {
		t.Fatalf("confirming must wipe symptoms, got %v", body.Entry.Symptoms)
	}
}
