package api

import (
	"errors"

	"github.com/RACSolutions/endocare/internal/models"
	"github.com/RACSolutions/endocare/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetEntries returns the user's full entry log keyed by date.
func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	user := currentUser(c)
	entries, err := handler.entries.Entries(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	return c.JSON(fiber.Map{"entries": entries})
}

// GetEntry returns the entry for one date, or the zero-value entry when none
// was recorded.
func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user := currentUser(c)
	dateKey, ok := handler.dateParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.entries.Get(user.ID, dateKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entry")
	}
	return c.JSON(entry)
}

// PatchEntry shallow-merges the posted fields onto the day's entry.
func (handler *Handler) PatchEntry(c *fiber.Ctx) error {
	user := currentUser(c)
	dateKey, ok := handler.dateParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	patch := services.EntryPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if patch.Symptoms != nil {
		for _, categorySymptoms := range *patch.Symptoms {
			for _, severity := range categorySymptoms {
				if !severity.Valid() {
					return apiError(c, fiber.StatusBadRequest, "invalid severity")
				}
			}
		}
	}

	entry, err := handler.entries.Update(user.ID, dateKey, patch)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return handler.respondEntry(c, user.ID, entry)
}

// SetSymptomSeverity records one symptom for the day; severity zero removes
// it.
func (handler *Handler) SetSymptomSeverity(c *fiber.Ctx) error {
	user := currentUser(c)
	dateKey, ok := handler.dateParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := symptomSeverityInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Category == "" || input.Symptom == "" {
		return apiError(c, fiber.StatusBadRequest, "category and symptom are required")
	}

	entry, err := handler.entries.SetSymptomSeverity(user.ID, dateKey, input.Category, input.Symptom, models.Severity(input.Severity))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSeverity) {
			return apiError(c, fiber.StatusBadRequest, "invalid severity")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return handler.respondEntry(c, user.ID, entry)
}

// ToggleActivity adds or removes an activity name for the day.
func (handler *Handler) ToggleActivity(c *fiber.Ctx) error {
	user := currentUser(c)
	dateKey, ok := handler.dateParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := activityToggleInput{}
	if err := c.BodyParser(&input); err != nil || input.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "activity name is required")
	}

	entry, err := handler.entries.ToggleActivity(user.ID, dateKey, input.Name)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return handler.respondEntry(c, user.ID, entry)
}

// ToggleNoSymptoms flips the explicit symptom-free confirmation for the day.
// Confirming wipes recorded symptoms; un-confirming never restores them.
func (handler *Handler) ToggleNoSymptoms(c *fiber.Ctx) error {
	user := currentUser(c)
	dateKey, ok := handler.dateParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	current, err := handler.entries.Get(user.ID, dateKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entry")
	}

	entry, err := handler.entries.SetNoSymptoms(user.ID, dateKey, !current.NoSymptomsRecorded)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return handler.respondEntry(c, user.ID, entry)
}

func (handler *Handler) dateParam(c *fiber.Ctx) (string, bool) {
	raw := c.Params("date")
	parsed, err := services.ParseDateKey(raw, handler.location)
	if err != nil {
		return "", false
	}
	return services.FormatDateKey(parsed, handler.location), true
}

// respondEntry reports the merged entry plus a non-fatal warning when the
// most recent background save failed; in-memory state stays authoritative.
func (handler *Handler) respondEntry(c *fiber.Ctx, userID uint, entry models.DailyEntry) error {
	response := fiber.Map{"entry": entry}
	if warning := handler.entries.PersistenceWarning(userID); warning != nil {
		response["warning"] = "changes are not yet saved to disk"
	}
	return c.JSON(response)
}
