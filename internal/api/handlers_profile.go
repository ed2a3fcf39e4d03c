package api

import (
	"errors"

	"github.com/RACSolutions/endocare/internal/models"
	"github.com/RACSolutions/endocare/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := handler.profiles.Profile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	medications, err := handler.profiles.Medications(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load medications")
	}
	diagnoses, err := handler.profiles.Diagnoses(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load diagnoses")
	}

	return c.JSON(fiber.Map{
		"profile":     profile,
		"medications": medications,
		"diagnoses":   diagnoses,
	})
}

func (handler *Handler) PatchProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	patch := services.ProfilePatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.profiles.UpdateProfile(user.ID, patch)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) PutMedications(c *fiber.Ctx) error {
	user := currentUser(c)

	input := medicationsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.profiles.SetMedications(user.ID, input.Medications); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save medications")
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func (handler *Handler) PutDiagnoses(c *fiber.Ctx) error {
	user := currentUser(c)

	input := diagnosesInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.profiles.SetDiagnoses(user.ID, input.Diagnoses); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save diagnoses")
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func (handler *Handler) AddCustomSymptom(c *fiber.Ctx) error {
	user := currentUser(c)

	input := customSymptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.profiles.AddCustomSymptom(user.ID, input.Category, input.Name)
	if err != nil {
		return respondProfileMutationError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) RemoveCustomSymptom(c *fiber.Ctx) error {
	user := currentUser(c)

	input := customSymptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.profiles.RemoveCustomSymptom(user.ID, input.Category, input.Name)
	if err != nil {
		return respondProfileMutationError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) AddCustomActivity(c *fiber.Ctx) error {
	user := currentUser(c)

	input := customActivityInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.profiles.AddCustomActivity(user.ID, input.Name)
	if err != nil {
		return respondProfileMutationError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) RemoveCustomActivity(c *fiber.Ctx) error {
	user := currentUser(c)

	input := customActivityInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.profiles.RemoveCustomActivity(user.ID, input.Name)
	if err != nil {
		return respondProfileMutationError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

// GetTaxonomy returns the built-in catalogs merged with the user's custom
// additions, in display order.
func (handler *Handler) GetTaxonomy(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := handler.profiles.Profile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	merged := services.MergedSymptomCategories(profile.CustomSymptoms)
	categories := make([]models.SymptomCategory, 0, len(merged))
	for _, category := range models.BuiltinSymptomCategories() {
		categories = append(categories, merged[category.ID])
	}

	return c.JSON(fiber.Map{
		"symptomCategories":  categories,
		"activityCategories": models.BuiltinActivityCategories(),
		"activityNames":      services.MergedActivityNames(profile.CustomActivities),
	})
}

func respondProfileMutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidSymptomName),
		errors.Is(err, services.ErrInvalidActivity),
		errors.Is(err, services.ErrUnknownCategory):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
}
