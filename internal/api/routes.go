package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.GetEntries)
	entries.Get("/:date", handler.GetEntry)
	entries.Patch("/:date", handler.PatchEntry)
	entries.Put("/:date/symptoms", handler.SetSymptomSeverity)
	entries.Post("/:date/activities", handler.ToggleActivity)
	entries.Post("/:date/no-symptoms", handler.ToggleNoSymptoms)

	analytics := api.Group("/analytics", handler.AuthRequired)
	analytics.Get("", handler.GetAnalytics)
	analytics.Get("/monthly", handler.GetMonthlyAnalytics)

	api.Get("/report", handler.AuthRequired, handler.GetReport)
	api.Get("/calendar/:month", handler.AuthRequired, handler.GetCalendarMonth)
	api.Get("/taxonomy", handler.AuthRequired, handler.GetTaxonomy)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Patch("", handler.PatchProfile)
	profile.Put("/medications", handler.PutMedications)
	profile.Put("/diagnoses", handler.PutDiagnoses)
	profile.Post("/custom-symptoms", handler.AddCustomSymptom)
	profile.Delete("/custom-symptoms", handler.RemoveCustomSymptom)
	profile.Post("/custom-activities", handler.AddCustomActivity)
	profile.Delete("/custom-activities", handler.RemoveCustomActivity)
}
