package api

import (
	"time"

	"github.com/RACSolutions/endocare/internal/services"
	"github.com/gofiber/fiber/v2"
)

const inAppRankingLimit = 5

// Default analysis window matches the mobile client's initial selection.
const defaultWindow = services.Window3Months

func (handler *Handler) windowQuery(c *fiber.Ctx) (services.TimeWindow, bool) {
	raw := c.Query("window", string(defaultWindow))
	window, err := services.ParseTimeWindow(raw)
	if err != nil {
		return "", false
	}
	return window, true
}

// GetAnalytics returns the aggregated view for the selected window, with
// rankings pre-sliced for in-app display.
func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	user := currentUser(c)
	window, ok := handler.windowQuery(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "unknown time window")
	}

	analytics, err := handler.analytics.BuildAnalytics(user.ID, window, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute analytics")
	}

	return c.JSON(fiber.Map{
		"window":             string(window),
		"windowLabel":        window.Label(),
		"analytics":          analytics,
		"topSymptoms":        services.TopCounts(analytics.TopSymptoms, inAppRankingLimit),
		"mostSevereSymptoms": services.TopSeverities(analytics.MostSevereSymptoms, inAppRankingLimit),
		"topActivities":      services.TopCounts(analytics.TopActivities, inAppRankingLimit),
	})
}

// GetMonthlyAnalytics returns the calendar-month rollups for the selected
// window.
func (handler *Handler) GetMonthlyAnalytics(c *fiber.Ctx) error {
	user := currentUser(c)
	window, ok := handler.windowQuery(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "unknown time window")
	}

	monthly, err := handler.analytics.BuildMonthly(user.ID, window, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute monthly analytics")
	}
	return c.JSON(fiber.Map{"window": string(window), "monthly": monthly})
}

// GetReport returns the complete medical-report payload for the selected
// window.
func (handler *Handler) GetReport(c *fiber.Ctx) error {
	user := currentUser(c)
	window, ok := handler.windowQuery(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "unknown time window")
	}

	report, err := handler.analytics.BuildReport(user.ID, window, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to assemble report")
	}
	return c.JSON(report)
}

// GetCalendarMonth returns the rectangular grid for one month (YYYY-MM),
// with each cell flagged for stored data so the client can badge days.
func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	user := currentUser(c)

	monthStart, err := time.ParseInLocation(services.MonthKeyLayout, c.Params("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	entries, err := handler.entries.Entries(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	grid := services.BuildMonthGrid(monthStart, handler.location)

	type calendarDay struct {
		services.CalendarCell
		HasData    bool `json:"hasData"`
		NoSymptoms bool `json:"noSymptoms"`
		Symptoms   int  `json:"symptoms"`
	}
	days := make([]calendarDay, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		day := calendarDay{CalendarCell: cell}
		if entry, exists := entries[cell.DateKey]; exists {
			day.HasData = true
			day.NoSymptoms = entry.NoSymptomsRecorded
			day.Symptoms = entry.SymptomInstanceCount()
		}
		days = append(days, day)
	}

	return c.JSON(fiber.Map{
		"month": grid.Month,
		"label": grid.Label,
		"days":  days,
	})
}
