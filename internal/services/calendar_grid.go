package services

import "time"

type CalendarCell struct {
	Date    time.Time `json:"-"`
	DateKey string    `json:"date"`
	Day     int       `json:"day"`
	InMonth bool      `json:"inMonth"`
}

type MonthGrid struct {
	Month string         `json:"month"`
	Label string         `json:"label"`
	Cells []CalendarCell `json:"cells"`
}

// BuildMonthGrid produces the Sunday-first calendar grid for the month
// containing the given date. Leading and trailing cells carry real
// adjacent-month dates flagged InMonth=false, and the grid is always padded
// to whole weeks so the cell count is a multiple of seven.
func BuildMonthGrid(anyDayInMonth time.Time, location *time.Location) MonthGrid {
	monthStart := MonthStart(anyDayInMonth, location)
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	cells := make([]CalendarCell, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		cells = append(cells, CalendarCell{
			Date:    day,
			DateKey: day.Format(DateKeyLayout),
			Day:     day.Day(),
			InMonth: day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
		})
	}

	return MonthGrid{
		Month: monthStart.Format(MonthKeyLayout),
		Label: MonthLabel(monthStart),
		Cells: cells,
	}
}
