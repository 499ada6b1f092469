package analytics

import (
	"time"

	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/utils"
)

// CalendarDay is one cell of a month grid. Padding cells carry Day 0 and
// InMonth false.
type CalendarDay struct {
	Day       int
	Completed bool
	InMonth   bool
}

// MonthGrid builds a Monday-first grid for the given month: leading padding
// cells up to the weekday of the 1st, then one cell per day of the month
// marked completed when that exact date appears in the log set. The grid ends
// at the last day of the month with no trailing padding, and the result does
// not depend on today.
func MonthGrid(logs []models.HabitLog, month time.Month, year int) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	// Shift Sunday-first weekday numbering so Monday is 0.
	leading := (int(first.Weekday()) + 6) % 7

	logDays := daySet(logs)

	grid := make([]CalendarDay, 0, leading+lastDay)
	for i := 0; i < leading; i++ {
		grid = append(grid, CalendarDay{})
	}
	for d := 1; d <= lastDay; d++ {
		date := utils.FormatDay(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		_, done := logDays[date]
		grid = append(grid, CalendarDay{Day: d, Completed: done, InMonth: true})
	}
	return grid
}
