package analytics

import (
	"time"

	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/utils"
)

// DayStatus is one day of the trailing-week overview.
type DayStatus struct {
	// Day is the short weekday name (Mon, Tue, ...).
	Day       string
	Date      string
	Completed bool
}

// WeekOverview reports completion for the 7 days ending at today, oldest
// first. It feeds the dashboard heatmap.
func WeekOverview(logs []models.HabitLog, today time.Time) []DayStatus {
	days := daySet(logs)
	today = utils.Midnight(today)

	week := make([]DayStatus, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		date := utils.FormatDay(d)
		_, done := days[date]
		week = append(week, DayStatus{
			Day:       d.Weekday().String()[:3],
			Date:      date,
			Completed: done,
		})
	}
	return week
}
