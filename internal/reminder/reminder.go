package reminder

import (
	"fmt"
	"time"

	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/models"
)

// Due reports whether a reminder should fire at the given moment. A reminder
// is due once its configured time of day has passed and the habit has not been
// completed today. Disabled reminders are never due.
func Due(r models.HabitReminder, completedToday bool, now time.Time) (bool, error) {
	if !r.Enabled || completedToday {
		return false, nil
	}

	at, err := time.Parse(constants.TimeFormat, r.Time)
	if err != nil {
		return false, fmt.Errorf("invalid reminder time %q: %w", r.Time, err)
	}

	fireAt := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	return !now.Before(fireAt), nil
}

// Message formats the notification text for a due reminder.
func Message(habit models.Habit) string {
	if habit.Icon != "" {
		return fmt.Sprintf("%s Time for %q", habit.Icon, habit.Title)
	}
	return fmt.Sprintf("Time for %q", habit.Title)
}
