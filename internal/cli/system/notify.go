package system

import (
	"fmt"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/notifier"
	"github.com/avwray/lifedeck/internal/reminder"
)

// NotifyCmd is invoked by a cron or timer every minute. It fires a desktop
// notification for each habit whose reminder time matches the current minute
// and which has not been completed today.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetAllReminders()
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	if len(reminders) == 0 {
		if c.DryRun {
			fmt.Println("No reminders configured.")
		}
		return nil
	}

	now := ctx.Now()
	today := now.Format("2006-01-02")
	currentMinute := now.Format(constants.TimeFormat)

	n := notifier.New()

	for _, r := range reminders {
		// Fire exactly once: only on the minute the reminder names.
		if r.Time != currentMinute {
			continue
		}

		habit, err := ctx.Store.GetHabit(r.HabitID)
		if err != nil || habit.ArchivedAt != nil || habit.DeletedAt != nil {
			continue
		}

		_, logErr := ctx.Store.GetHabitLog(habit.ID, today)
		completedToday := logErr == nil

		due, err := reminder.Due(r, completedToday, now)
		if err != nil || !due {
			continue
		}

		msg := reminder.Message(habit)
		if c.DryRun {
			fmt.Println("[DryRun] " + msg)
			continue
		}
		if err := n.Notify(msg); err != nil {
			// Keep going: one failed delivery should not block the rest.
			fmt.Printf("Failed to send notification: %v\n", err)
		}
	}

	return nil
}
