package habits

import (
	"fmt"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/validation"

	apperrors "github.com/avwray/lifedeck/internal/errors"
)

type HabitRemindCmd struct {
	Title   string `arg:"" help:"Habit title."`
	At      string `help:"Reminder time (HH:MM)."`
	Disable bool   `help:"Disable the reminder."`
	Clear   bool   `help:"Remove the reminder entirely."`
}

func (c *HabitRemindCmd) Validate() error {
	if c.At != "" && c.Clear {
		return fmt.Errorf("--at and --clear are mutually exclusive")
	}
	return nil
}

func (c *HabitRemindCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	if c.Clear {
		if err := ctx.Store.DeleteReminder(habit.ID); err != nil {
			if apperrors.IsNotFound(err) {
				return fmt.Errorf("habit %q has no reminder", c.Title)
			}
			return err
		}
		fmt.Printf("Removed reminder for %q\n", c.Title)
		return nil
	}

	if c.At != "" {
		if err := validation.TimeOfDay(c.At); err != nil {
			return err
		}
		reminder := models.HabitReminder{
			HabitID: habit.ID,
			Time:    c.At,
			Enabled: !c.Disable,
		}
		if err := ctx.Store.SaveReminder(reminder); err != nil {
			return err
		}
		fmt.Printf("Reminder for %q set to %s\n", c.Title, c.At)
		return nil
	}

	if c.Disable {
		reminder, err := ctx.Store.GetReminder(habit.ID)
		if err != nil {
			return fmt.Errorf("habit %q has no reminder", c.Title)
		}
		reminder.Enabled = false
		if err := ctx.Store.SaveReminder(reminder); err != nil {
			return err
		}
		fmt.Printf("Disabled reminder for %q\n", c.Title)
		return nil
	}

	// No flags: show the current reminder.
	reminder, err := ctx.Store.GetReminder(habit.ID)
	if err != nil {
		fmt.Printf("No reminder set for %q\n", c.Title)
		return nil
	}
	state := "enabled"
	if !reminder.Enabled {
		state = "disabled"
	}
	fmt.Printf("Reminder for %q: %s (%s)\n", c.Title, reminder.Time, state)
	return nil
}
