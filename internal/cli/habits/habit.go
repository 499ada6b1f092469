package habits

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avwray/lifedeck/internal/analytics"
	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/validation"

	apperrors "github.com/avwray/lifedeck/internal/errors"
)

type HabitCmd struct {
	Add          HabitAddCmd          `cmd:"" help:"Add a new habit."`
	List         HabitListCmd         `cmd:"" help:"List habits."`
	Done         HabitDoneCmd         `cmd:"" help:"Mark a habit done for a day."`
	Undo         HabitUndoCmd         `cmd:"" help:"Remove a completion for a day."`
	Today        HabitTodayCmd        `cmd:"" help:"Show today's habit status."`
	Stats        HabitStatsCmd        `cmd:"" help:"Show streaks, consistency, and trends for a habit."`
	Calendar     HabitCalendarCmd     `cmd:"" help:"Show a monthly completion calendar."`
	Achievements HabitAchievementsCmd `cmd:"" help:"Show achievements for a habit."`
	Remind       HabitRemindCmd       `cmd:"" help:"Manage a habit's daily reminder."`
	Archive      HabitArchiveCmd      `cmd:"" help:"Archive a habit."`
	Delete       HabitDeleteCmd       `cmd:"" help:"Delete a habit (soft delete)."`
	Restore      HabitRestoreCmd      `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Title     string `arg:"" help:"Habit title."`
	Frequency string `short:"f" help:"Frequency (daily|weekly|monthly)." default:"daily"`
	Icon      string `help:"Optional icon (emoji)."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := validation.Title(c.Title); err != nil {
		return err
	}
	freq, err := validation.Frequency(c.Frequency)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByTitle(c.Title); err == nil {
		return fmt.Errorf("habit %q already exists", c.Title)
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Owner:     ctx.Settings().Owner,
		Title:     c.Title,
		Frequency: freq,
		Icon:      c.Icon,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Title)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Now()
	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}

		logs, err := ctx.Store.GetHabitLogs(habit.ID)
		if err != nil {
			return err
		}
		streak := analytics.CurrentStreak(logs, today)

		icon := ""
		if habit.Icon != "" {
			icon = habit.Icon + " "
		}
		fmt.Printf("%s%s (%s) 🔥 %d%s\n", icon, habit.Title, habit.Frequency, streak, status)
	}

	return nil
}

type HabitDoneCmd struct {
	Title string `arg:"" help:"Habit title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note  string `help:"Optional note for this entry." default:""`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	} else if err := validation.Day(day); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitLog(habit.ID, day); err == nil {
		return fmt.Errorf("habit %q is already marked done for %s", c.Title, day)
	}

	log := models.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       day,
		Note:      c.Note,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddHabitLog(log); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateLog) {
			return fmt.Errorf("habit %q is already marked done for %s", c.Title, day)
		}
		return err
	}

	fmt.Printf("Marked %q done for %s\n", c.Title, day)

	// Marking a day can unlock achievements.
	for _, name := range syncAchievements(ctx, habit) {
		fmt.Printf("🏆 Achievement unlocked: %s\n", name)
	}
	return nil
}

type HabitUndoCmd struct {
	Title string `arg:"" help:"Habit title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitUndoCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	} else if err := validation.Day(day); err != nil {
		return err
	}

	log, err := ctx.Store.GetHabitLog(habit.ID, day)
	if err != nil {
		return fmt.Errorf("habit %q has no completion for %s", c.Title, day)
	}

	if err := ctx.Store.DeleteHabitLog(log.ID); err != nil {
		return err
	}

	fmt.Printf("Removed completion of %q for %s\n", c.Title, day)
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Today()
	logs, err := ctx.Store.GetHabitLogsForDay(today)
	if err != nil {
		return err
	}

	done := make(map[string]bool)
	for _, log := range logs {
		done[log.HabitID] = true
	}

	fmt.Printf("Habits for %s:\n\n", today)
	completed := 0
	for _, habit := range habits {
		status := "[ ]"
		if done[habit.ID] {
			status = "[x]"
			completed++
		}
		fmt.Printf("%s %s\n", status, habit.Title)
	}

	fmt.Printf("\nCompleted: %d/%d\n", completed, len(habits))
	return nil
}

type HabitArchiveCmd struct {
	Title     string `arg:"" help:"Habit title to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", c.Title)
	} else {
		if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Archived habit: %s\n", c.Title)
	}

	return nil
}

type HabitDeleteCmd struct {
	Title string `arg:"" help:"Habit title to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Title)
	fmt.Println("(This is a soft delete. Use 'lifedeck habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Title string `arg:"" help:"Habit title to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i, h := range habits {
		if h.Title == c.Title && h.DeletedAt != nil {
			habit = &habits[i]
			break
		}
	}

	if habit == nil {
		return fmt.Errorf("deleted habit %q not found", c.Title)
	}

	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Title)
	return nil
}

// syncAchievements evaluates and persists any newly earned achievements,
// returning display names. Failures are logged inside the sync and never
// interrupt the calling command.
func syncAchievements(ctx *cli.Context, habit models.Habit) []string {
	logs, err := ctx.Store.GetHabitLogs(habit.ID)
	if err != nil {
		return nil
	}
	existing, err := ctx.Store.GetAchievements(habit.Owner, habit.ID)
	if err != nil {
		return nil
	}

	unlocked := make(map[string]bool, len(existing))
	for _, a := range existing {
		unlocked[a.Key] = true
	}

	snap := analytics.NewSnapshot(habit, logs, ctx.Now())
	keys := analytics.SyncAchievements(ctx.Store, unlocked, snap, time.Now())

	var names []string
	for _, key := range keys {
		if def, ok := analytics.DefinitionByKey(key); ok {
			names = append(names, def.Name)
		}
	}
	return names
}
