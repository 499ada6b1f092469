package system

import (
	"fmt"
	"time"

	"github.com/avwray/lifedeck/internal/backup"
	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/storage"
	"github.com/avwray/lifedeck/internal/storage/sqlite"
	"github.com/avwray/lifedeck/internal/utils"
	"github.com/avwray/lifedeck/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(ctx *cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Settings valid", run: checkSettings, needsDB: true},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClock() }},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Habit log integrity", run: checkHabitLogIntegrity, needsDB: true},
	{name: "Date formats", run: checkDateFormats, needsDB: true},
	{name: "Reminder times", run: checkReminderTimes, needsDB: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Timezone != "" && !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone in settings: %s", settings.Timezone)
	}
	if settings.MonthlyBudget < 0 {
		return fmt.Errorf("monthly budget is negative: %.2f", settings.MonthlyBudget)
	}
	if settings.CompletionWindowDays < 0 {
		return fmt.Errorf("completion window is negative: %d", settings.CompletionWindowDays)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		// File backups only apply to the SQLite backend.
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

// checkHabitLogIntegrity finds duplicate (habit, day) logs and logs that
// reference habits that no longer exist.
func checkHabitLogIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}

	logs, err := ctx.Store.GetAllHabitLogs()
	if err != nil {
		return fmt.Errorf("failed to get habit logs: %w", err)
	}

	seen := make(map[string]bool, len(logs))
	duplicates := 0
	orphans := 0
	for _, log := range logs {
		key := log.HabitID + "|" + log.Day
		if seen[key] {
			duplicates++
		}
		seen[key] = true
		if !known[log.HabitID] {
			orphans++
		}
	}

	if duplicates > 0 {
		return fmt.Errorf("found %d habit+day combinations with duplicate logs", duplicates)
	}
	if orphans > 0 {
		return fmt.Errorf("found %d habit logs referencing non-existent habits", orphans)
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	logs, err := ctx.Store.GetAllHabitLogs()
	if err != nil {
		return fmt.Errorf("failed to get habit logs: %w", err)
	}

	invalid := 0
	for _, log := range logs {
		if validation.Day(log.Day) != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d habit logs with invalid date format", invalid)
	}
	return nil
}

func checkReminderTimes(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetAllReminders()
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}

	invalid := 0
	for _, r := range reminders {
		if validation.TimeOfDay(r.Time) != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d reminders with invalid time format", invalid)
	}
	return nil
}
