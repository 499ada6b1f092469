package system

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Stamp the owner on freshly seeded settings.
	if settings, err := ctx.Store.GetSettings(); err == nil && settings.Owner == "" {
		settings.Owner = currentUsername()
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	fmt.Printf("Initialized lifedeck storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "default"
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresConnString(sourcePath) {
		if storage.HasEmbeddedCredentials(sourcePath) {
			return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	} else {
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating habits...")
	habits, err := sourceStore.GetAllHabits(true, true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, habit := range habits {
		if err := ctx.Store.AddHabit(habit); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", habit.ID, err)
		}
	}
	fmt.Printf("    Migrated %d habits\n", len(habits))

	fmt.Println("  Migrating habit logs...")
	logs, err := sourceStore.GetAllHabitLogs()
	if err != nil {
		return fmt.Errorf("failed to get habit logs from source: %w", err)
	}
	for _, log := range logs {
		if err := ctx.Store.AddHabitLog(log); err != nil {
			return fmt.Errorf("failed to add habit log %s: %w", log.ID, err)
		}
	}
	fmt.Printf("    Migrated %d habit logs\n", len(logs))

	fmt.Println("  Migrating achievements...")
	achievementCount := 0
	for _, habit := range habits {
		achievements, err := sourceStore.GetAchievements(habit.Owner, habit.ID)
		if err != nil {
			return fmt.Errorf("failed to get achievements from source: %w", err)
		}
		for _, a := range achievements {
			if err := ctx.Store.AddAchievement(a); err != nil {
				return fmt.Errorf("failed to add achievement %s: %w", a.ID, err)
			}
			achievementCount++
		}
	}
	fmt.Printf("    Migrated %d achievements\n", achievementCount)

	fmt.Println("  Migrating reminders...")
	reminders, err := sourceStore.GetAllReminders()
	if err != nil {
		return fmt.Errorf("failed to get reminders from source: %w", err)
	}
	for _, r := range reminders {
		if err := ctx.Store.SaveReminder(r); err != nil {
			return fmt.Errorf("failed to save reminder for habit %s: %w", r.HabitID, err)
		}
	}
	fmt.Printf("    Migrated %d reminders\n", len(reminders))

	fmt.Println("  Migrating todos...")
	todos, err := sourceStore.GetAllTodos(true)
	if err != nil {
		return fmt.Errorf("failed to get todos from source: %w", err)
	}
	for _, todo := range todos {
		if err := ctx.Store.AddTodo(todo); err != nil {
			return fmt.Errorf("failed to add todo %s: %w", todo.ID, err)
		}
	}
	fmt.Printf("    Migrated %d todos\n", len(todos))

	fmt.Println("  Migrating expenses...")
	expenses, err := sourceStore.GetAllExpenses(true)
	if err != nil {
		return fmt.Errorf("failed to get expenses from source: %w", err)
	}
	for _, expense := range expenses {
		if err := ctx.Store.AddExpense(expense); err != nil {
			return fmt.Errorf("failed to add expense %s: %w", expense.ID, err)
		}
	}
	fmt.Printf("    Migrated %d expenses\n", len(expenses))

	return nil
}
