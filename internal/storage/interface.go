package storage

import (
	"net/url"
	"strings"
	"time"

	"github.com/avwray/lifedeck/internal/models"
)

// Provider is the storage contract shared by the SQLite and PostgreSQL
// backends. Dates cross this boundary as YYYY-MM-DD strings and timestamps
// as time.Time values.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByTitle(title string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Habit logs
	AddHabitLog(models.HabitLog) error
	GetHabitLog(habitID, day string) (models.HabitLog, error)
	GetHabitLogs(habitID string) ([]models.HabitLog, error)
	GetHabitLogsForDay(day string) ([]models.HabitLog, error)
	GetAllHabitLogs() ([]models.HabitLog, error)
	DeleteHabitLog(id string) error

	// Unlocked achievements (insert-once facts)
	AddAchievement(models.UnlockedAchievement) error
	GetAchievements(owner, habitID string) ([]models.UnlockedAchievement, error)

	// Habit reminders
	SaveReminder(models.HabitReminder) error
	GetReminder(habitID string) (models.HabitReminder, error)
	GetAllReminders() ([]models.HabitReminder, error)
	DeleteReminder(habitID string) error

	// Todos
	AddTodo(models.Todo) error
	GetTodo(id string) (models.Todo, error)
	GetAllTodos(includeDeleted bool) ([]models.Todo, error)
	UpdateTodo(models.Todo) error
	DeleteTodo(id string) error
	RestoreTodo(id string) error

	// Expenses
	AddExpense(models.Expense) error
	GetExpense(id string) (models.Expense, error)
	GetAllExpenses(includeDeleted bool) ([]models.Expense, error)
	GetExpensesBetween(start, end time.Time) ([]models.Expense, error)
	DeleteExpense(id string) error
	RestoreExpense(id string) error

	// Utils
	GetConfigPath() string
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Such strings are rejected; credentials belong in
// the environment, .pgpass, or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs.
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

// IsPostgresConnString reports whether the config string selects the
// PostgreSQL backend rather than a SQLite file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}
