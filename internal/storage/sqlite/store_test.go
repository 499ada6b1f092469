package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avwray/lifedeck/internal/constants"
	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "lifedeck.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestHabit(title string) models.Habit {
	return models.Habit{
		ID:        uuid.NewString(),
		Owner:     "tester",
		Title:     title,
		Frequency: constants.FrequencyDaily,
		Icon:      "🧘",
		CreatedAt: time.Now(),
	}
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.Timezone != "Local" {
		t.Errorf("timezone = %q, want Local", settings.Timezone)
	}
	if settings.Currency != constants.DefaultCurrency {
		t.Errorf("currency = %q, want %q", settings.Currency, constants.DefaultCurrency)
	}
	if settings.CompletionWindowDays != constants.DefaultCompletionWindowDays {
		t.Errorf("completion window = %d, want %d",
			settings.CompletionWindowDays, constants.DefaultCompletionWindowDays)
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading missing database")
	}
}

func TestHabitLifecycle(t *testing.T) {
	store := newTestStore(t)
	habit := newTestHabit("Meditate")

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("get habit: %v", err)
	}
	if got.Title != habit.Title || got.Frequency != habit.Frequency || got.Icon != habit.Icon {
		t.Errorf("got %+v, want %+v", got, habit)
	}

	byTitle, err := store.GetHabitByTitle("Meditate")
	if err != nil {
		t.Fatalf("get habit by title: %v", err)
	}
	if byTitle.ID != habit.ID {
		t.Errorf("by-title ID = %s, want %s", byTitle.ID, habit.ID)
	}

	if err := store.ArchiveHabit(habit.ID); err != nil {
		t.Fatalf("archive habit: %v", err)
	}
	active, err := store.GetAllHabits(false, false)
	if err != nil {
		t.Fatalf("get active habits: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("archived habit still listed as active")
	}
	if err := store.UnarchiveHabit(habit.ID); err != nil {
		t.Fatalf("unarchive habit: %v", err)
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("delete habit: %v", err)
	}
	if _, err := store.GetHabit(habit.ID); !apperrors.IsNotFound(err) {
		t.Errorf("deleted habit lookup error = %v, want not found", err)
	}
	all, err := store.GetAllHabits(true, true)
	if err != nil {
		t.Fatalf("get all habits: %v", err)
	}
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("soft-deleted habit missing from full listing: %+v", all)
	}

	if err := store.RestoreHabit(habit.ID); err != nil {
		t.Fatalf("restore habit: %v", err)
	}
	if _, err := store.GetHabit(habit.ID); err != nil {
		t.Errorf("restored habit should be visible: %v", err)
	}
}

func TestHabitNotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetHabit(uuid.NewString()); !apperrors.IsNotFound(err) {
		t.Errorf("GetHabit error = %v, want not found", err)
	}
	if err := store.ArchiveHabit(uuid.NewString()); !apperrors.IsNotFound(err) {
		t.Errorf("ArchiveHabit error = %v, want not found", err)
	}
}

func TestAddHabitLogDuplicateDay(t *testing.T) {
	store := newTestStore(t)
	habit := newTestHabit("Read")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	log := models.HabitLog{
		ID:        uuid.NewString(),
		HabitID:   habit.ID,
		Day:       "2024-03-15",
		CreatedAt: time.Now(),
	}
	if err := store.AddHabitLog(log); err != nil {
		t.Fatalf("add habit log: %v", err)
	}

	dup := log
	dup.ID = uuid.NewString()
	if err := store.AddHabitLog(dup); !errors.Is(err, apperrors.ErrDuplicateLog) {
		t.Errorf("duplicate log error = %v, want ErrDuplicateLog", err)
	}

	// A different day for the same habit is fine.
	next := log
	next.ID = uuid.NewString()
	next.Day = "2024-03-16"
	if err := store.AddHabitLog(next); err != nil {
		t.Errorf("log for different day: %v", err)
	}
}

func TestHabitLogQueriesAndDelete(t *testing.T) {
	store := newTestStore(t)
	habit := newTestHabit("Stretch")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	days := []string{"2024-03-13", "2024-03-14", "2024-03-15"}
	var firstID string
	for i, day := range days {
		log := models.HabitLog{
			ID:        uuid.NewString(),
			HabitID:   habit.ID,
			Day:       day,
			Note:      "note",
			CreatedAt: time.Now(),
		}
		if i == 0 {
			firstID = log.ID
		}
		if err := store.AddHabitLog(log); err != nil {
			t.Fatalf("add log for %s: %v", day, err)
		}
	}

	logs, err := store.GetHabitLogs(habit.ID)
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for i, day := range days {
		if logs[i].Day != day {
			t.Errorf("logs[%d].Day = %s, want %s (ordered by day)", i, logs[i].Day, day)
		}
	}

	forDay, err := store.GetHabitLogsForDay("2024-03-14")
	if err != nil {
		t.Fatalf("get logs for day: %v", err)
	}
	if len(forDay) != 1 || forDay[0].Day != "2024-03-14" {
		t.Errorf("logs for day = %+v", forDay)
	}

	if _, err := store.GetHabitLog(habit.ID, "2024-03-15"); err != nil {
		t.Errorf("get single log: %v", err)
	}
	if _, err := store.GetHabitLog(habit.ID, "2024-03-20"); !apperrors.IsNotFound(err) {
		t.Errorf("missing log error = %v, want not found", err)
	}

	if err := store.DeleteHabitLog(firstID); err != nil {
		t.Fatalf("delete log: %v", err)
	}
	if err := store.DeleteHabitLog(firstID); !apperrors.IsNotFound(err) {
		t.Errorf("double delete error = %v, want not found", err)
	}
}

func TestAchievementInsertOnce(t *testing.T) {
	store := newTestStore(t)
	habit := newTestHabit("Run")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	a := models.UnlockedAchievement{
		ID:         uuid.NewString(),
		Owner:      habit.Owner,
		HabitID:    habit.ID,
		Key:        "streak_7",
		UnlockedAt: time.Now(),
		Metadata:   models.AchievementMetadata{Streak: 7},
	}
	if err := store.AddAchievement(a); err != nil {
		t.Fatalf("add achievement: %v", err)
	}

	// Re-inserting the same key is a no-op: the unlock fact already stands.
	dup := a
	dup.ID = uuid.NewString()
	if err := store.AddAchievement(dup); err != nil {
		t.Fatalf("duplicate achievement should be tolerated: %v", err)
	}

	got, err := store.GetAchievements(habit.Owner, habit.ID)
	if err != nil {
		t.Fatalf("get achievements: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d achievements, want 1", len(got))
	}
	if got[0].Key != "streak_7" || got[0].Metadata.Streak != 7 {
		t.Errorf("achievement round trip = %+v", got[0])
	}
}

func TestReminderUpsert(t *testing.T) {
	store := newTestStore(t)
	habit := newTestHabit("Journal")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	if err := store.SaveReminder(models.HabitReminder{HabitID: habit.ID, Time: "08:00", Enabled: true}); err != nil {
		t.Fatalf("save reminder: %v", err)
	}
	if err := store.SaveReminder(models.HabitReminder{HabitID: habit.ID, Time: "21:30", Enabled: false}); err != nil {
		t.Fatalf("update reminder: %v", err)
	}

	r, err := store.GetReminder(habit.ID)
	if err != nil {
		t.Fatalf("get reminder: %v", err)
	}
	if r.Time != "21:30" || r.Enabled {
		t.Errorf("reminder = %+v, want 21:30 disabled", r)
	}

	all, err := store.GetAllReminders()
	if err != nil {
		t.Fatalf("get all reminders: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d reminders, want 1", len(all))
	}

	if err := store.DeleteReminder(habit.ID); err != nil {
		t.Fatalf("delete reminder: %v", err)
	}
	if _, err := store.GetReminder(habit.ID); !apperrors.IsNotFound(err) {
		t.Errorf("deleted reminder error = %v, want not found", err)
	}
}

func TestTodoLifecycle(t *testing.T) {
	store := newTestStore(t)

	todo := models.Todo{
		ID:        uuid.NewString(),
		Owner:     "tester",
		Text:      "Buy groceries",
		Priority:  constants.PriorityHigh,
		CreatedAt: time.Now(),
	}
	if err := store.AddTodo(todo); err != nil {
		t.Fatalf("add todo: %v", err)
	}

	todo.Completed = true
	if err := store.UpdateTodo(todo); err != nil {
		t.Fatalf("update todo: %v", err)
	}
	got, err := store.GetTodo(todo.ID)
	if err != nil {
		t.Fatalf("get todo: %v", err)
	}
	if !got.Completed || got.Priority != constants.PriorityHigh {
		t.Errorf("todo = %+v", got)
	}

	if err := store.DeleteTodo(todo.ID); err != nil {
		t.Fatalf("delete todo: %v", err)
	}
	visible, err := store.GetAllTodos(false)
	if err != nil {
		t.Fatalf("get todos: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("deleted todo still visible")
	}

	if err := store.RestoreTodo(todo.ID); err != nil {
		t.Fatalf("restore todo: %v", err)
	}
	if _, err := store.GetTodo(todo.ID); err != nil {
		t.Errorf("restored todo should be visible: %v", err)
	}
}

func TestExpenseQueries(t *testing.T) {
	store := newTestStore(t)

	add := func(title string, amount float64, createdAt time.Time) string {
		t.Helper()
		e := models.Expense{
			ID:        uuid.NewString(),
			Owner:     "tester",
			Title:     title,
			Amount:    amount,
			Category:  constants.DefaultExpenseCategory,
			CreatedAt: createdAt,
		}
		if err := store.AddExpense(e); err != nil {
			t.Fatalf("add expense %s: %v", title, err)
		}
		return e.ID
	}

	march := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	id := add("Coffee", 4.50, march)
	add("Rent", 1200, april)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	inMarch, err := store.GetExpensesBetween(start, end)
	if err != nil {
		t.Fatalf("get expenses between: %v", err)
	}
	if len(inMarch) != 1 || inMarch[0].Title != "Coffee" {
		t.Errorf("march expenses = %+v, want only Coffee", inMarch)
	}

	if err := store.DeleteExpense(id); err != nil {
		t.Fatalf("delete expense: %v", err)
	}
	visible, err := store.GetAllExpenses(false)
	if err != nil {
		t.Fatalf("get expenses: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Rent" {
		t.Errorf("visible expenses = %+v, want only Rent", visible)
	}

	if err := store.RestoreExpense(id); err != nil {
		t.Fatalf("restore expense: %v", err)
	}
	all, err := store.GetAllExpenses(false)
	if err != nil {
		t.Fatalf("get expenses after restore: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d expenses after restore, want 2", len(all))
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := models.Settings{
		Owner:                "tester",
		Timezone:             "Europe/Berlin",
		Currency:             "EUR",
		MonthlyBudget:        850.50,
		CompletionWindowDays: 14,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestMigrateUpToDate(t *testing.T) {
	store := newTestStore(t)

	applied, err := store.Migrate()
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0 on a fresh database", applied)
	}
}
