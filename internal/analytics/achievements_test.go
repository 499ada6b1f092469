package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/utils"
)

// mockAchievementStore records inserts and can fail selected keys.
type mockAchievementStore struct {
	inserted []models.UnlockedAchievement
	failKeys map[string]bool
}

func (m *mockAchievementStore) AddAchievement(a models.UnlockedAchievement) error {
	if m.failKeys[a.Key] {
		return errors.New("insert failed")
	}
	m.inserted = append(m.inserted, a)
	return nil
}

func insertedKeys(m *mockAchievementStore) []string {
	keys := make([]string, 0, len(m.inserted))
	for _, a := range m.inserted {
		keys = append(keys, a.Key)
	}
	return keys
}

func testHabit() models.Habit {
	return models.Habit{
		ID:        "habit-1",
		Owner:     "avery",
		Title:     "Read",
		CreatedAt: today.AddDate(0, 0, -40),
	}
}

func TestStreakAchievementBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		key    string
		want   bool
	}{
		{name: "streak_3 below threshold", streak: 2, key: "streak_3", want: false},
		{name: "streak_3 at threshold", streak: 3, key: "streak_3", want: true},
		{name: "streak_7 below threshold", streak: 6, key: "streak_7", want: false},
		{name: "streak_7 at threshold", streak: 7, key: "streak_7", want: true},
		{name: "streak_30 at threshold", streak: 30, key: "streak_30", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := DefinitionByKey(tt.key)
			if !ok {
				t.Fatalf("no definition for %q", tt.key)
			}
			got := def.Check(Snapshot{CurrentStreak: tt.streak})
			if got != tt.want {
				t.Errorf("Check(streak=%d) = %v, want %v", tt.streak, got, tt.want)
			}
		})
	}
}

func TestConsistencyAchievementBoundaries(t *testing.T) {
	c50, _ := DefinitionByKey("consistency_50")
	c75, _ := DefinitionByKey("consistency_75")

	if c50.Check(Snapshot{ConsistencyScore: 49}) {
		t.Error("consistency_50 unlocked at 49")
	}
	if !c50.Check(Snapshot{ConsistencyScore: 50}) {
		t.Error("consistency_50 not unlocked at 50")
	}
	if !c75.Check(Snapshot{ConsistencyScore: 75}) {
		t.Error("consistency_75 not unlocked at 75")
	}
}

func TestHourAchievements(t *testing.T) {
	day, _ := utils.ParseDay("2024-03-01")

	hourLogs := func(hour, n int) []models.HabitLog {
		logs := make([]models.HabitLog, 0, n)
		for i := 0; i < n; i++ {
			logs = append(logs, models.HabitLog{
				Day:       utils.FormatDay(day.AddDate(0, 0, i)),
				CreatedAt: day.AddDate(0, 0, i).Add(time.Duration(hour) * time.Hour),
			})
		}
		return logs
	}

	earlyBird, _ := DefinitionByKey("early_bird")
	nightOwl, _ := DefinitionByKey("night_owl")

	if earlyBird.Check(Snapshot{Logs: hourLogs(6, 9)}) {
		t.Error("early_bird unlocked with only 9 early logs")
	}
	if !earlyBird.Check(Snapshot{Logs: hourLogs(6, 10)}) {
		t.Error("early_bird not unlocked with 10 logs before 7 AM")
	}
	if earlyBird.Check(Snapshot{Logs: hourLogs(7, 10)}) {
		t.Error("early_bird unlocked with logs at exactly 7 AM")
	}
	if !nightOwl.Check(Snapshot{Logs: hourLogs(22, 10)}) {
		t.Error("night_owl not unlocked with 10 logs at 10 PM")
	}
	if nightOwl.Check(Snapshot{Logs: hourLogs(21, 10)}) {
		t.Error("night_owl unlocked with logs before 10 PM")
	}
}

func TestNewlyUnlockedSkipsAlreadyUnlocked(t *testing.T) {
	snap := Snapshot{CurrentStreak: 10, ConsistencyScore: 60}
	unlocked := map[string]bool{"streak_3": true, "streak_7": true}

	newly := NewlyUnlocked(Definitions, unlocked, snap)

	keys := make([]string, 0, len(newly))
	for _, d := range newly {
		keys = append(keys, d.Key)
	}
	want := []string{"consistency_50"}
	if len(keys) != len(want) || keys[0] != want[0] {
		t.Errorf("NewlyUnlocked() keys = %v, want %v", keys, want)
	}
}

func TestSyncAchievementsPersistsOnce(t *testing.T) {
	habit := testHabit()
	logs := logsFor(daysEndingToday(7)...)
	snap := NewSnapshot(habit, logs, today)

	store := &mockAchievementStore{}
	unlocked := map[string]bool{}

	first := SyncAchievements(store, unlocked, snap, today)
	if len(first) == 0 {
		t.Fatal("expected unlocks on first pass")
	}
	if !unlocked["streak_7"] {
		t.Error("streak_7 not marked unlocked after sync")
	}

	// Re-running with the updated set and a higher streak must not
	// re-insert anything already persisted.
	snap.CurrentStreak = 10
	inserts := len(store.inserted)
	second := SyncAchievements(store, unlocked, snap, today)
	if len(second) != 0 {
		t.Errorf("second pass persisted %v, want none", second)
	}
	if len(store.inserted) != inserts {
		t.Errorf("second pass inserted %d records, want 0", len(store.inserted)-inserts)
	}
}

func TestSyncAchievementsMetadata(t *testing.T) {
	habit := testHabit()
	snap := Snapshot{CurrentStreak: 7, ConsistencyScore: 55, Habit: habit}

	store := &mockAchievementStore{}
	SyncAchievements(store, map[string]bool{}, snap, today)

	if len(store.inserted) == 0 {
		t.Fatal("no records inserted")
	}
	for _, rec := range store.inserted {
		if rec.Owner != habit.Owner || rec.HabitID != habit.ID {
			t.Errorf("record %q owner/habit = %s/%s, want %s/%s",
				rec.Key, rec.Owner, rec.HabitID, habit.Owner, habit.ID)
		}
		if rec.Metadata.Streak != 7 || rec.Metadata.Consistency != 55 {
			t.Errorf("record %q metadata = %+v, want streak 7 consistency 55", rec.Key, rec.Metadata)
		}
		if rec.ID == "" || !rec.UnlockedAt.Equal(today) {
			t.Errorf("record %q missing id or timestamp", rec.Key)
		}
	}
}

func TestSyncAchievementsFailureIsolation(t *testing.T) {
	habit := testHabit()
	snap := Snapshot{CurrentStreak: 7, ConsistencyScore: 55, Habit: habit}

	store := &mockAchievementStore{failKeys: map[string]bool{"streak_3": true}}
	unlocked := map[string]bool{}

	persisted := SyncAchievements(store, unlocked, snap, today)

	// streak_7 and consistency_50 still qualify and must persist despite
	// the streak_3 insert failing.
	got := map[string]bool{}
	for _, k := range persisted {
		got[k] = true
	}
	if !got["streak_7"] || !got["consistency_50"] {
		t.Errorf("persisted = %v, want streak_7 and consistency_50", persisted)
	}
	if got["streak_3"] || unlocked["streak_3"] {
		t.Error("failed streak_3 insert reported as unlocked")
	}
	for _, k := range insertedKeys(store) {
		if k == "streak_3" {
			t.Error("streak_3 reached the store despite forced failure")
		}
	}
}
