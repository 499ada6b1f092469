package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/avwray/lifedeck/internal/logger"
	"github.com/avwray/lifedeck/internal/models"
)

// Snapshot is the stats bundle achievement predicates are evaluated against.
type Snapshot struct {
	CurrentStreak    int
	LongestStreak    int
	ConsistencyScore int
	Logs             []models.HabitLog
	Habit            models.Habit
}

// NewSnapshot computes a Snapshot for a habit from its full log set.
func NewSnapshot(habit models.Habit, logs []models.HabitLog, today time.Time) Snapshot {
	return Snapshot{
		CurrentStreak:    CurrentStreak(logs, today),
		LongestStreak:    LongestStreak(logs),
		ConsistencyScore: ConsistencyScore(logs, habit.CreatedAt, today),
		Logs:             logs,
		Habit:            habit,
	}
}

// Definition is a static achievement: a key, display text, and a predicate
// over a stats snapshot. Definitions are never persisted per user; only
// unlock facts are.
type Definition struct {
	Key         string
	Name        string
	Description string
	Check       func(Snapshot) bool
}

const (
	earlyBirdHour  = 7
	nightOwlHour   = 22
	hourCountNeeds = 10
)

// Definitions is the full static achievement list.
var Definitions = []Definition{
	{
		Key:         "streak_3",
		Name:        "Getting Started",
		Description: "Complete 3 days in a row",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 3 },
	},
	{
		Key:         "streak_7",
		Name:        "Week Warrior",
		Description: "Complete 7 days in a row",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 7 },
	},
	{
		Key:         "streak_30",
		Name:        "Month Master",
		Description: "Complete 30 days in a row",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 30 },
	},
	{
		Key:         "consistency_50",
		Name:        "Steady Progress",
		Description: "Achieve 50% consistency",
		Check:       func(s Snapshot) bool { return s.ConsistencyScore >= 50 },
	},
	{
		Key:         "consistency_75",
		Name:        "Highly Consistent",
		Description: "Achieve 75% consistency",
		Check:       func(s Snapshot) bool { return s.ConsistencyScore >= 75 },
	},
	{
		Key:         "early_bird",
		Name:        "Early Bird",
		Description: "Complete before 7 AM at least 10 times",
		Check: func(s Snapshot) bool {
			return countLoggedAt(s.Logs, func(h int) bool { return h < earlyBirdHour }) >= hourCountNeeds
		},
	},
	{
		Key:         "night_owl",
		Name:        "Night Owl",
		Description: "Complete after 10 PM at least 10 times",
		Check: func(s Snapshot) bool {
			return countLoggedAt(s.Logs, func(h int) bool { return h >= nightOwlHour }) >= hourCountNeeds
		},
	},
}

// DefinitionByKey looks up a static achievement definition.
func DefinitionByKey(key string) (Definition, bool) {
	for _, d := range Definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// countLoggedAt counts logs whose insert hour-of-day satisfies pred.
func countLoggedAt(logs []models.HabitLog, pred func(hour int) bool) int {
	count := 0
	for _, l := range logs {
		if pred(l.CreatedAt.Hour()) {
			count++
		}
	}
	return count
}

// NewlyUnlocked returns every definition whose key is absent from unlocked
// and whose predicate holds for snap, in definition order. Pure: it performs
// no writes and does not modify unlocked.
func NewlyUnlocked(defs []Definition, unlocked map[string]bool, snap Snapshot) []Definition {
	var newly []Definition
	for _, d := range defs {
		if !unlocked[d.Key] && d.Check(snap) {
			newly = append(newly, d)
		}
	}
	return newly
}

// AchievementStore persists unlock facts. The store must enforce uniqueness
// of (owner, habit, key) so concurrent unlock attempts stay safe.
type AchievementStore interface {
	AddAchievement(models.UnlockedAchievement) error
}

// SyncAchievements persists an unlock record for every achievement that newly
// qualifies, and returns the keys that were persisted. Each insert is
// independent: a failure is logged and skipped without blocking the rest, and
// only confirmed inserts are added to unlocked (the in-pass set is not a
// cross-call cache). Safe to call repeatedly; with an up-to-date unlocked set
// it performs no writes.
func SyncAchievements(store AchievementStore, unlocked map[string]bool, snap Snapshot, now time.Time) []string {
	var persisted []string
	for _, d := range NewlyUnlocked(Definitions, unlocked, snap) {
		rec := models.UnlockedAchievement{
			ID:         uuid.New().String(),
			Owner:      snap.Habit.Owner,
			HabitID:    snap.Habit.ID,
			Key:        d.Key,
			UnlockedAt: now,
			Metadata: models.AchievementMetadata{
				Streak:      snap.CurrentStreak,
				Consistency: snap.ConsistencyScore,
			},
		}
		if err := store.AddAchievement(rec); err != nil {
			logger.Error("Failed to persist achievement unlock",
				"habit", snap.Habit.ID, "key", d.Key, "error", err)
			continue
		}
		unlocked[d.Key] = true
		persisted = append(persisted, d.Key)
	}
	return persisted
}
