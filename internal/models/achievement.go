package models

import "time"

// AchievementMetadata is a snapshot of the stats that triggered an unlock.
type AchievementMetadata struct {
	Streak      int `json:"streak"`
	Consistency int `json:"consistency"`
}

// UnlockedAchievement is a persisted fact: a given achievement key has been
// earned for a given (owner, habit) pair. The triple is unique and the record
// is never updated or deleted once written.
type UnlockedAchievement struct {
	ID         string              `json:"id"`
	Owner      string              `json:"owner"`
	HabitID    string              `json:"habit_id"`
	Key        string              `json:"achievement_key"`
	UnlockedAt time.Time           `json:"unlocked_at"`
	Metadata   AchievementMetadata `json:"metadata"`
}
