package models

import (
	"time"

	"github.com/avwray/lifedeck/internal/constants"
)

type Habit struct {
	ID         string              `json:"id"`
	Owner      string              `json:"owner"`
	Title      string              `json:"title"`
	Frequency  constants.Frequency `json:"frequency"`
	Icon       string              `json:"icon,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	ArchivedAt *time.Time          `json:"archived_at,omitempty"`
	DeletedAt  *time.Time          `json:"deleted_at,omitempty"`
}

// HabitLog records that a habit was completed on a calendar day.
// At most one log exists per (habit, day); the store enforces this with a
// unique index and callers pre-check before inserting.
type HabitLog struct {
	ID      string `json:"id"`
	HabitID string `json:"habit_id"`
	// Day is the completion date in YYYY-MM-DD format.
	Day       string    `json:"day"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitReminder is a per-habit daily reminder time.
type HabitReminder struct {
	HabitID string `json:"habit_id"`
	// Time is the reminder time of day in HH:MM format.
	Time    string `json:"time"`
	Enabled bool   `json:"enabled"`
}
