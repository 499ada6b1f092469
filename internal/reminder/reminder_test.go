package reminder

import (
	"testing"
	"time"

	"github.com/avwray/lifedeck/internal/models"
)

func TestDue(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		reminder       models.HabitReminder
		completedToday bool
		want           bool
		wantErr        bool
	}{
		{
			name:     "time has passed",
			reminder: models.HabitReminder{HabitID: "h1", Time: "09:00", Enabled: true},
			want:     true,
		},
		{
			name:     "exactly at reminder time",
			reminder: models.HabitReminder{HabitID: "h1", Time: "09:30", Enabled: true},
			want:     true,
		},
		{
			name:     "time not yet reached",
			reminder: models.HabitReminder{HabitID: "h1", Time: "10:00", Enabled: true},
			want:     false,
		},
		{
			name:           "already completed today",
			reminder:       models.HabitReminder{HabitID: "h1", Time: "09:00", Enabled: true},
			completedToday: true,
			want:           false,
		},
		{
			name:     "disabled reminder",
			reminder: models.HabitReminder{HabitID: "h1", Time: "09:00", Enabled: false},
			want:     false,
		},
		{
			name:     "invalid time string",
			reminder: models.HabitReminder{HabitID: "h1", Time: "half past nine", Enabled: true},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Due(tt.reminder, tt.completedToday, now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Due() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	withIcon := models.Habit{Title: "Meditate", Icon: "🧘"}
	if got := Message(withIcon); got != "🧘 Time for \"Meditate\"" {
		t.Errorf("unexpected message: %q", got)
	}

	noIcon := models.Habit{Title: "Read"}
	if got := Message(noIcon); got != "Time for \"Read\"" {
		t.Errorf("unexpected message: %q", got)
	}
}
