package analytics

import (
	"testing"
	"time"

	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/utils"
)

// today is a fixed reference day for deterministic tests (a Friday).
var today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

// logsFor builds a log per day string, with insert timestamps at noon.
func logsFor(days ...string) []models.HabitLog {
	logs := make([]models.HabitLog, 0, len(days))
	for i, d := range days {
		t, _ := utils.ParseDay(d)
		logs = append(logs, models.HabitLog{
			ID:        d,
			HabitID:   "habit-1",
			Day:       d,
			CreatedAt: t.Add(12 * time.Hour).Add(time.Duration(i) * time.Minute),
		})
	}
	return logs
}

// daysEndingToday builds n consecutive days ending at the reference day.
func daysEndingToday(n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, utils.FormatDay(today.AddDate(0, 0, -i)))
	}
	return days
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{
			name: "empty log set",
			days: nil,
			want: 0,
		},
		{
			name: "only today",
			days: []string{"2024-03-15"},
			want: 1,
		},
		{
			name: "three consecutive days ending today",
			days: []string{"2024-03-13", "2024-03-14", "2024-03-15"},
			want: 3,
		},
		{
			name: "gap at yesterday caps streak at one",
			days: []string{"2024-03-13", "2024-03-15"},
			want: 1,
		},
		{
			name: "unbroken run ending yesterday counts zero",
			days: []string{"2024-03-12", "2024-03-13", "2024-03-14"},
			want: 0,
		},
		{
			name: "order independent",
			days: []string{"2024-03-15", "2024-03-13", "2024-03-14"},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(logsFor(tt.days...), today)
			if got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{
			name: "empty log set",
			days: nil,
			want: 0,
		},
		{
			name: "single log",
			days: []string{"2024-03-01"},
			want: 1,
		},
		{
			name: "five consecutive days",
			days: []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"},
			want: 5,
		},
		{
			name: "middle day removed splits the run",
			days: []string{"2024-03-01", "2024-03-02", "2024-03-04", "2024-03-05"},
			want: 2,
		},
		{
			name: "longer piece after the gap wins",
			days: []string{"2024-03-01", "2024-03-03", "2024-03-04", "2024-03-05"},
			want: 3,
		},
		{
			name: "month boundary is consecutive",
			days: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestStreak(logsFor(tt.days...))
			if got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreakNeverBelowCurrent(t *testing.T) {
	sets := [][]string{
		nil,
		{"2024-03-15"},
		daysEndingToday(4),
		{"2024-03-10", "2024-03-11", "2024-03-14", "2024-03-15"},
		{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-15"},
	}

	for _, days := range sets {
		logs := logsFor(days...)
		cur := CurrentStreak(logs, today)
		longest := LongestStreak(logs)
		if longest < cur {
			t.Errorf("LongestStreak() = %d < CurrentStreak() = %d for days %v", longest, cur, days)
		}
	}
}
