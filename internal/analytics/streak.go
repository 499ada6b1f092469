// Package analytics computes habit statistics over an in-memory snapshot of
// completion logs: streaks, consistency and trend scoring, calendar grids,
// achievement evaluation, and insight summaries. Every function is pure and
// takes the reference day explicitly instead of reading the system clock.
package analytics

import (
	"slices"
	"time"

	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/utils"
)

// daySet returns the distinct log days keyed by their YYYY-MM-DD string.
func daySet(logs []models.HabitLog) map[string]struct{} {
	days := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		days[l.Day] = struct{}{}
	}
	return days
}

// sortedDays returns the distinct log days as ascending epoch-day numbers.
// Logs with unparseable days are skipped.
func sortedDays(logs []models.HabitLog) []int64 {
	const daySec int64 = 24 * 60 * 60

	uniq := make(map[int64]struct{}, len(logs))
	for _, l := range logs {
		t, err := utils.ParseDay(l.Day)
		if err != nil {
			continue
		}
		uniq[t.Unix()/daySec] = struct{}{}
	}

	days := make([]int64, 0, len(uniq))
	for d := range uniq {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// CurrentStreak returns the length of the run of consecutive logged days
// ending at today. The run must include today itself: an unbroken run that
// stops at yesterday counts as 0.
func CurrentStreak(logs []models.HabitLog, today time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	days := daySet(logs)
	streak := 0
	cur := utils.Midnight(today)
	for {
		if _, ok := days[utils.FormatDay(cur)]; !ok {
			break
		}
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive logged days anywhere
// in the log history. It does not depend on today.
func LongestStreak(logs []models.HabitLog) int {
	days := sortedDays(logs)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}
