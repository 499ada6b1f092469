package analytics

import (
	"math"
	"time"

	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/utils"
)

// TrendDirection compares recent habit activity against the prior week.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendSame TrendDirection = "same"
)

// NoData is reported for best/worst weekday when there are no logs to rank.
const NoData = "N/A"

// ConsistencyScore is the completions-to-elapsed-days ratio since the habit
// was created, as a rounded percentage. A habit created today scores 0; the
// one-log-per-day invariant bounds the score at 100 once a day has elapsed.
func ConsistencyScore(logs []models.HabitLog, createdAt, today time.Time) int {
	daysSince := utils.DaysBetween(createdAt, today)
	if daysSince <= 0 {
		return 0
	}
	return int(math.Round(float64(len(logs)) / float64(daysSince) * 100))
}

// CompletionRate is the share of the trailing window that has a log, as a
// rounded percentage. The window covers the windowDays days ending at today.
func CompletionRate(logs []models.HabitLog, windowDays int, today time.Time) int {
	if windowDays <= 0 {
		return 0
	}
	count := countInWindow(logs, today, 0, windowDays)
	return int(math.Round(float64(count) / float64(windowDays) * 100))
}

// Trend compares the log count of the most recent 7 days against the 7 days
// before that.
func Trend(logs []models.HabitLog, today time.Time) TrendDirection {
	recent := countInWindow(logs, today, 0, 7)
	prior := countInWindow(logs, today, 7, 14)

	switch {
	case recent > prior:
		return TrendUp
	case recent < prior:
		return TrendDown
	default:
		return TrendSame
	}
}

// countInWindow counts logs whose day falls minAgo..maxAgo-1 days before today.
func countInWindow(logs []models.HabitLog, today time.Time, minAgo, maxAgo int) int {
	count := 0
	for _, l := range logs {
		t, err := utils.ParseDay(l.Day)
		if err != nil {
			continue
		}
		ago := utils.DaysBetween(t, today)
		if ago >= minAgo && ago < maxAgo {
			count++
		}
	}
	return count
}

// BestWorstDays ranks weekdays by log count. Best is the weekday with the
// most logs (first encountered wins ties, Sunday first). Worst is the weekday
// with the fewest non-zero logs strictly below the best; weekdays never
// logged are not candidates, and when everything ties, worst equals best.
// With no logs at all, both are NoData.
func BestWorstDays(logs []models.HabitLog) (best, worst string, counts [7]int) {
	if len(logs) == 0 {
		return NoData, NoData, counts
	}

	for _, l := range logs {
		t, err := utils.ParseDay(l.Day)
		if err != nil {
			continue
		}
		counts[int(t.Weekday())]++
	}

	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}
	if maxCount == 0 {
		return NoData, NoData, counts
	}

	minCount := 0
	for _, c := range counts {
		if c > 0 && (minCount == 0 || c < minCount) {
			minCount = c
		}
	}

	for i, c := range counts {
		if c == maxCount {
			best = time.Weekday(i).String()
			break
		}
	}

	worst = best
	if minCount > 0 && minCount < maxCount {
		for i, c := range counts {
			if c == minCount {
				worst = time.Weekday(i).String()
				break
			}
		}
	}

	return best, worst, counts
}
