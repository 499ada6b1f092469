package habits

import (
	"fmt"

	"github.com/avwray/lifedeck/internal/analytics"
	"github.com/avwray/lifedeck/internal/cli"
)

type HabitStatsCmd struct {
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	logs, err := ctx.Store.GetHabitLogs(habit.ID)
	if err != nil {
		return err
	}

	now := ctx.Now()
	settings := ctx.Settings()
	windowDays := settings.CompletionWindowDays
	if windowDays <= 0 {
		windowDays = 30
	}

	snap := analytics.NewSnapshot(habit, logs, now)
	completionRate := analytics.CompletionRate(logs, windowDays, now)
	best, worst, _ := analytics.BestWorstDays(logs)
	trend := analytics.Trend(logs, now)

	icon := ""
	if habit.Icon != "" {
		icon = habit.Icon + " "
	}
	fmt.Printf("%s%s\n\n", icon, habit.Title)
	fmt.Printf("Current streak:   %d days\n", snap.CurrentStreak)
	fmt.Printf("Longest streak:   %d days\n", snap.LongestStreak)
	fmt.Printf("Consistency:      %d%%\n", snap.ConsistencyScore)
	fmt.Printf("Completion rate:  %d%% (last %d days)\n", completionRate, windowDays)
	fmt.Printf("Best day:         %s\n", best)
	fmt.Printf("Worst day:        %s\n", worst)
	fmt.Printf("Trend:            %s\n", trend)

	fmt.Println("\nLast 7 days:")
	for _, day := range analytics.WeekOverview(logs, now) {
		mark := "."
		if day.Completed {
			mark = "x"
		}
		fmt.Printf("  %s %s [%s]\n", day.Day, day.Date, mark)
	}

	fmt.Println()
	fmt.Println(analytics.InsightSummary(best, worst, trend, snap.ConsistencyScore))

	// Viewing stats also evaluates achievements, so unlocks never go stale.
	for _, name := range syncAchievements(ctx, habit) {
		fmt.Printf("\n🏆 Achievement unlocked: %s\n", name)
	}

	return nil
}
