package habits

import (
	"fmt"

	"github.com/avwray/lifedeck/internal/analytics"
	"github.com/avwray/lifedeck/internal/cli"
)

type HabitAchievementsCmd struct {
	Title string `arg:"" help:"Habit title."`
	All   bool   `help:"Show locked achievements too."`
}

func (c *HabitAchievementsCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	// Sync first so just-earned achievements show up.
	syncAchievements(ctx, habit)

	existing, err := ctx.Store.GetAchievements(habit.Owner, habit.ID)
	if err != nil {
		return err
	}

	unlockedAt := make(map[string]string, len(existing))
	for _, a := range existing {
		unlockedAt[a.Key] = a.UnlockedAt.Format("2006-01-02")
	}

	fmt.Printf("Achievements for %s:\n\n", habit.Title)
	shown := 0
	for _, def := range analytics.Definitions {
		when, unlocked := unlockedAt[def.Key]
		switch {
		case unlocked:
			fmt.Printf("🏆 %s: %s (unlocked %s)\n", def.Name, def.Description, when)
			shown++
		case c.All:
			fmt.Printf("🔒 %s: %s\n", def.Name, def.Description)
			shown++
		}
	}

	if shown == 0 {
		fmt.Println("No achievements unlocked yet. Keep going!")
	}
	return nil
}
