package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avwray/lifedeck/internal/analytics"
	"github.com/avwray/lifedeck/internal/cli"
)

var (
	calendarDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	calendarTitleStyle = lipgloss.NewStyle().Bold(true)
)

type HabitCalendarCmd struct {
	Title string `arg:"" help:"Habit title."`
	Month int    `help:"Month (1-12, default: current)."`
	Year  int    `help:"Year (default: current)."`
}

func (c *HabitCalendarCmd) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *HabitCalendarCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	logs, err := ctx.Store.GetHabitLogs(habit.ID)
	if err != nil {
		return err
	}

	now := ctx.Now()
	month := time.Month(c.Month)
	if c.Month == 0 {
		month = now.Month()
	}
	year := c.Year
	if year == 0 {
		year = now.Year()
	}

	grid := analytics.MonthGrid(logs, month, year)

	fmt.Println(calendarTitleStyle.Render(fmt.Sprintf("%s, %s %d", habit.Title, month, year)))
	fmt.Println(" Mo  Tu  We  Th  Fr  Sa  Su")

	var row strings.Builder
	for i, cell := range grid {
		if !cell.InMonth {
			row.WriteString("    ")
		} else if cell.Completed {
			row.WriteString(calendarDoneStyle.Render(fmt.Sprintf("%3dx", cell.Day)))
		} else {
			row.WriteString(fmt.Sprintf("%3d ", cell.Day))
		}
		if (i+1)%7 == 0 {
			fmt.Println(row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		fmt.Println(row.String())
	}

	return nil
}
