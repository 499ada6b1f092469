package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`
	Edit bool `help:"Edit settings interactively."`

	Timezone             *string  `help:"IANA timezone name (e.g. Europe/Berlin)."`
	Currency             *string  `help:"Currency code for expenses (e.g. USD)."`
	MonthlyBudget        *float64 `help:"Monthly spending budget (0 disables budget tracking)."`
	CompletionWindowDays *int     `help:"Rolling window in days for the completion rate."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Owner:                  %s\n", settings.Owner)
		fmt.Printf("  Timezone:               %s\n", settings.Timezone)
		fmt.Printf("  Currency:               %s\n", settings.Currency)
		fmt.Printf("  Monthly Budget:         %.2f\n", settings.MonthlyBudget)
		fmt.Printf("  Completion Window Days: %d\n", settings.CompletionWindowDays)
		return nil
	}

	if c.Edit {
		budgetStr := strconv.FormatFloat(settings.MonthlyBudget, 'f', 2, 64)
		windowStr := strconv.Itoa(settings.CompletionWindowDays)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Timezone").
					Value(&settings.Timezone).
					Validate(func(s string) error {
						if s != "" && !utils.ValidateTimezone(s) {
							return fmt.Errorf("unknown timezone %q", s)
						}
						return nil
					}),
				huh.NewInput().
					Title("Currency").
					Value(&settings.Currency),
				huh.NewInput().
					Title("Monthly budget").
					Value(&budgetStr).
					Validate(func(s string) error {
						v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
						if err != nil {
							return err
						}
						if v < 0 {
							return fmt.Errorf("budget cannot be negative")
						}
						return nil
					}),
				huh.NewInput().
					Title("Completion window (days)").
					Value(&windowStr).
					Validate(func(s string) error {
						v, err := strconv.Atoi(strings.TrimSpace(s))
						if err != nil {
							return err
						}
						if v < 1 {
							return fmt.Errorf("window must be at least 1 day")
						}
						return nil
					}),
			),
		).WithTheme(huh.ThemeDracula())

		if err := form.Run(); err != nil {
			return err
		}

		settings.MonthlyBudget, _ = strconv.ParseFloat(strings.TrimSpace(budgetStr), 64)
		settings.CompletionWindowDays, _ = strconv.Atoi(strings.TrimSpace(windowStr))

		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if *c.Timezone != "" && !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.Currency != nil {
		settings.Currency = *c.Currency
		updated = true
	}
	if c.MonthlyBudget != nil {
		if *c.MonthlyBudget < 0 {
			return fmt.Errorf("budget cannot be negative")
		}
		settings.MonthlyBudget = *c.MonthlyBudget
		updated = true
	}
	if c.CompletionWindowDays != nil {
		if *c.CompletionWindowDays < 1 {
			return fmt.Errorf("completion window must be at least 1 day")
		}
		settings.CompletionWindowDays = *c.CompletionWindowDays
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
