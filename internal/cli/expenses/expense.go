package expenses

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/validation"
)

type ExpenseCmd struct {
	Add     ExpenseAddCmd     `cmd:"" help:"Record a new expense."`
	List    ExpenseListCmd    `cmd:"" help:"List expenses."`
	Summary ExpenseSummaryCmd `cmd:"" help:"Show monthly spend against budget."`
	Delete  ExpenseDeleteCmd  `cmd:"" help:"Delete an expense (soft delete)."`
	Restore ExpenseRestoreCmd `cmd:"" help:"Restore a deleted expense."`
}

type ExpenseAddCmd struct {
	Title    string  `arg:"" help:"What the money was spent on."`
	Amount   float64 `arg:"" help:"Amount spent."`
	Category string  `short:"c" help:"Expense category." default:"General"`
}

func (c *ExpenseAddCmd) Run(ctx *cli.Context) error {
	if err := validation.Title(c.Title); err != nil {
		return err
	}
	if err := validation.Amount(c.Amount); err != nil {
		return err
	}

	settings := ctx.Settings()
	expense := models.Expense{
		ID:        uuid.New().String(),
		Owner:     settings.Owner,
		Title:     c.Title,
		Amount:    c.Amount,
		Category:  c.Category,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddExpense(expense); err != nil {
		return err
	}

	currency := settings.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	fmt.Printf("Recorded expense: %s (%.2f %s)\n", c.Title, c.Amount, currency)
	return nil
}

type ExpenseListCmd struct {
	Month    bool   `short:"m" help:"Only show the current month."`
	Category string `short:"c" help:"Filter by category."`
	Deleted  bool   `help:"Include deleted expenses."`
}

func (c *ExpenseListCmd) Run(ctx *cli.Context) error {
	var expenses []models.Expense
	var err error

	if c.Month {
		start, end := monthBounds(ctx.Now())
		expenses, err = ctx.Store.GetExpensesBetween(start, end)
	} else {
		expenses, err = ctx.Store.GetAllExpenses(c.Deleted)
	}
	if err != nil {
		return err
	}

	currency := ctx.Settings().Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	shown := 0
	var total float64
	for _, e := range expenses {
		if c.Category != "" && e.Category != c.Category {
			continue
		}
		suffix := ""
		if e.DeletedAt != nil {
			suffix = " [DELETED]"
		}
		fmt.Printf("%s  %8.2f %s  %-12s %s%s\n",
			e.CreatedAt.Format("2006-01-02"), e.Amount, currency, e.Category, e.Title, suffix)
		if e.DeletedAt == nil {
			total += e.Amount
		}
		shown++
	}

	if shown == 0 {
		fmt.Println("No expenses found.")
		return nil
	}

	fmt.Printf("\nTotal: %.2f %s\n", total, currency)
	return nil
}

type ExpenseSummaryCmd struct{}

func (c *ExpenseSummaryCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	start, end := monthBounds(now)

	expenses, err := ctx.Store.GetExpensesBetween(start, end)
	if err != nil {
		return err
	}

	settings := ctx.Settings()
	currency := settings.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	var total float64
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	fmt.Printf("Spending for %s %d:\n\n", now.Month(), now.Year())

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		return byCategory[categories[i]] > byCategory[categories[j]]
	})
	for _, cat := range categories {
		fmt.Printf("  %-12s %10.2f %s\n", cat, byCategory[cat], currency)
	}

	fmt.Printf("\nTotal: %.2f %s\n", total, currency)

	if settings.MonthlyBudget > 0 {
		remaining := settings.MonthlyBudget - total
		pct := total / settings.MonthlyBudget * 100
		fmt.Printf("Budget: %.2f %s (%.0f%% used)\n", settings.MonthlyBudget, currency, pct)
		if remaining < 0 {
			fmt.Printf("⚠ Over budget by %.2f %s\n", -remaining, currency)
		} else {
			fmt.Printf("Remaining: %.2f %s\n", remaining, currency)
		}
	}

	return nil
}

type ExpenseDeleteCmd struct {
	Title string `arg:"" help:"Expense title to delete (most recent match)."`
}

func (c *ExpenseDeleteCmd) Run(ctx *cli.Context) error {
	expenses, err := ctx.Store.GetAllExpenses(false)
	if err != nil {
		return err
	}

	for _, e := range expenses {
		if e.Title == c.Title {
			if err := ctx.Store.DeleteExpense(e.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted expense: %s\n", c.Title)
			return nil
		}
	}

	return fmt.Errorf("expense %q not found", c.Title)
}

type ExpenseRestoreCmd struct {
	Title string `arg:"" help:"Expense title to restore."`
}

func (c *ExpenseRestoreCmd) Run(ctx *cli.Context) error {
	expenses, err := ctx.Store.GetAllExpenses(true)
	if err != nil {
		return err
	}

	for _, e := range expenses {
		if e.Title == c.Title && e.DeletedAt != nil {
			if err := ctx.Store.RestoreExpense(e.ID); err != nil {
				return err
			}
			fmt.Printf("Restored expense: %s\n", c.Title)
			return nil
		}
	}

	return fmt.Errorf("deleted expense %q not found", c.Title)
}

// monthBounds returns the half-open [start, end) range covering t's month.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
