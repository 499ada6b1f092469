package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avwray/lifedeck/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loadErr != nil {
		return docStyle.Render(dangerStyle.Render(fmt.Sprintf("Failed to load data: %v", m.loadErr)))
	}

	var content string
	switch m.state {
	case stateHabits:
		content = m.viewHabits()
	case stateTodos:
		content = m.viewTodos()
	case stateSpending:
		content = m.viewSpending()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{"Habits", "Todos", "Spending"}
	for i, title := range titles {
		if m.state == sessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("No habits yet. Add one with 'lifedeck habit add'.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Habits for %s", m.now.Format("2006-01-02"))))
	b.WriteString("\n\n")

	for _, row := range m.habits {
		icon := ""
		if row.habit.Icon != "" {
			icon = row.habit.Icon + " "
		}

		var week strings.Builder
		completedToday := false
		for i, day := range row.week {
			if day.Completed {
				week.WriteString(doneStyle.Render("■"))
				if i == len(row.week)-1 {
					completedToday = true
				}
			} else {
				week.WriteString(mutedStyle.Render("·"))
			}
			week.WriteString(" ")
		}

		mark := "[ ]"
		if completedToday {
			mark = doneStyle.Render("[x]")
		}

		b.WriteString(fmt.Sprintf("%s %s%-20s 🔥 %-3d %s\n",
			mark, icon, row.habit.Title, row.streak, week.String()))
	}

	return b.String()
}

func (m Model) viewTodos() string {
	open := 0
	for _, t := range m.todos {
		if !t.Completed {
			open++
		}
	}

	if len(m.todos) == 0 {
		return mutedStyle.Render("No todos. Add one with 'lifedeck todo add'.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Todos (%d open)", open)))
	b.WriteString("\n\n")

	for _, t := range m.todos {
		mark := "[ ]"
		text := t.Text
		if t.Completed {
			mark = doneStyle.Render("[x]")
			text = mutedStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s (%s) %s\n", mark, strings.ToLower(string(t.Priority)), text))
	}

	return b.String()
}

func (m Model) viewSpending() string {
	currency := m.settings.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	var total float64
	byCategory := make(map[string]float64)
	for _, e := range m.expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Spending for %s %d", m.now.Month(), m.now.Year())))
	b.WriteString("\n\n")

	if len(m.expenses) == 0 {
		b.WriteString(mutedStyle.Render("No expenses recorded this month."))
		return b.String()
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		b.WriteString(fmt.Sprintf("  %-14s %10.2f %s\n", cat, byCategory[cat], currency))
	}

	b.WriteString(fmt.Sprintf("\nTotal: %.2f %s\n", total, currency))

	if m.settings.MonthlyBudget > 0 {
		pct := total / m.settings.MonthlyBudget * 100
		line := fmt.Sprintf("Budget: %.2f %s (%.0f%% used)", m.settings.MonthlyBudget, currency, pct)
		switch {
		case total > m.settings.MonthlyBudget:
			b.WriteString(dangerStyle.Render(line))
		case pct >= 80:
			b.WriteString(warningStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
