// Package tui renders a read-only dashboard over habits, todos, and spending.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avwray/lifedeck/internal/analytics"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/storage"
)

type sessionState int

const (
	stateHabits sessionState = iota
	stateTodos
	stateSpending
)

// habitRow is a habit joined with the stats the dashboard shows for it.
type habitRow struct {
	habit  models.Habit
	streak int
	week   []analytics.DayStatus
}

type Model struct {
	store    storage.Provider
	now      time.Time
	state    sessionState
	keys     KeyMap
	help     help.Model
	habits   []habitRow
	todos    []models.Todo
	expenses []models.Expense
	settings models.Settings
	loadErr  error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, now time.Time) Model {
	m := Model{
		store: store,
		now:   now,
		state: stateHabits,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.reload()
	return m
}

// reload refreshes every pane's data from the store.
func (m *Model) reload() {
	m.loadErr = nil

	m.settings, _ = m.store.GetSettings()

	habits, err := m.store.GetAllHabits(false, false)
	if err != nil {
		m.loadErr = err
		return
	}
	rows := make([]habitRow, 0, len(habits))
	for _, h := range habits {
		logs, err := m.store.GetHabitLogs(h.ID)
		if err != nil {
			m.loadErr = err
			return
		}
		rows = append(rows, habitRow{
			habit:  h,
			streak: analytics.CurrentStreak(logs, m.now),
			week:   analytics.WeekOverview(logs, m.now),
		})
	}
	m.habits = rows

	todos, err := m.store.GetAllTodos(false)
	if err != nil {
		m.loadErr = err
		return
	}
	m.todos = todos

	start := time.Date(m.now.Year(), m.now.Month(), 1, 0, 0, 0, 0, m.now.Location())
	expenses, err := m.store.GetExpensesBetween(start, start.AddDate(0, 1, 0))
	if err != nil {
		m.loadErr = err
		return
	}
	m.expenses = expenses
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Refresh, m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
