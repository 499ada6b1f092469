package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	var st models.Settings
	err := s.db.QueryRow(`
		SELECT owner, timezone, currency, monthly_budget, completion_window_days
		FROM settings LIMIT 1`).
		Scan(&st.Owner, &st.Timezone, &st.Currency, &st.MonthlyBudget, &st.CompletionWindowDays)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, fmt.Errorf("settings: %w", apperrors.ErrNotFound)
	}
	return st, err
}

func (s *Store) SaveSettings(st models.Settings) error {
	// Single-row table: replace wholesale.
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM settings"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO settings (owner, timezone, currency, monthly_budget, completion_window_days)
		VALUES (?, ?, ?, ?, ?)`,
		st.Owner, st.Timezone, st.Currency, st.MonthlyBudget, st.CompletionWindowDays)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return tx.Commit()
}
