package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

func (s *Store) SaveReminder(r models.HabitReminder) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_reminders (habit_id, reminder_time, enabled)
		VALUES (?, ?, ?)
		ON CONFLICT(habit_id) DO UPDATE SET reminder_time = excluded.reminder_time, enabled = excluded.enabled`,
		r.HabitID, r.Time, r.Enabled)
	if err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}
	return nil
}

func (s *Store) GetReminder(habitID string) (models.HabitReminder, error) {
	var r models.HabitReminder
	err := s.db.QueryRow(`
		SELECT habit_id, reminder_time, enabled
		FROM habit_reminders WHERE habit_id = ?`, habitID).
		Scan(&r.HabitID, &r.Time, &r.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitReminder{}, fmt.Errorf("reminder for habit %s: %w", habitID, apperrors.ErrNotFound)
	}
	return r, err
}

func (s *Store) GetAllReminders() ([]models.HabitReminder, error) {
	rows, err := s.db.Query("SELECT habit_id, reminder_time, enabled FROM habit_reminders")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.HabitReminder
	for rows.Next() {
		var r models.HabitReminder
		if err := rows.Scan(&r.HabitID, &r.Time, &r.Enabled); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *Store) DeleteReminder(habitID string) error {
	res, err := s.db.Exec("DELETE FROM habit_reminders WHERE habit_id = ?", habitID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("reminder for habit %s: %w", habitID, apperrors.ErrNotFound)
	}
	return nil
}
