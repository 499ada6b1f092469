package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

const habitLogColumns = "id, habit_id, day, note, created_at"

func scanHabitLog(row interface{ Scan(...any) error }) (models.HabitLog, error) {
	var l models.HabitLog
	var createdAt string

	err := row.Scan(&l.ID, &l.HabitID, &l.Day, &l.Note, &createdAt)
	if err != nil {
		return models.HabitLog{}, err
	}
	if l.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}

func (s *Store) AddHabitLog(log models.HabitLog) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_logs (`+habitLogColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		log.ID, log.HabitID, log.Day, log.Note, log.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateLog
		}
		return fmt.Errorf("failed to add habit log: %w", err)
	}
	return nil
}

func (s *Store) GetHabitLog(habitID, day string) (models.HabitLog, error) {
	row := s.db.QueryRow(`
		SELECT `+habitLogColumns+`
		FROM habit_logs WHERE habit_id = $1 AND day = $2`, habitID, day)

	l, err := scanHabitLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitLog{}, fmt.Errorf("log for habit %s on %s: %w", habitID, day, apperrors.ErrNotFound)
	}
	return l, err
}

func (s *Store) queryHabitLogs(query string, args ...any) ([]models.HabitLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanHabitLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) GetHabitLogs(habitID string) ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT `+habitLogColumns+`
		FROM habit_logs WHERE habit_id = $1 ORDER BY day`, habitID)
}

func (s *Store) GetHabitLogsForDay(day string) ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT `+habitLogColumns+`
		FROM habit_logs WHERE day = $1 ORDER BY habit_id`, day)
}

func (s *Store) GetAllHabitLogs() ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT ` + habitLogColumns + `
		FROM habit_logs ORDER BY habit_id, day`)
}

func (s *Store) DeleteHabitLog(id string) error {
	res, err := s.db.Exec("DELETE FROM habit_logs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit log %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
