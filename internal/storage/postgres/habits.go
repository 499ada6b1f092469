package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

const habitColumns = "id, owner, title, frequency, icon, created_at, archived_at, deleted_at"

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var archivedAt, deletedAt sql.NullString

	err := row.Scan(&h.ID, &h.Owner, &h.Title, &h.Frequency, &h.Icon, &createdAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	if h.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return models.Habit{}, err
	}
	if h.ArchivedAt, err = parseNullTimestamp(archivedAt, "archived_at"); err != nil {
		return models.Habit{}, err
	}
	if h.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		habit.ID, habit.Owner, habit.Title, string(habit.Frequency), habit.Icon,
		habit.CreatedAt.Format(time.RFC3339),
		formatNullTimestamp(habit.ArchivedAt), formatNullTimestamp(habit.DeletedAt))
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = $1 AND deleted_at IS NULL`, id)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}
	return h, err
}

func (s *Store) GetHabitByTitle(title string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE title = $1 AND deleted_at IS NULL`, title)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %q: %w", title, apperrors.ErrNotFound)
	}
	return h, err
}

func (s *Store) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits WHERE TRUE"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		UPDATE habits
		SET owner = $1, title = $2, frequency = $3, icon = $4, archived_at = $5, deleted_at = $6
		WHERE id = $7`,
		habit.Owner, habit.Title, string(habit.Frequency), habit.Icon,
		formatNullTimestamp(habit.ArchivedAt), formatNullTimestamp(habit.DeletedAt), habit.ID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return nil
}

func (s *Store) setHabitTimestamp(id, column string, value sql.NullString) error {
	res, err := s.db.Exec("UPDATE habits SET "+column+" = $1 WHERE id = $2", value, id)
	if err != nil {
		return fmt.Errorf("failed to update habit %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *Store) ArchiveHabit(id string) error {
	return s.setHabitTimestamp(id, "archived_at", nowNull())
}

func (s *Store) UnarchiveHabit(id string) error {
	return s.setHabitTimestamp(id, "archived_at", sql.NullString{})
}

func (s *Store) DeleteHabit(id string) error {
	return s.setHabitTimestamp(id, "deleted_at", nowNull())
}

func (s *Store) RestoreHabit(id string) error {
	return s.setHabitTimestamp(id, "deleted_at", sql.NullString{})
}
