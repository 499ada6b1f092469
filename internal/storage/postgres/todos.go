package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

const todoColumns = "id, owner, text, priority, completed, created_at, deleted_at"

func scanTodo(row interface{ Scan(...any) error }) (models.Todo, error) {
	var t models.Todo
	var createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&t.ID, &t.Owner, &t.Text, &t.Priority, &t.Completed, &createdAt, &deletedAt)
	if err != nil {
		return models.Todo{}, err
	}
	if t.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return models.Todo{}, err
	}
	if t.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

func (s *Store) AddTodo(todo models.Todo) error {
	_, err := s.db.Exec(`
		INSERT INTO todos (`+todoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		todo.ID, todo.Owner, todo.Text, string(todo.Priority), todo.Completed,
		todo.CreatedAt.Format(time.RFC3339), formatNullTimestamp(todo.DeletedAt))
	if err != nil {
		return fmt.Errorf("failed to add todo: %w", err)
	}
	return nil
}

func (s *Store) GetTodo(id string) (models.Todo, error) {
	row := s.db.QueryRow(`
		SELECT `+todoColumns+`
		FROM todos WHERE id = $1 AND deleted_at IS NULL`, id)

	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, fmt.Errorf("todo %s: %w", id, apperrors.ErrNotFound)
	}
	return t, err
}

func (s *Store) GetAllTodos(includeDeleted bool) ([]models.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *Store) UpdateTodo(todo models.Todo) error {
	_, err := s.db.Exec(`
		UPDATE todos
		SET text = $1, priority = $2, completed = $3, deleted_at = $4
		WHERE id = $5`,
		todo.Text, string(todo.Priority), todo.Completed,
		formatNullTimestamp(todo.DeletedAt), todo.ID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return nil
}

func (s *Store) setTodoDeleted(id string, value sql.NullString) error {
	res, err := s.db.Exec("UPDATE todos SET deleted_at = $1 WHERE id = $2", value, id)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("todo %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteTodo(id string) error {
	return s.setTodoDeleted(id, nowNull())
}

func (s *Store) RestoreTodo(id string) error {
	return s.setTodoDeleted(id, sql.NullString{})
}
