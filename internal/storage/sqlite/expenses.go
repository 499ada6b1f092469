package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/avwray/lifedeck/internal/errors"
	"github.com/avwray/lifedeck/internal/models"
)

const expenseColumns = "id, owner, title, amount, category, created_at, deleted_at"

func scanExpense(row interface{ Scan(...any) error }) (models.Expense, error) {
	var e models.Expense
	var createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&e.ID, &e.Owner, &e.Title, &e.Amount, &e.Category, &createdAt, &deletedAt)
	if err != nil {
		return models.Expense{}, err
	}
	if e.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return models.Expense{}, err
	}
	if e.DeletedAt, err = parseNullTimestamp(deletedAt, "deleted_at"); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

func (s *Store) AddExpense(expense models.Expense) error {
	_, err := s.db.Exec(`
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Owner, expense.Title, expense.Amount, expense.Category,
		expense.CreatedAt.Format(time.RFC3339), formatNullTimestamp(expense.DeletedAt))
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}
	return nil
}

func (s *Store) GetExpense(id string) (models.Expense, error) {
	row := s.db.QueryRow(`
		SELECT `+expenseColumns+`
		FROM expenses WHERE id = ? AND deleted_at IS NULL`, id)

	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, fmt.Errorf("expense %s: %w", id, apperrors.ErrNotFound)
	}
	return e, err
}

func (s *Store) GetAllExpenses(includeDeleted bool) ([]models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expenses"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at DESC"

	return s.queryExpenses(query)
}

func (s *Store) GetExpensesBetween(start, end time.Time) ([]models.Expense, error) {
	return s.queryExpenses(`
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE deleted_at IS NULL AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC`,
		start.Format(time.RFC3339), end.Format(time.RFC3339))
}

func (s *Store) queryExpenses(query string, args ...any) ([]models.Expense, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) setExpenseDeleted(id string, value sql.NullString) error {
	res, err := s.db.Exec("UPDATE expenses SET deleted_at = ? WHERE id = ?", value, id)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteExpense(id string) error {
	return s.setExpenseDeleted(id, nowNull())
}

func (s *Store) RestoreExpense(id string) error {
	return s.setExpenseDeleted(id, sql.NullString{})
}
