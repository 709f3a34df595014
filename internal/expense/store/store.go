package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, amount, paid_amount, due_date,
// category, account_id, recurring_template_id, created_at, updated_at
func scanExpense(s scanner) (*expense.FixedExpense, error) {
	var e expense.FixedExpense

	if err := s.Scan(
		&e.ID, &e.Name, &e.Amount, &e.PaidAmount, &e.DueDate,
		&e.Category, &e.AccountID, &e.RecurringTemplateID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

const selectExpenseColumns = `
	id, name, amount, paid_amount, due_date,
	category, account_id, recurring_template_id, created_at, updated_at
`

func (s *Store) CreateExpense(ctx context.Context, e *expense.FixedExpense) error {
	query := `
		INSERT INTO fixed_expenses (name, amount, paid_amount, due_date, category, account_id, recurring_template_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.Amount,
		e.PaidAmount,
		e.DueDate,
		e.Category,
		e.AccountID,
		e.RecurringTemplateID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.FixedExpense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM fixed_expenses WHERE id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]*expense.FixedExpense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM fixed_expenses ORDER BY due_date ASC, name ASC`

	return s.queryExpenses(ctx, query)
}

func (s *Store) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*expense.FixedExpense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM fixed_expenses
		WHERE recurring_template_id = $1
		ORDER BY due_date ASC`

	return s.queryExpenses(ctx, query, templateID)
}

func (s *Store) queryExpenses(ctx context.Context, query string, args ...any) ([]*expense.FixedExpense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.FixedExpense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

// ExistsForTemplate reports whether an instance for the given template
// and due date is already persisted. The generator consults this before
// creating, which keeps generation at-most-once per cursor value even
// across a retry that interleaves with an earlier partial run.
func (s *Store) ExistsForTemplate(ctx context.Context, templateID uuid.UUID, dueDate dates.Date) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM fixed_expenses WHERE recurring_template_id = $1 AND due_date = $2
	)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, templateID, dueDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking generated instance: %w", err)
	}

	return exists, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.FixedExpense) error {
	query := `
		UPDATE fixed_expenses
		SET name = $1, amount = $2, paid_amount = $3, due_date = $4, category = $5,
			account_id = $6, recurring_template_id = $7, updated_at = NOW()
		WHERE id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Name,
		e.Amount,
		e.PaidAmount,
		e.DueDate,
		e.Category,
		e.AccountID,
		e.RecurringTemplateID,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fixed_expenses WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

// ResetPaidAmounts zeroes every paid amount; the cycle controller is
// the only caller.
func (s *Store) ResetPaidAmounts(ctx context.Context) error {
	query := `UPDATE fixed_expenses SET paid_amount = 0, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("resetting paid amounts: %w", err)
	}

	return nil
}
