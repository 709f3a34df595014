package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/recurring"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, base_amount, frequency, interval_value,
// start_date, next_due_date, category, account_id, notes, is_active,
// is_variable_amount, created_at, updated_at
func scanTemplate(s scanner) (*recurring.Template, error) {
	var t recurring.Template

	var freq string

	if err := s.Scan(
		&t.ID, &t.Name, &t.BaseAmount, &freq, &t.IntervalValue,
		&t.StartDate, &t.NextDueDate, &t.Category, &t.AccountID, &t.Notes,
		&t.IsActive, &t.IsVariableAmount, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Frequency = recurring.Frequency(freq)

	return &t, nil
}

const selectTemplateColumns = `
	id, name, base_amount, frequency, interval_value,
	start_date, next_due_date, category, account_id, notes,
	is_active, is_variable_amount, created_at, updated_at
`

func (s *Store) CreateTemplate(ctx context.Context, t *recurring.Template) error {
	query := `
		INSERT INTO recurring_templates
			(name, base_amount, frequency, interval_value, start_date, next_due_date,
			 category, account_id, notes, is_active, is_variable_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.Name,
		t.BaseAmount,
		t.Frequency,
		t.IntervalValue,
		t.StartDate,
		t.NextDueDate,
		t.Category,
		t.AccountID,
		t.Notes,
		t.IsActive,
		t.IsVariableAmount,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating template: %w", err)
	}

	return nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + ` FROM recurring_templates WHERE id = $1`

	t, err := scanTemplate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting template: %w", err)
	}

	return t, nil
}

func (s *Store) ListTemplates(ctx context.Context, activeOnly bool) ([]*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + ` FROM recurring_templates`
	if activeOnly {
		query += ` WHERE is_active`
	}

	query += ` ORDER BY next_due_date ASC, name ASC`

	return s.queryTemplates(ctx, query)
}

func (s *Store) ListDue(ctx context.Context, today dates.Date) ([]*recurring.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM recurring_templates
		WHERE is_active AND next_due_date <= $1
		ORDER BY next_due_date ASC, name ASC`

	return s.queryTemplates(ctx, query, today)
}

func (s *Store) queryTemplates(ctx context.Context, query string, args ...any) ([]*recurring.Template, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*recurring.Template

	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}

		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}

	return templates, nil
}

func (s *Store) UpdateTemplate(ctx context.Context, t *recurring.Template) error {
	query := `
		UPDATE recurring_templates
		SET name = $1, base_amount = $2, frequency = $3, interval_value = $4,
			start_date = $5, next_due_date = $6, category = $7, account_id = $8,
			notes = $9, is_active = $10, is_variable_amount = $11, updated_at = NOW()
		WHERE id = $12
	`

	res, err := s.db.ExecContext(ctx, query,
		t.Name,
		t.BaseAmount,
		t.Frequency,
		t.IntervalValue,
		t.StartDate,
		t.NextDueDate,
		t.Category,
		t.AccountID,
		t.Notes,
		t.IsActive,
		t.IsVariableAmount,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return recurring.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM recurring_templates WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return recurring.ErrNotFound
	}

	return nil
}
