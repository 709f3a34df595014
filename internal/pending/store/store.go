package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/pending"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePending(ctx context.Context, t *pending.Transaction) error {
	query := `
		INSERT INTO pending_transactions (account_id, amount, description, category, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		t.AccountID,
		t.Amount,
		t.Description,
		t.Category,
		t.Date,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("creating pending transaction: %w", err)
	}

	return nil
}

func (s *Store) ListPending(ctx context.Context, accountID *uuid.UUID) ([]*pending.Transaction, error) {
	query := `
		SELECT id, account_id, amount, description, category, date
		FROM pending_transactions
	`

	var args []any

	if accountID != nil {
		query += ` WHERE account_id = $1`
		args = append(args, *accountID)
	}

	query += ` ORDER BY date ASC, description ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing pending transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*pending.Transaction

	for rows.Next() {
		var t pending.Transaction

		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.Description, &t.Category, &t.Date); err != nil {
			return nil, fmt.Errorf("scanning pending transaction: %w", err)
		}

		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending rows: %w", err)
	}

	return transactions, nil
}

func (s *Store) DeletePending(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM pending_transactions WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting pending transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return pending.ErrNotFound
	}

	return nil
}

func (s *Store) SumForAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM pending_transactions WHERE account_id = $1`

	var sum decimal.Decimal

	if err := s.db.QueryRowContext(ctx, query, accountID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("summing pending transactions: %w", err)
	}

	return sum, nil
}
