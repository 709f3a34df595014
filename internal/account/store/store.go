package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/account"
	"github.com/MrJamesThe3rd/payday/internal/dates"
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

const selectAccountColumns = `
	id, name, type, current_balance, is_default,
	credit_limit, interest_rate, minimum_payment, due_date, statement_closing_date,
	created_at, updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var (
		accountType    string
		creditLimit    decimal.NullDecimal
		interestRate   decimal.NullDecimal
		minimumPayment decimal.NullDecimal
		dueDate        sql.Null[dates.Date]
		closingDate    sql.Null[dates.Date]
	)

	if err := s.Scan(
		&a.ID, &a.Name, &accountType, &a.CurrentBalance, &a.IsDefault,
		&creditLimit, &interestRate, &minimumPayment, &dueDate, &closingDate,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(accountType)

	if creditLimit.Valid || interestRate.Valid || minimumPayment.Valid || dueDate.Valid || closingDate.Valid {
		cc := &account.CreditCardDetails{}

		if creditLimit.Valid {
			cc.CreditLimit = &creditLimit.Decimal
		}

		if interestRate.Valid {
			cc.InterestRate = &interestRate.Decimal
		}

		if minimumPayment.Valid {
			cc.MinimumPayment = &minimumPayment.Decimal
		}

		if dueDate.Valid {
			cc.DueDate = &dueDate.V
		}

		if closingDate.Valid {
			cc.StatementClosingDate = &closingDate.V
		}

		a.CreditCard = cc
	}

	return &a, nil
}

// Credit card columns are split out so non-card accounts insert NULLs.
func creditCardArgs(a *account.Account) (limit, rate, minimum decimal.NullDecimal, due, closing sql.Null[dates.Date]) {
	cc := a.CreditCard
	if cc == nil {
		return
	}

	if cc.CreditLimit != nil {
		limit = decimal.NullDecimal{Decimal: *cc.CreditLimit, Valid: true}
	}

	if cc.InterestRate != nil {
		rate = decimal.NullDecimal{Decimal: *cc.InterestRate, Valid: true}
	}

	if cc.MinimumPayment != nil {
		minimum = decimal.NullDecimal{Decimal: *cc.MinimumPayment, Valid: true}
	}

	if cc.DueDate != nil {
		due = sql.Null[dates.Date]{V: *cc.DueDate, Valid: true}
	}

	if cc.StatementClosingDate != nil {
		closing = sql.Null[dates.Date]{V: *cc.StatementClosingDate, Valid: true}
	}

	return
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts
			(name, type, current_balance, is_default,
			 credit_limit, interest_rate, minimum_payment, due_date, statement_closing_date,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	limit, rate, minimum, due, closing := creditCardArgs(a)

	err := s.db.QueryRowContext(ctx, query,
		a.Name,
		a.Type,
		a.CurrentBalance,
		a.IsDefault,
		limit,
		rate,
		minimum,
		due,
		closing,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	// Oldest first; the backfill picks the first row as default.
	query := `SELECT ` + selectAccountColumns + ` FROM accounts ORDER BY created_at ASC, name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, current_balance = $3, is_default = $4,
			credit_limit = $5, interest_rate = $6, minimum_payment = $7,
			due_date = $8, statement_closing_date = $9, updated_at = NOW()
		WHERE id = $10
	`

	limit, rate, minimum, due, closing := creditCardArgs(a)

	res, err := s.db.ExecContext(ctx, query,
		a.Name,
		a.Type,
		a.CurrentBalance,
		a.IsDefault,
		limit,
		rate,
		minimum,
		due,
		closing,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

// SetDefaultAccount clears and re-marks the default flag in one
// transaction so there is never zero or two defaults mid-change.
func (s *Store) SetDefaultAccount(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET is_default = FALSE WHERE is_default`); err != nil {
		return fmt.Errorf("clearing default account: %w", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE accounts SET is_default = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marking default account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default change: %w", err)
	}

	return nil
}

func (s *Store) GetDefaultAccount(ctx context.Context) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE is_default LIMIT 1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting default account: %w", err)
	}

	return a, nil
}

func (s *Store) AccountExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`

	var exists bool

	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking account: %w", err)
	}

	return exists, nil
}

func (s *Store) ReferenceCount(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM fixed_expenses WHERE account_id = $1) +
			(SELECT COUNT(*) FROM recurring_templates WHERE account_id = $1) +
			(SELECT COUNT(*) FROM pending_transactions WHERE account_id = $1)
	`

	var n int

	if err := s.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting account references: %w", err)
	}

	return n, nil
}
