package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/snapshot"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ReadAll(ctx context.Context) (*snapshot.Document, error) {
	doc := &snapshot.Document{}

	var last sql.Null[dates.Date]

	err := s.db.QueryRowContext(ctx, `SELECT last_paycheck_date FROM paycheck_settings WHERE id = 1`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("reading paycheck settings: %w", err)
	}

	if last.Valid {
		doc.PaycheckSettings.LastPaycheckDate = &last.V
	}

	if err := s.readAccounts(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.readCategories(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.readTemplates(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.readExpenses(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.readPending(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.readAudit(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *Store) readAccounts(ctx context.Context, doc *snapshot.Document) error {
	query := `
		SELECT id, name, type, current_balance, is_default,
			credit_limit, interest_rate, minimum_payment, due_date, statement_closing_date
		FROM accounts ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("reading accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a snapshot.Account

		if err := rows.Scan(
			&a.ID, &a.Name, &a.Type, &a.CurrentBalance, &a.IsDefault,
			&a.CreditLimit, &a.InterestRate, &a.MinimumPayment, &a.DueDate, &a.StatementClosingDate,
		); err != nil {
			return fmt.Errorf("scanning account: %w", err)
		}

		doc.Accounts = append(doc.Accounts, a)
	}

	return rows.Err()
}

func (s *Store) readCategories(ctx context.Context, doc *snapshot.Document) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color, icon, is_default FROM categories ORDER BY name ASC`)
	if err != nil {
		return fmt.Errorf("reading categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c snapshot.Category

		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.IsDefault); err != nil {
			return fmt.Errorf("scanning category: %w", err)
		}

		doc.Categories = append(doc.Categories, c)
	}

	return rows.Err()
}

func (s *Store) readTemplates(ctx context.Context, doc *snapshot.Document) error {
	query := `
		SELECT id, name, base_amount, frequency, interval_value, start_date, next_due_date,
			category, account_id, notes, is_active, is_variable_amount
		FROM recurring_templates ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("reading templates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t snapshot.RecurringTemplate

		if err := rows.Scan(
			&t.ID, &t.Name, &t.BaseAmount, &t.Frequency, &t.IntervalValue, &t.StartDate, &t.NextDueDate,
			&t.Category, &t.AccountID, &t.Notes, &t.IsActive, &t.IsVariableAmount,
		); err != nil {
			return fmt.Errorf("scanning template: %w", err)
		}

		doc.RecurringTemplates = append(doc.RecurringTemplates, t)
	}

	return rows.Err()
}

func (s *Store) readExpenses(ctx context.Context, doc *snapshot.Document) error {
	query := `
		SELECT id, name, amount, paid_amount, due_date, category, account_id, recurring_template_id
		FROM fixed_expenses ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("reading expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e snapshot.FixedExpense

		if err := rows.Scan(
			&e.ID, &e.Name, &e.Amount, &e.PaidAmount, &e.DueDate, &e.Category, &e.AccountID, &e.RecurringTemplateID,
		); err != nil {
			return fmt.Errorf("scanning expense: %w", err)
		}

		doc.FixedExpenses = append(doc.FixedExpenses, e)
	}

	return rows.Err()
}

func (s *Store) readPending(ctx context.Context, doc *snapshot.Document) error {
	query := `SELECT id, account_id, amount, description, category, date FROM pending_transactions ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("reading pending transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p snapshot.PendingTransaction

		if err := rows.Scan(&p.ID, &p.AccountID, &p.Amount, &p.Description, &p.Category, &p.Date); err != nil {
			return fmt.Errorf("scanning pending transaction: %w", err)
		}

		doc.PendingTransactions = append(doc.PendingTransactions, p)
	}

	return rows.Err()
}

func (s *Store) readAudit(ctx context.Context, doc *snapshot.Document) error {
	query := `
		SELECT id, timestamp, action_type, entity_type, entity_id, description, details
		FROM audit_log ORDER BY timestamp ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("reading audit log: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e       snapshot.AuditEntry
			details []byte
		)

		if err := rows.Scan(&e.ID, &e.Timestamp, &e.ActionType, &e.EntityType, &e.EntityID, &e.Description, &details); err != nil {
			return fmt.Errorf("scanning audit entry: %w", err)
		}

		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return fmt.Errorf("decoding audit details: %w", err)
			}
		}

		doc.AuditLog = append(doc.AuditLog, e)
	}

	return rows.Err()
}

// Replace wipes and restores inside one transaction. Deletes run
// child-first and inserts parent-first so foreign keys hold throughout.
func (s *Store) Replace(ctx context.Context, doc *snapshot.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning restore tx: %w", err)
	}
	defer tx.Rollback()

	wipe := []string{
		`DELETE FROM pending_transactions`,
		`DELETE FROM fixed_expenses`,
		`DELETE FROM recurring_templates`,
		`DELETE FROM accounts`,
		`DELETE FROM categories`,
		`DELETE FROM paycheck_settings`,
		`DELETE FROM audit_log`,
	}

	for _, q := range wipe {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("wiping table: %w", err)
		}
	}

	for _, c := range doc.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, name_lower, color, icon, is_default) VALUES ($1, $2, LOWER($2), $3, $4, $5)`,
			c.ID, c.Name, c.Color, c.Icon, c.IsDefault,
		); err != nil {
			return fmt.Errorf("restoring category %q: %w", c.Name, err)
		}
	}

	for _, a := range doc.Accounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts
				(id, name, type, current_balance, is_default,
				 credit_limit, interest_rate, minimum_payment, due_date, statement_closing_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			a.ID, a.Name, a.Type, a.CurrentBalance, a.IsDefault,
			a.CreditLimit, a.InterestRate, a.MinimumPayment, a.DueDate, a.StatementClosingDate,
		); err != nil {
			return fmt.Errorf("restoring account %q: %w", a.Name, err)
		}
	}

	for _, t := range doc.RecurringTemplates {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recurring_templates
				(id, name, base_amount, frequency, interval_value, start_date, next_due_date,
				 category, account_id, notes, is_active, is_variable_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			t.ID, t.Name, t.BaseAmount, t.Frequency, t.IntervalValue, t.StartDate, t.NextDueDate,
			t.Category, t.AccountID, t.Notes, t.IsActive, t.IsVariableAmount,
		); err != nil {
			return fmt.Errorf("restoring template %q: %w", t.Name, err)
		}
	}

	for _, e := range doc.FixedExpenses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fixed_expenses
				(id, name, amount, paid_amount, due_date, category, account_id, recurring_template_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, e.Name, e.Amount, e.PaidAmount, e.DueDate, e.Category, e.AccountID, e.RecurringTemplateID,
		); err != nil {
			return fmt.Errorf("restoring expense %q: %w", e.Name, err)
		}
	}

	for _, p := range doc.PendingTransactions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pending_transactions (id, account_id, amount, description, category, date)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.AccountID, p.Amount, p.Description, p.Category, p.Date,
		); err != nil {
			return fmt.Errorf("restoring pending transaction %q: %w", p.Description, err)
		}
	}

	for _, e := range doc.AuditLog {
		details := []byte("{}")

		if e.Details != nil {
			encoded, err := json.Marshal(e.Details)
			if err != nil {
				return fmt.Errorf("encoding audit details: %w", err)
			}

			details = encoded
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO audit_log (id, timestamp, action_type, entity_type, entity_id, description, details)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.Timestamp, e.ActionType, e.EntityType, e.EntityID, e.Description, details,
		); err != nil {
			return fmt.Errorf("restoring audit entry %s: %w", e.ID, err)
		}
	}

	if doc.PaycheckSettings.LastPaycheckDate != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO paycheck_settings (id, last_paycheck_date) VALUES (1, $1)`,
			*doc.PaycheckSettings.LastPaycheckDate,
		); err != nil {
			return fmt.Errorf("restoring paycheck settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing restore: %w", err)
	}

	return nil
}
