package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetSettings reads the single settings row. A missing row means no
// reference paycheck has been recorded yet and is not an error.
func (s *Store) GetSettings(ctx context.Context) (paycheck.Settings, error) {
	query := `SELECT last_paycheck_date FROM paycheck_settings WHERE id = 1`

	var last sql.Null[dates.Date]

	err := s.db.QueryRowContext(ctx, query).Scan(&last)
	if err != nil {
		if err == sql.ErrNoRows {
			return paycheck.Settings{}, nil
		}

		return paycheck.Settings{}, fmt.Errorf("getting paycheck settings: %w", err)
	}

	var settings paycheck.Settings
	if last.Valid {
		settings.LastPaycheckDate = &last.V
	}

	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings paycheck.Settings) error {
	query := `
		INSERT INTO paycheck_settings (id, last_paycheck_date)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_paycheck_date = EXCLUDED.last_paycheck_date
	`

	var last any
	if settings.LastPaycheckDate != nil {
		last = *settings.LastPaycheckDate
	}

	if _, err := s.db.ExecContext(ctx, query, last); err != nil {
		return fmt.Errorf("saving paycheck settings: %w", err)
	}

	return nil
}
