package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MrJamesThe3rd/payday/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateEntry(ctx context.Context, e *audit.Entry) error {
	details := []byte("{}")

	if e.Details != nil {
		var err error

		details, err = json.Marshal(e.Details)
		if err != nil {
			return fmt.Errorf("encoding audit details: %w", err)
		}
	}

	query := `
		INSERT INTO audit_log (action_type, entity_type, entity_id, description, details, timestamp)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, timestamp
	`

	err := s.db.QueryRowContext(ctx, query,
		e.ActionType,
		e.EntityType,
		e.EntityID,
		e.Description,
		details,
	).Scan(&e.ID, &e.Timestamp)
	if err != nil {
		return fmt.Errorf("creating audit entry: %w", err)
	}

	return nil
}

func (s *Store) ListEntries(ctx context.Context, limit int) ([]*audit.Entry, error) {
	query := `
		SELECT id, action_type, entity_type, entity_id, description, details, timestamp
		FROM audit_log
		ORDER BY timestamp DESC, id DESC
	`

	var args []any

	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry

	for rows.Next() {
		var e audit.Entry

		var (
			action  string
			details []byte
		)

		if err := rows.Scan(&e.ID, &action, &e.EntityType, &e.EntityID, &e.Description, &details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		e.ActionType = audit.Action(action)

		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("decoding audit details: %w", err)
			}
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit rows: %w", err)
	}

	return entries, nil
}
