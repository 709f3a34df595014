package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

// Version identifies the snapshot file format. Bump on any breaking
// change to the document shape.
const Version = 1

var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Document is the full-database snapshot as written to disk. Record IDs
// are preserved so cross-references survive a round trip.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	PaycheckSettings    PaycheckSettings     `json:"paycheck_settings"`
	Accounts            []Account            `json:"accounts"`
	Categories          []Category           `json:"categories"`
	RecurringTemplates  []RecurringTemplate  `json:"recurring_templates"`
	FixedExpenses       []FixedExpense       `json:"fixed_expenses"`
	PendingTransactions []PendingTransaction `json:"pending_transactions"`
	AuditLog            []AuditEntry         `json:"audit_log"`
}

type PaycheckSettings struct {
	LastPaycheckDate *dates.Date `json:"last_paycheck_date,omitempty"`
}

type Account struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Type                 string           `json:"type"`
	CurrentBalance       decimal.Decimal  `json:"current_balance"`
	IsDefault            bool             `json:"is_default"`
	CreditLimit          *decimal.Decimal `json:"credit_limit,omitempty"`
	InterestRate         *decimal.Decimal `json:"interest_rate,omitempty"`
	MinimumPayment       *decimal.Decimal `json:"minimum_payment,omitempty"`
	DueDate              *dates.Date      `json:"due_date,omitempty"`
	StatementClosingDate *dates.Date      `json:"statement_closing_date,omitempty"`
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"is_default"`
}

type RecurringTemplate struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	Frequency        string          `json:"frequency"`
	IntervalValue    int             `json:"interval_value"`
	StartDate        dates.Date      `json:"start_date"`
	NextDueDate      dates.Date      `json:"next_due_date"`
	Category         string          `json:"category"`
	AccountID        *uuid.UUID      `json:"account_id,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	IsActive         bool            `json:"is_active"`
	IsVariableAmount bool            `json:"is_variable_amount"`
}

type FixedExpense struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Amount              decimal.Decimal `json:"amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	DueDate             dates.Date      `json:"due_date"`
	Category            string          `json:"category"`
	AccountID           *uuid.UUID      `json:"account_id,omitempty"`
	RecurringTemplateID *uuid.UUID      `json:"recurring_template_id,omitempty"`
}

type PendingTransaction struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        dates.Date      `json:"date"`
}

type AuditEntry struct {
	ID          uuid.UUID      `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	ActionType  string         `json:"action_type"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Description string         `json:"description,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

// Validate rejects documents the importer cannot restore faithfully.
func (d *Document) Validate() error {
	if d.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, d.Version)
	}

	accountIDs := make(map[uuid.UUID]bool, len(d.Accounts))
	for _, a := range d.Accounts {
		accountIDs[a.ID] = true
	}

	for _, e := range d.FixedExpenses {
		if e.AccountID != nil && !accountIDs[*e.AccountID] {
			return fmt.Errorf("expense %q references unknown account %s", e.Name, e.AccountID)
		}
	}

	for _, t := range d.RecurringTemplates {
		if t.AccountID != nil && !accountIDs[*t.AccountID] {
			return fmt.Errorf("template %q references unknown account %s", t.Name, t.AccountID)
		}
	}

	for _, p := range d.PendingTransactions {
		if !accountIDs[p.AccountID] {
			return fmt.Errorf("pending transaction %q references unknown account %s", p.Description, p.AccountID)
		}
	}

	return nil
}
