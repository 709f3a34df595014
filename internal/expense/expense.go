package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

var (
	ErrNotFound        = errors.New("expense not found")
	ErrInvalidPayment  = errors.New("paid amount must be between zero and the expense amount")
	ErrUnknownCategory = errors.New("category does not exist")
)

// FixedExpense is a single bill within the current pay cycle. Expenses
// are either user-created or generated from a recurring template; a
// generated expense keeps a weak back-reference to its template and
// remains a fully independent record afterwards.
type FixedExpense struct {
	ID                  uuid.UUID
	Name                string
	Amount              decimal.Decimal
	PaidAmount          decimal.Decimal
	DueDate             dates.Date
	Category            string
	AccountID           *uuid.UUID
	RecurringTemplateID *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Remaining is the unpaid residual, never negative.
func (e *FixedExpense) Remaining() decimal.Decimal {
	r := e.Amount.Sub(e.PaidAmount)
	if r.IsNegative() {
		return decimal.Zero
	}

	return r
}
