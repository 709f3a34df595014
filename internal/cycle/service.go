package cycle

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/payday/internal/audit"
	"github.com/MrJamesThe3rd/payday/internal/dates"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cycle

// ExpenseResetter clears payment progress across all expenses.
type ExpenseResetter interface {
	ResetPaidAmounts(ctx context.Context) error
}

// AuditRecorder appends one entry to the audit trail.
type AuditRecorder interface {
	Record(ctx context.Context, e audit.Entry) error
}

type Service struct {
	expenses ExpenseResetter
	auditor  AuditRecorder
}

func NewService(expenses ExpenseResetter, auditor AuditRecorder) *Service {
	return &Service{expenses: expenses, auditor: auditor}
}

// StartNewCycle zeroes every expense's paid amount and records a single
// reset entry for the month the new cycle covers. Expense records are
// otherwise untouched; names, amounts and due dates carry over.
func (s *Service) StartNewCycle(ctx context.Context, cycleMonth dates.Date) error {
	if err := s.expenses.ResetPaidAmounts(ctx); err != nil {
		return fmt.Errorf("resetting paid amounts: %w", err)
	}

	entry := audit.Entry{
		ActionType:  audit.ActionReset,
		EntityType:  "fixed_expense",
		EntityID:    "all",
		Description: fmt.Sprintf("Reset Fixed Expenses for %s %d", cycleMonth.Month(), cycleMonth.Year()),
	}

	if err := s.auditor.Record(ctx, entry); err != nil {
		return fmt.Errorf("recording cycle reset: %w", err)
	}

	return nil
}
