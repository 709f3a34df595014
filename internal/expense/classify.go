package expense

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

// Status places an expense relative to payment state and the paycheck
// projection. Every expense maps to exactly one status.
type Status string

const (
	StatusPaid                  Status = "paid"
	StatusPartiallyPaid         Status = "partially_paid"
	StatusOverdue               Status = "overdue"
	StatusPayThisWeek           Status = "pay_this_week"
	StatusPayWithNextCheck      Status = "pay_with_next_check"
	StatusPayWithFollowingCheck Status = "pay_with_following_check"
	StatusUnknown               Status = "unknown"
)

// Terminal reports whether the status closes the expense for the
// current cycle: fully paid, or past due and still actionable. Terminal
// expenses never contribute to forward buckets.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusOverdue
}

// Classify evaluates the status rules in precedence order; the first
// match wins. Payment state dominates scheduling, and an overdue
// residual dominates the forward-looking buckets. With a nil projection
// (no reference paycheck yet) the forward buckets are unreachable and
// unpaid future expenses classify as unknown.
func Classify(e *FixedExpense, proj *paycheck.Projection, today dates.Date) Status {
	switch {
	case e.PaidAmount.GreaterThanOrEqual(e.Amount):
		return StatusPaid
	case e.PaidAmount.IsPositive():
		return StatusPartiallyPaid
	case e.DueDate.Before(today):
		return StatusOverdue
	}

	// From here on PaidAmount is zero and DueDate >= today.
	if proj == nil {
		return StatusUnknown
	}

	switch {
	case !e.DueDate.After(proj.NextPayDate):
		return StatusPayThisWeek
	case !e.DueDate.After(proj.FollowingPayDate):
		return StatusPayWithNextCheck
	default:
		return StatusPayWithFollowingCheck
	}
}

// Summary aggregates remaining amounts per scheduling bucket. Paid and
// partially paid expenses do not feed the forward buckets.
type Summary struct {
	PayThisWeek       decimal.Decimal
	PayNextCheck      decimal.Decimal
	PayFollowingCheck decimal.Decimal
	Overdue           decimal.Decimal
}

func Summarize(expenses []*FixedExpense, proj *paycheck.Projection, today dates.Date) Summary {
	s := Summary{
		PayThisWeek:       decimal.Zero,
		PayNextCheck:      decimal.Zero,
		PayFollowingCheck: decimal.Zero,
		Overdue:           decimal.Zero,
	}

	for _, e := range expenses {
		switch Classify(e, proj, today) {
		case StatusPayThisWeek:
			s.PayThisWeek = s.PayThisWeek.Add(e.Remaining())
		case StatusPayWithNextCheck:
			s.PayNextCheck = s.PayNextCheck.Add(e.Remaining())
		case StatusPayWithFollowingCheck:
			s.PayFollowingCheck = s.PayFollowingCheck.Add(e.Remaining())
		case StatusOverdue:
			s.Overdue = s.Overdue.Add(e.Remaining())
		}
	}

	return s
}
