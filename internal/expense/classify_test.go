package expense_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedExpense(amount, paid, due string) *expense.FixedExpense {
	return &expense.FixedExpense{
		Name:       "Test",
		Amount:     money(amount),
		PaidAmount: money(paid),
		DueDate:    dates.MustParse(due),
	}
}

// Projection for a 2025-01-03 reference paycheck seen from 2025-01-10.
func testProjection() *paycheck.Projection {
	return &paycheck.Projection{
		NextPayDate:      dates.MustParse("2025-01-17"),
		FollowingPayDate: dates.MustParse("2025-01-31"),
	}
}

func TestClassify(t *testing.T) {
	type testCase struct {
		name    string
		expense *expense.FixedExpense
		today   string
		want    expense.Status
	}

	tests := []testCase{
		{
			name:    "PaidDominatesOverdue",
			expense: fixedExpense("100", "100", "2025-01-01"),
			today:   "2025-02-01",
			want:    expense.StatusPaid,
		},
		{
			name:    "Overpaid",
			expense: fixedExpense("100", "120", "2025-01-20"),
			today:   "2025-01-10",
			want:    expense.StatusPaid,
		},
		{
			name:    "PartiallyPaidDominatesOverdue",
			expense: fixedExpense("50", "10", "2025-01-05"),
			today:   "2025-02-01",
			want:    expense.StatusPartiallyPaid,
		},
		{
			name:    "Overdue",
			expense: fixedExpense("50", "0", "2025-01-05"),
			today:   "2025-01-10",
			want:    expense.StatusOverdue,
		},
		{
			name:    "DueTodayIsNotOverdue",
			expense: fixedExpense("50", "0", "2025-01-10"),
			today:   "2025-01-10",
			want:    expense.StatusPayThisWeek,
		},
		{
			name:    "DueOnNextPayDate",
			expense: fixedExpense("80", "0", "2025-01-17"),
			today:   "2025-01-10",
			want:    expense.StatusPayThisWeek,
		},
		{
			name:    "DueAfterNextPayDate",
			expense: fixedExpense("80", "0", "2025-01-18"),
			today:   "2025-01-10",
			want:    expense.StatusPayWithNextCheck,
		},
		{
			name:    "DueOnFollowingPayDate",
			expense: fixedExpense("80", "0", "2025-01-31"),
			today:   "2025-01-10",
			want:    expense.StatusPayWithNextCheck,
		},
		{
			name:    "DueAfterFollowingPayDate",
			expense: fixedExpense("80", "0", "2025-02-01"),
			today:   "2025-01-10",
			want:    expense.StatusPayWithFollowingCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expense.Classify(tt.expense, testProjection(), dates.MustParse(tt.today))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_NilProjection(t *testing.T) {
	today := dates.MustParse("2025-01-10")

	// Payment state and overdue still classify without a projection.
	assert.Equal(t, expense.StatusPaid, expense.Classify(fixedExpense("100", "100", "2025-01-20"), nil, today))
	assert.Equal(t, expense.StatusPartiallyPaid, expense.Classify(fixedExpense("100", "40", "2025-01-20"), nil, today))
	assert.Equal(t, expense.StatusOverdue, expense.Classify(fixedExpense("100", "0", "2025-01-05"), nil, today))

	// Forward buckets are unreachable without pay dates.
	assert.Equal(t, expense.StatusUnknown, expense.Classify(fixedExpense("100", "0", "2025-01-20"), nil, today))
}

func TestSummarize(t *testing.T) {
	today := dates.MustParse("2025-01-10")
	expenses := []*expense.FixedExpense{
		fixedExpense("100", "0", "2025-01-15"),  // pay this week
		fixedExpense("60", "0", "2025-01-17"),   // pay this week
		fixedExpense("200", "0", "2025-01-25"),  // pay with next check
		fixedExpense("500", "0", "2025-02-10"),  // pay with following check
		fixedExpense("80", "0", "2025-01-02"),   // overdue
		fixedExpense("40", "15", "2025-01-02"),  // partially paid: no bucket
		fixedExpense("300", "300", "2025-01-15"), // paid: no bucket
	}

	got := expense.Summarize(expenses, testProjection(), today)

	assert.True(t, got.PayThisWeek.Equal(money("160")), "pay this week: %s", got.PayThisWeek)
	assert.True(t, got.PayNextCheck.Equal(money("200")), "pay next check: %s", got.PayNextCheck)
	assert.True(t, got.PayFollowingCheck.Equal(money("500")), "pay following check: %s", got.PayFollowingCheck)
	assert.True(t, got.Overdue.Equal(money("80")), "overdue: %s", got.Overdue)
}

func TestSummarize_Empty(t *testing.T) {
	got := expense.Summarize(nil, testProjection(), dates.MustParse("2025-01-10"))

	assert.True(t, got.PayThisWeek.IsZero())
	assert.True(t, got.PayNextCheck.IsZero())
	assert.True(t, got.PayFollowingCheck.IsZero())
	assert.True(t, got.Overdue.IsZero())
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, expense.StatusPaid.Terminal())
	assert.True(t, expense.StatusOverdue.Terminal())
	assert.False(t, expense.StatusPartiallyPaid.Terminal())
	assert.False(t, expense.StatusPayThisWeek.Terminal())
	assert.False(t, expense.StatusUnknown.Terminal())
}
