package cycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/payday/internal/audit"
	"github.com/MrJamesThe3rd/payday/internal/cycle"
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func paidExpense(due string) *expense.FixedExpense {
	return &expense.FixedExpense{
		Name:       "Rent",
		Amount:     money("1200"),
		PaidAmount: money("1200"),
		DueDate:    dates.MustParse(due),
	}
}

func unpaidExpense(due string) *expense.FixedExpense {
	return &expense.FixedExpense{
		Name:       "Internet",
		Amount:     money("60"),
		PaidAmount: decimal.Zero,
		DueDate:    dates.MustParse(due),
	}
}

func TestShouldPromptReset(t *testing.T) {
	type testCase struct {
		name     string
		expenses []*expense.FixedExpense
		proj     *paycheck.Projection
		today    string
		want     bool
	}

	nextMonth := &paycheck.Projection{
		NextPayDate:      dates.MustParse("2025-02-07"),
		FollowingPayDate: dates.MustParse("2025-02-21"),
	}
	sameMonth := &paycheck.Projection{
		NextPayDate:      dates.MustParse("2025-01-31"),
		FollowingPayDate: dates.MustParse("2025-02-14"),
	}

	tests := []testCase{
		{
			name:     "AllPaidNextPayNextMonth",
			expenses: []*expense.FixedExpense{paidExpense("2025-01-05"), paidExpense("2025-01-20")},
			proj:     nextMonth,
			today:    "2025-01-28",
			want:     true,
		},
		{
			name: "OverdueCountsAsClosed",
			expenses: []*expense.FixedExpense{
				paidExpense("2025-01-05"),
				unpaidExpense("2025-01-10"),
			},
			proj:  nextMonth,
			today: "2025-01-28",
			want:  true,
		},
		{
			name:     "UnpaidFutureExpenseBlocks",
			expenses: []*expense.FixedExpense{paidExpense("2025-01-05"), unpaidExpense("2025-01-30")},
			proj:     nextMonth,
			today:    "2025-01-28",
			want:     false,
		},
		{
			name: "PartiallyPaidBlocks",
			expenses: []*expense.FixedExpense{
				{Name: "Power", Amount: money("100"), PaidAmount: money("40"), DueDate: dates.MustParse("2025-01-10")},
			},
			proj:  nextMonth,
			today: "2025-01-28",
			want:  false,
		},
		{
			name:     "NextPaySameMonth",
			expenses: []*expense.FixedExpense{paidExpense("2025-01-05")},
			proj:     sameMonth,
			today:    "2025-01-15",
			want:     false,
		},
		{
			name:     "NoExpenses",
			expenses: nil,
			proj:     nextMonth,
			today:    "2025-01-28",
			want:     false,
		},
		{
			name:     "NoProjection",
			expenses: []*expense.FixedExpense{paidExpense("2025-01-05")},
			proj:     nil,
			today:    "2025-01-28",
			want:     false,
		},
		{
			name:     "YearRollover",
			expenses: []*expense.FixedExpense{paidExpense("2024-12-10")},
			proj: &paycheck.Projection{
				NextPayDate:      dates.MustParse("2025-01-03"),
				FollowingPayDate: dates.MustParse("2025-01-17"),
			},
			today: "2024-12-28",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cycle.ShouldPromptReset(tt.expenses, tt.proj, dates.MustParse(tt.today))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_StartNewCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expenses := cycle.NewMockExpenseResetter(ctrl)
	auditor := cycle.NewMockAuditRecorder(ctrl)

	expenses.EXPECT().ResetPaidAmounts(gomock.Any()).Return(nil)
	auditor.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Entry) error {
			assert.Equal(t, audit.ActionReset, e.ActionType)
			assert.Equal(t, "fixed_expense", e.EntityType)
			assert.Equal(t, "all", e.EntityID)
			assert.Equal(t, "Reset Fixed Expenses for February 2025", e.Description)
			return nil
		})

	svc := cycle.NewService(expenses, auditor)

	err := svc.StartNewCycle(context.Background(), dates.MustParse("2025-02-07"))
	require.NoError(t, err)
}

func TestService_StartNewCycle_ResetFailureSkipsAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expenses := cycle.NewMockExpenseResetter(ctrl)
	auditor := cycle.NewMockAuditRecorder(ctrl)

	expenses.EXPECT().ResetPaidAmounts(gomock.Any()).Return(errors.New("db down"))

	svc := cycle.NewService(expenses, auditor)

	err := svc.StartNewCycle(context.Background(), dates.MustParse("2025-02-07"))
	assert.Error(t, err)
}
