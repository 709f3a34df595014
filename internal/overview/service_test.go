package overview_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/payday/internal/audit"
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/overview"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
	"github.com/MrJamesThe3rd/payday/internal/recurring"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	paychecks *overview.MockProjector
	expenses  *overview.MockExpenseReader
	generator *overview.MockGenerator
	cycles    *overview.MockCycleStarter
	auditor   *overview.MockAuditRecorder
	svc       *overview.Service
}

func newFixture(t *testing.T, today string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		paychecks: overview.NewMockProjector(ctrl),
		expenses:  overview.NewMockExpenseReader(ctrl),
		generator: overview.NewMockGenerator(ctrl),
		cycles:    overview.NewMockCycleStarter(ctrl),
		auditor:   overview.NewMockAuditRecorder(ctrl),
	}

	f.svc = overview.NewService(
		f.paychecks,
		f.expenses,
		f.generator,
		f.cycles,
		f.auditor,
		dates.Fixed(dates.MustParse(today)),
		discardLogger(),
	)

	return f
}

func TestService_Load(t *testing.T) {
	f := newFixture(t, "2025-01-15")

	today := dates.MustParse("2025-01-15")
	proj := &paycheck.Projection{
		NextPayDate:      dates.MustParse("2025-01-17"),
		FollowingPayDate: dates.MustParse("2025-01-31"),
	}

	expenses := []*expense.FixedExpense{
		{Name: "Rent", Amount: money("1200"), PaidAmount: money("1200"), DueDate: dates.MustParse("2025-01-01")},
		{Name: "Internet", Amount: money("60"), PaidAmount: decimal.Zero, DueDate: dates.MustParse("2025-01-16")},
		{Name: "Insurance", Amount: money("90"), PaidAmount: decimal.Zero, DueDate: dates.MustParse("2025-01-25")},
	}

	templateID := uuid.New()

	f.paychecks.EXPECT().Project(gomock.Any(), today).Return(proj, nil)
	f.generator.EXPECT().AutoGenerateDue(gomock.Any(), today).Return(nil, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return(expenses, nil)
	f.generator.EXPECT().List(gomock.Any(), true).Return([]*recurring.Template{
		{ID: templateID, Name: "Streaming", BaseAmount: money("15"), NextDueDate: dates.MustParse("2025-02-01")},
	}, nil)

	view, err := f.svc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, proj, view.Paycheck)
	require.Len(t, view.Expenses, 3)
	assert.Equal(t, expense.StatusPaid, view.Expenses[0].Status)
	assert.Equal(t, expense.StatusPayThisWeek, view.Expenses[1].Status)
	assert.Equal(t, expense.StatusPayWithNextCheck, view.Expenses[2].Status)

	assert.True(t, view.Summary.PayThisWeek.Equal(money("60")))
	assert.True(t, view.Summary.PayNextCheck.Equal(money("90")))

	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, templateID, view.Upcoming[0].TemplateID)
	assert.Equal(t, dates.MustParse("2025-02-01"), view.Upcoming[0].NextDueDate)

	assert.False(t, view.PromptCycleReset)
}

func TestService_Load_SweepFailureDegrades(t *testing.T) {
	f := newFixture(t, "2025-01-15")

	today := dates.MustParse("2025-01-15")

	f.paychecks.EXPECT().Project(gomock.Any(), today).Return(nil, nil)
	f.generator.EXPECT().AutoGenerateDue(gomock.Any(), today).Return(nil, errors.New("db down"))
	f.expenses.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.generator.EXPECT().List(gomock.Any(), true).Return(nil, errors.New("db down"))

	view, err := f.svc.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view.Paycheck)
	assert.Empty(t, view.Expenses)
	assert.Empty(t, view.Upcoming)
}

func TestService_Load_PartialGenerationFailureDegrades(t *testing.T) {
	f := newFixture(t, "2025-01-15")

	today := dates.MustParse("2025-01-15")

	f.paychecks.EXPECT().Project(gomock.Any(), today).Return(nil, nil)
	f.generator.EXPECT().AutoGenerateDue(gomock.Any(), today).Return([]recurring.GenerationResult{
		{TemplateID: uuid.New(), Err: errors.New("corrupt row")},
	}, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.generator.EXPECT().List(gomock.Any(), true).Return(nil, nil)

	_, err := f.svc.Load(context.Background())
	require.NoError(t, err)
}

func TestService_Load_PromptsCycleReset(t *testing.T) {
	f := newFixture(t, "2025-01-28")

	today := dates.MustParse("2025-01-28")
	proj := &paycheck.Projection{
		NextPayDate:      dates.MustParse("2025-02-07"),
		FollowingPayDate: dates.MustParse("2025-02-21"),
	}

	f.paychecks.EXPECT().Project(gomock.Any(), today).Return(proj, nil)
	f.generator.EXPECT().AutoGenerateDue(gomock.Any(), today).Return(nil, nil)
	f.expenses.EXPECT().List(gomock.Any()).Return([]*expense.FixedExpense{
		{Name: "Rent", Amount: money("1200"), PaidAmount: money("1200"), DueDate: dates.MustParse("2025-01-01")},
	}, nil)
	f.generator.EXPECT().List(gomock.Any(), true).Return(nil, nil)

	view, err := f.svc.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, view.PromptCycleReset)
}

func TestService_ApplyPayment_Audits(t *testing.T) {
	f := newFixture(t, "2025-01-15")

	id := uuid.New()
	paid := money("60")

	f.expenses.EXPECT().ApplyPayment(gomock.Any(), id, paid).Return(&expense.FixedExpense{
		ID:     id,
		Name:   "Internet",
		Amount: money("60"),
	}, nil)
	f.auditor.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Entry) error {
			assert.Equal(t, audit.ActionUpdate, e.ActionType)
			assert.Equal(t, "fixed_expense", e.EntityType)
			assert.Equal(t, id.String(), e.EntityID)
			return nil
		})

	e, err := f.svc.ApplyPayment(context.Background(), id, paid)
	require.NoError(t, err)
	assert.Equal(t, "Internet", e.Name)
}

func TestService_ApplyPayment_AuditFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, "2025-01-15")

	id := uuid.New()
	paid := money("60")

	f.expenses.EXPECT().ApplyPayment(gomock.Any(), id, paid).Return(&expense.FixedExpense{ID: id, Amount: paid}, nil)
	f.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit table gone"))

	_, err := f.svc.ApplyPayment(context.Background(), id, paid)
	require.NoError(t, err)
}

func TestService_StartNewCycle(t *testing.T) {
	t.Run("RequiresConfirmation", func(t *testing.T) {
		f := newFixture(t, "2025-01-28")

		err := f.svc.StartNewCycle(context.Background(), false)
		assert.ErrorIs(t, err, overview.ErrConfirmationRequired)
	})

	t.Run("UsesNextPayMonth", func(t *testing.T) {
		f := newFixture(t, "2025-01-28")

		today := dates.MustParse("2025-01-28")
		proj := &paycheck.Projection{
			NextPayDate:      dates.MustParse("2025-02-07"),
			FollowingPayDate: dates.MustParse("2025-02-21"),
		}

		f.paychecks.EXPECT().Project(gomock.Any(), today).Return(proj, nil)
		f.cycles.EXPECT().StartNewCycle(gomock.Any(), proj.NextPayDate).Return(nil)

		require.NoError(t, f.svc.StartNewCycle(context.Background(), true))
	})

	t.Run("FallsBackToTodayWithoutProjection", func(t *testing.T) {
		f := newFixture(t, "2025-01-28")

		today := dates.MustParse("2025-01-28")

		f.paychecks.EXPECT().Project(gomock.Any(), today).Return(nil, nil)
		f.cycles.EXPECT().StartNewCycle(gomock.Any(), today).Return(nil)

		require.NoError(t, f.svc.StartNewCycle(context.Background(), true))
	})
}
