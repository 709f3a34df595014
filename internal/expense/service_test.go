package expense_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params expense.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *expense.MockRepository, cats *expense.MockCategoryChecker)
		wantErr   error
	}

	validParams := expense.CreateParams{
		Name:     "Rent",
		Amount:   money("1200"),
		DueDate:  dates.MustParse("2025-02-01"),
		Category: "Housing",
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: validParams},
			setupMock: func(repo *expense.MockRepository, cats *expense.MockCategoryChecker) {
				cats.EXPECT().Exists(gomock.Any(), "Housing").Return(true, nil)
				repo.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.FixedExpense) error {
						e.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "EmptyName",
			args: args{params: expense.CreateParams{
				Amount:  money("10"),
				DueDate: dates.MustParse("2025-02-01"),
			}},
		},
		{
			name: "NonPositiveAmount",
			args: args{params: expense.CreateParams{
				Name:    "Rent",
				Amount:  money("0"),
				DueDate: dates.MustParse("2025-02-01"),
			}},
		},
		{
			name: "MissingDueDate",
			args: args{params: expense.CreateParams{
				Name:   "Rent",
				Amount: money("10"),
			}},
		},
		{
			name: "UnknownCategory",
			args: args{params: validParams},
			setupMock: func(repo *expense.MockRepository, cats *expense.MockCategoryChecker) {
				cats.EXPECT().Exists(gomock.Any(), "Housing").Return(false, nil)
			},
			wantErr: expense.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			cats := expense.NewMockCategoryChecker(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, cats)
			}

			svc := expense.NewService(repo, cats)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.name != "Success" {
				assert.Error(t, err)
				assert.Nil(t, got)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.True(t, got.PaidAmount.IsZero())
		})
	}
}

func TestService_ApplyPayment(t *testing.T) {
	type testCase struct {
		name      string
		paid      decimal.Decimal
		setupMock func(repo *expense.MockRepository, existing *expense.FixedExpense)
		wantErr   error
	}

	expenseID := uuid.New()

	tests := []testCase{
		{
			name: "FullPayment",
			paid: money("100"),
			setupMock: func(repo *expense.MockRepository, existing *expense.FixedExpense) {
				repo.EXPECT().GetExpense(gomock.Any(), expenseID).Return(existing, nil)
				repo.EXPECT().UpdateExpense(gomock.Any(), existing).Return(nil)
			},
		},
		{
			name: "PartialPayment",
			paid: money("25.50"),
			setupMock: func(repo *expense.MockRepository, existing *expense.FixedExpense) {
				repo.EXPECT().GetExpense(gomock.Any(), expenseID).Return(existing, nil)
				repo.EXPECT().UpdateExpense(gomock.Any(), existing).Return(nil)
			},
		},
		{
			name: "NegativeRejected",
			paid: money("-1"),
			setupMock: func(repo *expense.MockRepository, existing *expense.FixedExpense) {
				repo.EXPECT().GetExpense(gomock.Any(), expenseID).Return(existing, nil)
			},
			wantErr: expense.ErrInvalidPayment,
		},
		{
			name: "AboveAmountRejected",
			paid: money("100.01"),
			setupMock: func(repo *expense.MockRepository, existing *expense.FixedExpense) {
				repo.EXPECT().GetExpense(gomock.Any(), expenseID).Return(existing, nil)
			},
			wantErr: expense.ErrInvalidPayment,
		},
		{
			name: "NotFound",
			paid: money("10"),
			setupMock: func(repo *expense.MockRepository, _ *expense.FixedExpense) {
				repo.EXPECT().GetExpense(gomock.Any(), expenseID).Return(nil, expense.ErrNotFound)
			},
			wantErr: expense.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			existing := fixedExpense("100", "0", "2025-01-15")
			existing.ID = expenseID

			repo := expense.NewMockRepository(ctrl)
			tt.setupMock(repo, existing)

			svc := expense.NewService(repo, nil)
			got, err := svc.ApplyPayment(context.Background(), expenseID, tt.paid)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.PaidAmount.Equal(tt.paid))
		})
	}
}

func TestService_Update_ValidatesPaymentBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo, nil)

	e := fixedExpense("100", "150", "2025-01-15")

	err := svc.Update(context.Background(), e)
	assert.ErrorIs(t, err, expense.ErrInvalidPayment)
}

func TestService_Delete_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().DeleteExpense(gomock.Any(), id).Return(expense.ErrNotFound)

	svc := expense.NewService(repo, nil)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, expense.ErrNotFound)
}

func TestService_Create_CategoryCheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	cats := expense.NewMockCategoryChecker(ctrl)
	cats.EXPECT().Exists(gomock.Any(), "Housing").Return(false, errors.New("db down"))

	svc := expense.NewService(repo, cats)

	_, err := svc.Create(context.Background(), expense.CreateParams{
		Name:     "Rent",
		Amount:   money("10"),
		DueDate:  dates.MustParse("2025-02-01"),
		Category: "Housing",
	})
	assert.Error(t, err)
}
