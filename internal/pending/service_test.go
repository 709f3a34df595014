package pending_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/pending"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Create(t *testing.T) {
	accountID := uuid.New()

	valid := pending.CreateParams{
		AccountID:   accountID,
		Amount:      money("-42.50"),
		Description: "Grocery run",
		Category:    "Food",
		Date:        dates.MustParse("2025-01-20"),
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := pending.NewMockRepository(ctrl)
		accounts := pending.NewMockAccountChecker(ctrl)

		accounts.EXPECT().AccountExists(gomock.Any(), accountID).Return(true, nil)
		repo.EXPECT().
			CreatePending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *pending.Transaction) error {
				tx.ID = uuid.New()
				return nil
			})

		svc := pending.NewService(repo, accounts)

		got, err := svc.Create(context.Background(), valid)
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(money("-42.50")))
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := pending.NewMockRepository(ctrl)
		accounts := pending.NewMockAccountChecker(ctrl)
		accounts.EXPECT().AccountExists(gomock.Any(), accountID).Return(false, nil)

		svc := pending.NewService(repo, accounts)

		_, err := svc.Create(context.Background(), valid)
		assert.Error(t, err)
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := pending.NewService(pending.NewMockRepository(ctrl), pending.NewMockAccountChecker(ctrl))

		params := valid
		params.Amount = decimal.Zero

		_, err := svc.Create(context.Background(), params)
		assert.Error(t, err)
	})

	t.Run("EmptyDescription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := pending.NewService(pending.NewMockRepository(ctrl), pending.NewMockAccountChecker(ctrl))

		params := valid
		params.Description = ""

		_, err := svc.Create(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestService_SumForAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := pending.NewMockRepository(ctrl)
	repo.EXPECT().SumForAccount(gomock.Any(), accountID).Return(money("-150.25"), nil)

	svc := pending.NewService(repo, pending.NewMockAccountChecker(ctrl))

	sum, err := svc.SumForAccount(context.Background(), accountID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(money("-150.25")))
}
