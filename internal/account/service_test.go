package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/payday/internal/account"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    account.CreateParams
		existing  []*account.Account
		wantErr   bool
		wantIsDef bool
	}

	tests := []testCase{
		{
			name: "FirstAccountBecomesDefault",
			params: account.CreateParams{
				Name:           "Main Checking",
				Type:           account.TypeChecking,
				CurrentBalance: money("2500"),
			},
			wantIsDef: true,
		},
		{
			name: "SecondAccountIsNotDefault",
			params: account.CreateParams{
				Name: "Savings",
				Type: account.TypeSavings,
			},
			existing: []*account.Account{{Name: "Main Checking", IsDefault: true}},
		},
		{
			name: "CreditCardWithDetails",
			params: account.CreateParams{
				Name: "Visa",
				Type: account.TypeCreditCard,
				CreditCard: &account.CreditCardDetails{
					CreditLimit: ptr(money("5000")),
				},
			},
			existing: []*account.Account{{Name: "Main Checking", IsDefault: true}},
		},
		{
			name: "EmptyName",
			params: account.CreateParams{
				Type: account.TypeChecking,
			},
			wantErr: true,
		},
		{
			name: "BogusType",
			params: account.CreateParams{
				Name: "Wallet",
				Type: account.Type("cash"),
			},
			wantErr: true,
		},
		{
			name: "CardDetailsOnChecking",
			params: account.CreateParams{
				Name:       "Main Checking",
				Type:       account.TypeChecking,
				CreditCard: &account.CreditCardDetails{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			pending := account.NewMockPendingReader(ctrl)

			if !tt.wantErr {
				repo.EXPECT().ListAccounts(gomock.Any()).Return(tt.existing, nil)
				repo.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *account.Account) error {
						a.ID = uuid.New()
						return nil
					})
			}

			svc := account.NewService(repo, pending)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIsDef, got.IsDefault)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestService_Delete_RefusesReferencedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().ReferenceCount(gomock.Any(), id).Return(3, nil)

	svc := account.NewService(repo, account.NewMockPendingReader(ctrl))

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, account.ErrInUse)
}

func TestService_Delete_UnreferencedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().ReferenceCount(gomock.Any(), id).Return(0, nil)
	repo.EXPECT().DeleteAccount(gomock.Any(), id).Return(nil)

	svc := account.NewService(repo, account.NewMockPendingReader(ctrl))

	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_GetDefault(t *testing.T) {
	t.Run("ReturnsDefaultAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		def := &account.Account{ID: uuid.New(), Name: "Main Checking", IsDefault: true}

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().GetDefaultAccount(gomock.Any()).Return(def, nil)

		svc := account.NewService(repo, account.NewMockPendingReader(ctrl))

		got, err := svc.GetDefault(context.Background())
		require.NoError(t, err)
		assert.Equal(t, def.ID, got.ID)
		assert.True(t, got.IsDefault)
	})

	t.Run("NoDefault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().GetDefaultAccount(gomock.Any()).Return(nil, account.ErrNotFound)

		svc := account.NewService(repo, account.NewMockPendingReader(ctrl))

		_, err := svc.GetDefault(context.Background())
		assert.ErrorIs(t, err, account.ErrNotFound)
	})
}

func TestService_EnsureDefault(t *testing.T) {
	t.Run("BackfillsOldest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		oldest := &account.Account{ID: uuid.New(), Name: "Main Checking"}
		newer := &account.Account{ID: uuid.New(), Name: "Savings"}

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().ListAccounts(gomock.Any()).Return([]*account.Account{oldest, newer}, nil)
		repo.EXPECT().SetDefaultAccount(gomock.Any(), oldest.ID).Return(nil)

		svc := account.NewService(repo, account.NewMockPendingReader(ctrl))
		require.NoError(t, svc.EnsureDefault(context.Background()))
	})

	t.Run("ExistingDefaultUntouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().ListAccounts(gomock.Any()).Return([]*account.Account{
			{ID: uuid.New(), IsDefault: true},
		}, nil)

		svc := account.NewService(repo, account.NewMockPendingReader(ctrl))
		require.NoError(t, svc.EnsureDefault(context.Background()))
	})

	t.Run("NoAccountsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().ListAccounts(gomock.Any()).Return(nil, nil)

		svc := account.NewService(repo, account.NewMockPendingReader(ctrl))
		require.NoError(t, svc.EnsureDefault(context.Background()))
	})
}

func TestService_ProjectedBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().GetAccount(gomock.Any(), id).Return(&account.Account{
		ID:             id,
		CurrentBalance: money("1000"),
	}, nil)

	pending := account.NewMockPendingReader(ctrl)
	pending.EXPECT().SumForAccount(gomock.Any(), id).Return(money("-150.25"), nil)

	svc := account.NewService(repo, pending)

	got, err := svc.ProjectedBalance(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.Equal(money("849.75")))
}

func TestAccount_AvailableCredit(t *testing.T) {
	limit := money("5000")

	card := &account.Account{
		Type:           account.TypeCreditCard,
		CurrentBalance: money("1200"),
		CreditCard:     &account.CreditCardDetails{CreditLimit: &limit},
	}

	avail := card.AvailableCredit()
	require.NotNil(t, avail)
	assert.True(t, avail.Equal(money("3800")))

	checking := &account.Account{Type: account.TypeChecking}
	assert.Nil(t, checking.AvailableCredit())
}
