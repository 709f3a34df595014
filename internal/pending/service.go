package pending

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pending
type Repository interface {
	CreatePending(ctx context.Context, t *Transaction) error
	ListPending(ctx context.Context, accountID *uuid.UUID) ([]*Transaction, error)
	DeletePending(ctx context.Context, id uuid.UUID) error
	SumForAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

// AccountChecker verifies an account exists before a pending
// transaction is attached to it.
type AccountChecker interface {
	AccountExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	accounts AccountChecker
}

func NewService(repo Repository, accounts AccountChecker) *Service {
	return &Service{repo: repo, accounts: accounts}
}

type CreateParams struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        dates.Date
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.Description == "" {
		return nil, fmt.Errorf("pending transaction description is required")
	}

	if params.Amount.IsZero() {
		return nil, fmt.Errorf("pending transaction amount must be non-zero")
	}

	if params.Date.IsZero() {
		return nil, fmt.Errorf("pending transaction date is required")
	}

	ok, err := s.accounts.AccountExists(ctx, params.AccountID)
	if err != nil {
		return nil, fmt.Errorf("checking account: %w", err)
	}

	if !ok {
		return nil, fmt.Errorf("account %s does not exist", params.AccountID)
	}

	t := &Transaction{
		AccountID:   params.AccountID,
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Date:        params.Date,
	}

	if err := s.repo.CreatePending(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// List returns pending transactions, optionally scoped to one account.
func (s *Service) List(ctx context.Context, accountID *uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListPending(ctx, accountID)
}

// Delete drops a pending transaction, typically once it has cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePending(ctx, id)
}

// SumForAccount feeds the projected balance.
func (s *Service) SumForAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	return s.repo.SumForAccount(ctx, accountID)
}
