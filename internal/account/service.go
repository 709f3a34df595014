package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	UpdateAccount(ctx context.Context, a *Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	// SetDefaultAccount atomically clears the previous default and marks
	// the given account.
	SetDefaultAccount(ctx context.Context, id uuid.UUID) error

	// GetDefaultAccount returns the account marked default, ErrNotFound
	// when none is.
	GetDefaultAccount(ctx context.Context) (*Account, error)

	// ReferenceCount reports how many expenses, templates and pending
	// transactions point at the account.
	ReferenceCount(ctx context.Context, id uuid.UUID) (int, error)
}

// PendingReader exposes the pending-transaction total for an account.
type PendingReader interface {
	SumForAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

type Service struct {
	repo    Repository
	pending PendingReader
}

func NewService(repo Repository, pending PendingReader) *Service {
	return &Service{repo: repo, pending: pending}
}

type CreateParams struct {
	Name           string
	Type           Type
	CurrentBalance decimal.Decimal
	CreditCard     *CreditCardDetails
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("account name is required")
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, p.Type)
	}

	if p.CreditCard != nil && p.Type != TypeCreditCard {
		return fmt.Errorf("credit card details are only valid on credit card accounts, got type %q", p.Type)
	}

	return nil
}

// Create persists a new account. The first account ever created becomes
// the default automatically.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	a := &Account{
		Name:           params.Name,
		Type:           params.Type,
		CurrentBalance: params.CurrentBalance,
		IsDefault:      len(existing) == 0,
		CreditCard:     params.CreditCard,
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) Update(ctx context.Context, a *Account) error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, a.Type)
	}

	if a.CreditCard != nil && a.Type != TypeCreditCard {
		return fmt.Errorf("credit card details are only valid on credit card accounts, got type %q", a.Type)
	}

	return s.repo.UpdateAccount(ctx, a)
}

// Delete refuses to remove an account that expenses, templates or
// pending transactions still point at.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.ReferenceCount(ctx, id)
	if err != nil {
		return fmt.Errorf("counting account references: %w", err)
	}

	if n > 0 {
		return fmt.Errorf("%w: %d references", ErrInUse, n)
	}

	return s.repo.DeleteAccount(ctx, id)
}

func (s *Service) SetDefault(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetDefaultAccount(ctx, id)
}

// GetDefault returns the account new expenses attach to by default.
func (s *Service) GetDefault(ctx context.Context) (*Account, error) {
	return s.repo.GetDefaultAccount(ctx)
}

// EnsureDefault backfills the default flag for databases created before
// it existed: if accounts exist but none is marked, the oldest one wins.
func (s *Service) EnsureDefault(ctx context.Context) error {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("listing accounts: %w", err)
	}

	if len(accounts) == 0 {
		return nil
	}

	for _, a := range accounts {
		if a.IsDefault {
			return nil
		}
	}

	return s.repo.SetDefaultAccount(ctx, accounts[0].ID)
}

// ProjectedBalance is the current balance with all pending transactions
// applied.
func (s *Service) ProjectedBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	pending, err := s.pending.SumForAccount(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing pending transactions: %w", err)
	}

	return a.CurrentBalance.Add(pending), nil
}
