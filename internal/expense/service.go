package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *FixedExpense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*FixedExpense, error)
	ListExpenses(ctx context.Context) ([]*FixedExpense, error)
	UpdateExpense(ctx context.Context, e *FixedExpense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*FixedExpense, error)
	ExistsForTemplate(ctx context.Context, templateID uuid.UUID, dueDate dates.Date) (bool, error)
	ResetPaidAmounts(ctx context.Context) error
}

// CategoryChecker tests whether a category name exists in the taxonomy.
type CategoryChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type Service struct {
	repo       Repository
	categories CategoryChecker
}

func NewService(repo Repository, categories CategoryChecker) *Service {
	return &Service{repo: repo, categories: categories}
}

type CreateParams struct {
	Name                string
	Amount              decimal.Decimal
	DueDate             dates.Date
	Category            string
	AccountID           *uuid.UUID
	RecurringTemplateID *uuid.UUID
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("expense name is required")
	}

	if !p.Amount.IsPositive() {
		return fmt.Errorf("expense amount must be positive, got %s", p.Amount)
	}

	if p.DueDate.IsZero() {
		return fmt.Errorf("expense due date is required")
	}

	return nil
}

// Create validates before any persistence; a rejected expense leaves no
// partial write behind.
func (s *Service) Create(ctx context.Context, params CreateParams) (*FixedExpense, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if params.Category != "" && s.categories != nil {
		ok, err := s.categories.Exists(ctx, params.Category)
		if err != nil {
			return nil, fmt.Errorf("checking category: %w", err)
		}

		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, params.Category)
		}
	}

	e := &FixedExpense{
		Name:                params.Name,
		Amount:              params.Amount,
		PaidAmount:          decimal.Zero,
		DueDate:             params.DueDate,
		Category:            params.Category,
		AccountID:           params.AccountID,
		RecurringTemplateID: params.RecurringTemplateID,
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*FixedExpense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*FixedExpense, error) {
	return s.repo.ListExpenses(ctx)
}

func (s *Service) Update(ctx context.Context, e *FixedExpense) error {
	if e.PaidAmount.IsNegative() || e.PaidAmount.GreaterThan(e.Amount) {
		return ErrInvalidPayment
	}

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*FixedExpense, error) {
	return s.repo.ListByTemplate(ctx, templateID)
}

// ApplyPayment records the absolute paid amount for an expense and
// returns the updated record. The amount must stay within
// [0, expense.Amount].
func (s *Service) ApplyPayment(ctx context.Context, id uuid.UUID, paid decimal.Decimal) (*FixedExpense, error) {
	e, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if paid.IsNegative() || paid.GreaterThan(e.Amount) {
		return nil, ErrInvalidPayment
	}

	e.PaidAmount = paid

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}
