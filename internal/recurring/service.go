package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	CreateTemplate(ctx context.Context, t *Template) error
	GetTemplate(ctx context.Context, id uuid.UUID) (*Template, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]*Template, error)
	UpdateTemplate(ctx context.Context, t *Template) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	// ListDue returns active templates whose cursor has reached today.
	ListDue(ctx context.Context, today dates.Date) ([]*Template, error)
}

// ExpenseStore is the slice of the expense repository the engine needs
// to materialize instances and link conversions.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e *expense.FixedExpense) error
	ExistsForTemplate(ctx context.Context, templateID uuid.UUID, dueDate dates.Date) (bool, error)
	GetExpense(ctx context.Context, id uuid.UUID) (*expense.FixedExpense, error)
	UpdateExpense(ctx context.Context, e *expense.FixedExpense) error
}

type Service struct {
	repo     Repository
	expenses ExpenseStore
}

func NewService(repo Repository, expenses ExpenseStore) *Service {
	return &Service{repo: repo, expenses: expenses}
}

type CreateParams struct {
	Name             string
	BaseAmount       decimal.Decimal
	Frequency        Frequency
	IntervalValue    int
	StartDate        dates.Date
	Category         string
	AccountID        *uuid.UUID
	Notes            string
	IsVariableAmount bool
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("template name is required")
	}

	if !p.BaseAmount.IsPositive() {
		return fmt.Errorf("template amount must be positive, got %s", p.BaseAmount)
	}

	if p.StartDate.IsZero() {
		return fmt.Errorf("template start date is required")
	}

	if !p.Frequency.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, p.Frequency)
	}

	if p.Frequency == FrequencyCustom && p.IntervalValue < 1 {
		return fmt.Errorf("custom frequency requires an interval of at least one month, got %d", p.IntervalValue)
	}

	return nil
}

// Create validates everything before any write. The new template's
// cursor starts at its start date.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Template, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	t := &Template{
		Name:             params.Name,
		BaseAmount:       params.BaseAmount,
		Frequency:        params.Frequency,
		IntervalValue:    params.Frequency.Months(params.IntervalValue),
		StartDate:        params.StartDate,
		NextDueDate:      params.StartDate,
		Category:         params.Category,
		AccountID:        params.AccountID,
		Notes:            params.Notes,
		IsActive:         true,
		IsVariableAmount: params.IsVariableAmount,
	}

	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	return s.repo.GetTemplate(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Template, error) {
	return s.repo.ListTemplates(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, t *Template) error {
	if !t.Frequency.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, t.Frequency)
	}

	if t.NextDueDate.Before(t.StartDate) {
		return fmt.Errorf("next due date %s precedes start date %s", t.NextDueDate, t.StartDate)
	}

	return s.repo.UpdateTemplate(ctx, t)
}

// Delete removes the template only. Instances it generated keep their
// back-reference and their history; deletion never cascades.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, id)
}

func (s *Service) DueTemplates(ctx context.Context, today dates.Date) ([]*Template, error) {
	return s.repo.ListDue(ctx, today)
}

// GenerateNext materializes the instance at the template's cursor and
// advances the cursor by one interval. Inactive templates are a no-op.
//
// Generation is at-most-once per cursor value: if an instance for
// (template, cursor date) already exists — a previous run persisted the
// expense but died before advancing the cursor — the instance write is
// skipped and only the cursor advances. The cursor is never advanced
// before the instance write has been acknowledged.
func (s *Service) GenerateNext(ctx context.Context, templateID uuid.UUID) (*expense.FixedExpense, error) {
	t, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if !t.IsActive {
		return nil, nil
	}

	due := t.NextDueDate

	exists, err := s.expenses.ExistsForTemplate(ctx, t.ID, due)
	if err != nil {
		return nil, fmt.Errorf("checking existing instance: %w", err)
	}

	var created *expense.FixedExpense

	if !exists {
		link := t.ID
		created = &expense.FixedExpense{
			Name:                t.Name,
			Amount:              t.BaseAmount,
			PaidAmount:          decimal.Zero,
			DueDate:             due,
			Category:            t.Category,
			AccountID:           t.AccountID,
			RecurringTemplateID: &link,
		}

		if err := s.expenses.CreateExpense(ctx, created); err != nil {
			return nil, fmt.Errorf("creating instance: %w", err)
		}
	}

	t.NextDueDate = t.NextOccurrenceAfter(due)

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return created, fmt.Errorf("advancing cursor: %w", err)
	}

	return created, nil
}

// GenerationResult reports one template's outcome from a generation
// sweep. ExpenseID is nil when the instance already existed.
type GenerationResult struct {
	TemplateID uuid.UUID
	ExpenseID  *uuid.UUID
	Err        error
}

// AutoGenerateDue generates one occurrence for every template whose
// cursor has reached today. A failing template never blocks its
// siblings; each result carries its own error. Templates are processed
// sequentially so each cursor advance is persisted before the next
// template is considered.
func (s *Service) AutoGenerateDue(ctx context.Context, today dates.Date) ([]GenerationResult, error) {
	due, err := s.repo.ListDue(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("listing due templates: %w", err)
	}

	results := make([]GenerationResult, 0, len(due))

	for _, t := range due {
		res := GenerationResult{TemplateID: t.ID}

		created, err := s.GenerateNext(ctx, t.ID)
		if err != nil {
			res.Err = err
		} else if created != nil {
			res.ExpenseID = &created.ID
		}

		results = append(results, res)
	}

	return results, nil
}

type ConvertParams struct {
	Frequency        Frequency
	IntervalValue    int
	Notes            string
	IsVariableAmount bool
}

// ConvertToRecurring builds a template from an existing expense and
// links the expense to it. The original expense is preserved as-is; the
// cursor starts one interval past its due date so the next due check
// produces the first future occurrence rather than a duplicate.
func (s *Service) ConvertToRecurring(ctx context.Context, expenseID uuid.UUID, params ConvertParams) (*Template, error) {
	if !params.Frequency.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, params.Frequency)
	}

	if params.Frequency == FrequencyCustom && params.IntervalValue < 1 {
		return nil, fmt.Errorf("custom frequency requires an interval of at least one month, got %d", params.IntervalValue)
	}

	e, err := s.expenses.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	interval := params.Frequency.Months(params.IntervalValue)

	t := &Template{
		Name:             e.Name,
		BaseAmount:       e.Amount,
		Frequency:        params.Frequency,
		IntervalValue:    interval,
		StartDate:        e.DueDate,
		NextDueDate:      e.DueDate.AddMonths(interval),
		Category:         e.Category,
		AccountID:        e.AccountID,
		Notes:            params.Notes,
		IsActive:         true,
		IsVariableAmount: params.IsVariableAmount,
	}

	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	e.RecurringTemplateID = &t.ID

	if err := s.expenses.UpdateExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("linking expense to template: %w", err)
	}

	return t, nil
}
