package overview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/audit"
	"github.com/MrJamesThe3rd/payday/internal/cycle"
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
	"github.com/MrJamesThe3rd/payday/internal/recurring"
)

// ErrConfirmationRequired is returned when a cycle reset is requested
// without explicit confirmation.
var ErrConfirmationRequired = errors.New("cycle reset requires confirmation")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=overview

// Projector provides the paycheck projection for a given day.
type Projector interface {
	Project(ctx context.Context, today dates.Date) (*paycheck.Projection, error)
}

// ExpenseReader lists expenses and applies payments.
type ExpenseReader interface {
	List(ctx context.Context) ([]*expense.FixedExpense, error)
	ApplyPayment(ctx context.Context, id uuid.UUID, paid decimal.Decimal) (*expense.FixedExpense, error)
}

// Generator runs the recurring generation sweep and exposes the active
// templates for the upcoming hints.
type Generator interface {
	AutoGenerateDue(ctx context.Context, today dates.Date) ([]recurring.GenerationResult, error)
	List(ctx context.Context, activeOnly bool) ([]*recurring.Template, error)
}

// CycleStarter resets payment progress for a new cycle.
type CycleStarter interface {
	StartNewCycle(ctx context.Context, cycleMonth dates.Date) error
}

// AuditRecorder appends one entry to the audit trail.
type AuditRecorder interface {
	Record(ctx context.Context, e audit.Entry) error
}

// Service is the read-and-act surface the handlers talk to. It owns the
// load sequence: project paychecks, sweep recurring templates, then
// classify everything against the fresh state.
type Service struct {
	paychecks Projector
	expenses  ExpenseReader
	generator Generator
	cycles    CycleStarter
	auditor   AuditRecorder
	clock     dates.Clock
	logger    *slog.Logger
}

func NewService(
	paychecks Projector,
	expenses ExpenseReader,
	generator Generator,
	cycles CycleStarter,
	auditor AuditRecorder,
	clock dates.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		paychecks: paychecks,
		expenses:  expenses,
		generator: generator,
		cycles:    cycles,
		auditor:   auditor,
		clock:     clock,
		logger:    logger,
	}
}

// ExpenseView pairs an expense with its classified status.
type ExpenseView struct {
	*expense.FixedExpense
	Status expense.Status
}

// RecurringHint announces the next occurrence of an active template.
type RecurringHint struct {
	TemplateID  uuid.UUID
	Name        string
	Amount      decimal.Decimal
	NextDueDate dates.Date
}

// View is one consistent snapshot of the whole engine.
type View struct {
	Today            dates.Date
	Paycheck         *paycheck.Projection
	Expenses         []ExpenseView
	Summary          expense.Summary
	Upcoming         []RecurringHint
	PromptCycleReset bool
}

// Load assembles the view for today. The recurring sweep runs first so
// freshly generated instances are classified in the same pass; a sweep
// failure degrades to a warning because a stale view beats no view.
// Loading mutates nothing besides the sweep, so repeated loads on the
// same day return the same view.
func (s *Service) Load(ctx context.Context) (*View, error) {
	today := s.clock.Today()

	proj, err := s.paychecks.Project(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("projecting paychecks: %w", err)
	}

	results, err := s.generator.AutoGenerateDue(ctx, today)
	if err != nil {
		s.logger.Warn("recurring sweep failed", "error", err)
	}

	for _, r := range results {
		if r.Err != nil {
			s.logger.Warn("recurring generation failed", "template_id", r.TemplateID, "error", r.Err)
		}
	}

	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	view := &View{
		Today:            today,
		Paycheck:         proj,
		Expenses:         make([]ExpenseView, 0, len(expenses)),
		Summary:          expense.Summarize(expenses, proj, today),
		PromptCycleReset: cycle.ShouldPromptReset(expenses, proj, today),
	}

	for _, e := range expenses {
		view.Expenses = append(view.Expenses, ExpenseView{
			FixedExpense: e,
			Status:       expense.Classify(e, proj, today),
		})
	}

	// Hints are decorative; a failed template read degrades like the sweep.
	templates, err := s.generator.List(ctx, true)
	if err != nil {
		s.logger.Warn("listing recurring templates failed", "error", err)
	}

	for _, t := range templates {
		view.Upcoming = append(view.Upcoming, RecurringHint{
			TemplateID:  t.ID,
			Name:        t.Name,
			Amount:      t.BaseAmount,
			NextDueDate: t.NextDueDate,
		})
	}

	return view, nil
}

// ApplyPayment records a payment and audits it. The payment is the
// source of truth; a failed audit write is logged, not propagated.
func (s *Service) ApplyPayment(ctx context.Context, id uuid.UUID, paid decimal.Decimal) (*expense.FixedExpense, error) {
	e, err := s.expenses.ApplyPayment(ctx, id, paid)
	if err != nil {
		return nil, err
	}

	entry := audit.Entry{
		ActionType:  audit.ActionUpdate,
		EntityType:  "fixed_expense",
		EntityID:    e.ID.String(),
		Description: fmt.Sprintf("Payment of %s applied to %s", paid, e.Name),
		Details: map[string]any{
			"paid_amount": paid.String(),
			"amount":      e.Amount.String(),
		},
	}

	if err := s.auditor.Record(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "entity_id", e.ID, "error", err)
	}

	return e, nil
}

// StartNewCycle resets all payment progress. The caller must confirm;
// the reset is named after the month the next paycheck lands in, or the
// current month when no projection exists.
func (s *Service) StartNewCycle(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	today := s.clock.Today()

	cycleMonth := today

	proj, err := s.paychecks.Project(ctx, today)
	if err != nil {
		return fmt.Errorf("projecting paychecks: %w", err)
	}

	if proj != nil {
		cycleMonth = proj.NextPayDate
	}

	return s.cycles.StartNewCycle(ctx, cycleMonth)
}
