package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/recurring"
)

type templateResponse struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	BaseAmount       decimal.Decimal     `json:"base_amount"`
	Frequency        recurring.Frequency `json:"frequency"`
	IntervalValue    int                 `json:"interval_value"`
	StartDate        dates.Date          `json:"start_date"`
	NextDueDate      dates.Date          `json:"next_due_date"`
	Category         string              `json:"category"`
	AccountID        *uuid.UUID          `json:"account_id,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	IsActive         bool                `json:"is_active"`
	IsVariableAmount bool                `json:"is_variable_amount"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func toResponse(t *recurring.Template) templateResponse {
	return templateResponse{
		ID:               t.ID,
		Name:             t.Name,
		BaseAmount:       t.BaseAmount,
		Frequency:        t.Frequency,
		IntervalValue:    t.IntervalValue,
		StartDate:        t.StartDate,
		NextDueDate:      t.NextDueDate,
		Category:         t.Category,
		AccountID:        t.AccountID,
		Notes:            t.Notes,
		IsActive:         t.IsActive,
		IsVariableAmount: t.IsVariableAmount,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toResponseList(templates []*recurring.Template) []templateResponse {
	resp := make([]templateResponse, len(templates))
	for i, t := range templates {
		resp[i] = toResponse(t)
	}

	return resp
}

type generatedResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Amount              decimal.Decimal `json:"amount"`
	DueDate             dates.Date      `json:"due_date"`
	Category            string          `json:"category"`
	RecurringTemplateID *uuid.UUID      `json:"recurring_template_id,omitempty"`
}

func toGeneratedResponse(e *expense.FixedExpense) generatedResponse {
	return generatedResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Amount:              e.Amount,
		DueDate:             e.DueDate,
		Category:            e.Category,
		RecurringTemplateID: e.RecurringTemplateID,
	}
}
