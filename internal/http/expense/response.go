package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
)

type expenseResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Amount              decimal.Decimal `json:"amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	Remaining           decimal.Decimal `json:"remaining"`
	DueDate             dates.Date      `json:"due_date"`
	Category            string          `json:"category"`
	AccountID           *uuid.UUID      `json:"account_id,omitempty"`
	RecurringTemplateID *uuid.UUID      `json:"recurring_template_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func toResponse(e *expense.FixedExpense) expenseResponse {
	return expenseResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Amount:              e.Amount,
		PaidAmount:          e.PaidAmount,
		Remaining:           e.Remaining(),
		DueDate:             e.DueDate,
		Category:            e.Category,
		AccountID:           e.AccountID,
		RecurringTemplateID: e.RecurringTemplateID,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func toResponseList(expenses []*expense.FixedExpense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}
