package overview

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/audit"
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/overview"
)

type paycheckResponse struct {
	NextPayDate           dates.Date `json:"next_pay_date"`
	FollowingPayDate      dates.Date `json:"following_pay_date"`
	DaysUntilNextPay      int        `json:"days_until_next_pay"`
	DaysUntilFollowingPay int        `json:"days_until_following_pay"`
}

type expenseViewResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Remaining  decimal.Decimal `json:"remaining"`
	DueDate    dates.Date      `json:"due_date"`
	Category   string          `json:"category"`
	Status     expense.Status  `json:"status"`
}

type summaryResponse struct {
	PayThisWeek       decimal.Decimal `json:"pay_this_week"`
	PayNextCheck      decimal.Decimal `json:"pay_next_check"`
	PayFollowingCheck decimal.Decimal `json:"pay_following_check"`
	Overdue           decimal.Decimal `json:"overdue"`
}

type recurringHintResponse struct {
	TemplateID  uuid.UUID       `json:"template_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	NextDueDate dates.Date      `json:"next_due_date"`
}

type viewResponse struct {
	Today            dates.Date              `json:"today"`
	Paycheck         *paycheckResponse       `json:"paycheck,omitempty"`
	Expenses         []expenseViewResponse   `json:"expenses"`
	Summary          summaryResponse         `json:"summary"`
	Upcoming         []recurringHintResponse `json:"upcoming_recurring"`
	PromptCycleReset bool                    `json:"prompt_cycle_reset"`
}

func toViewResponse(v *overview.View) viewResponse {
	resp := viewResponse{
		Today:            v.Today,
		Expenses:         make([]expenseViewResponse, 0, len(v.Expenses)),
		PromptCycleReset: v.PromptCycleReset,
		Summary: summaryResponse{
			PayThisWeek:       v.Summary.PayThisWeek,
			PayNextCheck:      v.Summary.PayNextCheck,
			PayFollowingCheck: v.Summary.PayFollowingCheck,
			Overdue:           v.Summary.Overdue,
		},
	}

	if v.Paycheck != nil {
		resp.Paycheck = &paycheckResponse{
			NextPayDate:           v.Paycheck.NextPayDate,
			FollowingPayDate:      v.Paycheck.FollowingPayDate,
			DaysUntilNextPay:      v.Paycheck.DaysUntilNextPay,
			DaysUntilFollowingPay: v.Paycheck.DaysUntilFollowingPay,
		}
	}

	for _, h := range v.Upcoming {
		resp.Upcoming = append(resp.Upcoming, recurringHintResponse{
			TemplateID:  h.TemplateID,
			Name:        h.Name,
			Amount:      h.Amount,
			NextDueDate: h.NextDueDate,
		})
	}

	for _, e := range v.Expenses {
		resp.Expenses = append(resp.Expenses, expenseViewResponse{
			ID:         e.ID,
			Name:       e.Name,
			Amount:     e.Amount,
			PaidAmount: e.PaidAmount,
			Remaining:  e.Remaining(),
			DueDate:    e.DueDate,
			Category:   e.Category,
			Status:     e.Status,
		})
	}

	return resp
}

type auditResponse struct {
	ID          uuid.UUID      `json:"id"`
	ActionType  audit.Action   `json:"action_type"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Description string         `json:"description,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

func toAuditResponseList(entries []*audit.Entry) []auditResponse {
	resp := make([]auditResponse, len(entries))
	for i, e := range entries {
		resp[i] = auditResponse{
			ID:          e.ID,
			ActionType:  e.ActionType,
			EntityType:  e.EntityType,
			EntityID:    e.EntityID,
			Description: e.Description,
			Details:     e.Details,
			Timestamp:   e.Timestamp,
		}
	}

	return resp
}
