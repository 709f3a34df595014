package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/account"
	"github.com/MrJamesThe3rd/payday/internal/dates"
)

type creditCardResponse struct {
	CreditLimit          *decimal.Decimal `json:"credit_limit,omitempty"`
	InterestRate         *decimal.Decimal `json:"interest_rate,omitempty"`
	MinimumPayment       *decimal.Decimal `json:"minimum_payment,omitempty"`
	DueDate              *dates.Date      `json:"due_date,omitempty"`
	StatementClosingDate *dates.Date      `json:"statement_closing_date,omitempty"`
	AvailableCredit      *decimal.Decimal `json:"available_credit,omitempty"`
}

type accountResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Type           account.Type        `json:"type"`
	CurrentBalance decimal.Decimal     `json:"current_balance"`
	IsDefault      bool                `json:"is_default"`
	CreditCard     *creditCardResponse `json:"credit_card,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func toResponse(a *account.Account) accountResponse {
	resp := accountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		CurrentBalance: a.CurrentBalance,
		IsDefault:      a.IsDefault,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.CreditCard != nil {
		resp.CreditCard = &creditCardResponse{
			CreditLimit:          a.CreditCard.CreditLimit,
			InterestRate:         a.CreditCard.InterestRate,
			MinimumPayment:       a.CreditCard.MinimumPayment,
			DueDate:              a.CreditCard.DueDate,
			StatementClosingDate: a.CreditCard.StatementClosingDate,
			AvailableCredit:      a.AvailableCredit(),
		}
	}

	return resp
}

func toResponseList(accounts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	return resp
}
