package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

var (
	ErrNotFound    = errors.New("account not found")
	ErrInvalidType = errors.New("invalid account type")
	ErrInUse       = errors.New("account is referenced by other records")
)

type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeCreditCard Type = "credit_card"
	TypeOther      Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeChecking, TypeSavings, TypeCreditCard, TypeOther:
		return true
	}

	return false
}

// CreditCardDetails only exist on credit card accounts. All fields are
// optional; a card can be tracked with nothing but a balance.
type CreditCardDetails struct {
	CreditLimit          *decimal.Decimal
	InterestRate         *decimal.Decimal
	MinimumPayment       *decimal.Decimal
	DueDate              *dates.Date
	StatementClosingDate *dates.Date
}

// Account is a place money lives or is owed. Exactly one account is the
// default target for new expenses once any account exists.
type Account struct {
	ID             uuid.UUID
	Name           string
	Type           Type
	CurrentBalance decimal.Decimal
	IsDefault      bool
	CreditCard     *CreditCardDetails
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AvailableCredit is the headroom left on a credit card, if the card
// has a limit. The balance on a card account is the amount owed.
func (a *Account) AvailableCredit() *decimal.Decimal {
	if a.Type != TypeCreditCard || a.CreditCard == nil || a.CreditCard.CreditLimit == nil {
		return nil
	}

	avail := a.CreditCard.CreditLimit.Sub(a.CurrentBalance)

	return &avail
}
