package pending

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

var ErrNotFound = errors.New("pending transaction not found")

// Transaction is a planned movement that has not cleared yet. Amounts
// are signed: negative for money leaving the account, positive for
// money arriving.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        dates.Date
}
