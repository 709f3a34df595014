package cycle

import (
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

// ShouldPromptReset reports whether the current expense cycle is over:
// every expense has reached a terminal status and the next paycheck
// falls in a later month than today. With no expenses, or no paycheck
// projection, there is no cycle to close.
func ShouldPromptReset(expenses []*expense.FixedExpense, proj *paycheck.Projection, today dates.Date) bool {
	if len(expenses) == 0 || proj == nil {
		return false
	}

	for _, e := range expenses {
		if !expense.Classify(e, proj, today).Terminal() {
			return false
		}
	}

	return proj.NextPayDate.After(today) && !dates.SameMonth(proj.NextPayDate, today)
}
