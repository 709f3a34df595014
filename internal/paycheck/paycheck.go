package paycheck

import (
	"github.com/MrJamesThe3rd/payday/internal/dates"
)

// PeriodDays is the paycheck cadence. Payday models a biweekly rhythm
// only; other cadences would hang a cadence field off Settings.
const PeriodDays = 14

// Settings holds the reference paycheck the projection is anchored to.
type Settings struct {
	LastPaycheckDate *dates.Date
}

// Projection is the pair of upcoming pay dates relative to a given day.
type Projection struct {
	NextPayDate           dates.Date
	FollowingPayDate      dates.Date
	DaysUntilNextPay      int
	DaysUntilFollowingPay int
}

// Project computes the next and following pay dates for today. It
// returns nil when no reference paycheck has been recorded.
//
// NextPayDate is the smallest date strictly after today congruent to
// the reference date mod 14. FollowingPayDate starts one period later
// and advances independently; if the two loops land on the same date it
// is bumped one more period so Following > Next always holds.
func Project(s Settings, today dates.Date) *Projection {
	if s.LastPaycheckDate == nil {
		return nil
	}

	last := *s.LastPaycheckDate

	next := last.AddDays(PeriodDays)
	for !next.After(today) {
		next = next.AddDays(PeriodDays)
	}

	following := last.AddDays(2 * PeriodDays)
	for !following.After(today) {
		following = following.AddDays(PeriodDays)
	}

	if !following.After(next) {
		following = following.AddDays(PeriodDays)
	}

	return &Projection{
		NextPayDate:           next,
		FollowingPayDate:      following,
		DaysUntilNextPay:      dates.DaysBetween(today, next),
		DaysUntilFollowingPay: dates.DaysBetween(today, following),
	}
}
