package recurring

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

var (
	ErrNotFound         = errors.New("recurring template not found")
	ErrInvalidFrequency = errors.New("invalid recurring frequency")
)

// Frequency is the cadence of a recurring template. Sub-monthly
// cadences are not supported; custom cadences are whole months.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyBiannually Frequency = "biannually"
	FrequencyAnnually   Frequency = "annually"
	FrequencyCustom     Frequency = "custom"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyBiannually, FrequencyAnnually, FrequencyCustom:
		return true
	}

	return false
}

// Months resolves the cadence to whole months. Custom frequencies carry
// their own interval on the template.
func (f Frequency) Months(customInterval int) int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyBiannually:
		return 6
	case FrequencyAnnually:
		return 12
	case FrequencyCustom:
		return customInterval
	}

	return 0
}

// Template describes a recurring expense. The template owns the
// NextDueDate cursor: it points at the next instance the template will
// produce and only ever advances.
type Template struct {
	ID               uuid.UUID
	Name             string
	BaseAmount       decimal.Decimal
	Frequency        Frequency
	IntervalValue    int
	StartDate        dates.Date
	NextDueDate      dates.Date
	Category         string
	AccountID        *uuid.UUID
	Notes            string
	IsActive         bool
	IsVariableAmount bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (t *Template) IntervalMonths() int {
	return t.Frequency.Months(t.IntervalValue)
}

// NextOccurrenceAfter returns the first occurrence strictly after d.
// Occurrences are anchored to the start date, so a month-end start
// keeps its day (Jan 31 → Feb 28 → Mar 31) instead of drifting to the
// clamped day forever.
func (t *Template) NextOccurrenceAfter(d dates.Date) dates.Date {
	interval := t.IntervalMonths()

	for k := interval; ; k += interval {
		if next := t.StartDate.AddMonths(k); next.After(d) {
			return next
		}
	}
}

// UpcomingDates projects the template's next n occurrence dates without
// persisting anything. Used for UI hints.
func (t *Template) UpcomingDates(n int) []dates.Date {
	if n <= 0 {
		return nil
	}

	out := make([]dates.Date, 0, n)
	next := t.NextDueDate

	for range n {
		out = append(out, next)
		next = t.NextOccurrenceAfter(next)
	}

	return out
}
