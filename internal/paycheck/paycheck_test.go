package paycheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

func settingsFor(s string) paycheck.Settings {
	d := dates.MustParse(s)
	return paycheck.Settings{LastPaycheckDate: &d}
}

func TestProject(t *testing.T) {
	type testCase struct {
		name          string
		lastPaycheck  string
		today         string
		wantNext      string
		wantFollowing string
		wantDaysNext  int
	}

	tests := []testCase{
		{
			name:          "Basic",
			lastPaycheck:  "2025-01-03",
			today:         "2025-01-10",
			wantNext:      "2025-01-17",
			wantFollowing: "2025-01-31",
			wantDaysNext:  7,
		},
		{
			name: "LongGap",
			// Reference paycheck more than half a year stale; the
			// projection catches up to the biweekly grid.
			lastPaycheck:  "2024-06-01",
			today:         "2025-01-10",
			wantNext:      "2025-01-11",
			wantFollowing: "2025-01-25",
			wantDaysNext:  1,
		},
		{
			name: "TodayIsPayday",
			// A pay date equal to today is not "next"; next is strictly after.
			lastPaycheck:  "2025-01-03",
			today:         "2025-01-17",
			wantNext:      "2025-01-31",
			wantFollowing: "2025-02-14",
			wantDaysNext:  14,
		},
		{
			name: "CollisionBumpsFollowing",
			// Both advancement loops land on the same date when today
			// sits exactly one period past the reference; following is
			// bumped so it stays strictly after next.
			lastPaycheck:  "2025-01-03",
			today:         "2025-01-18",
			wantNext:      "2025-01-31",
			wantFollowing: "2025-02-14",
			wantDaysNext:  13,
		},
		{
			name:          "YearBoundary",
			lastPaycheck:  "2024-12-27",
			today:         "2024-12-31",
			wantNext:      "2025-01-10",
			wantFollowing: "2025-01-24",
			wantDaysNext:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := dates.MustParse(tt.today)

			proj := paycheck.Project(settingsFor(tt.lastPaycheck), today)
			require.NotNil(t, proj)

			assert.Equal(t, tt.wantNext, proj.NextPayDate.String())
			assert.Equal(t, tt.wantFollowing, proj.FollowingPayDate.String())
			assert.Equal(t, tt.wantDaysNext, proj.DaysUntilNextPay)
			assert.Equal(t, dates.DaysBetween(today, proj.FollowingPayDate), proj.DaysUntilFollowingPay)

			// Structural invariants.
			assert.True(t, proj.NextPayDate.After(today))
			assert.True(t, proj.FollowingPayDate.After(proj.NextPayDate))
			assert.Zero(t, dates.DaysBetween(proj.NextPayDate, proj.FollowingPayDate)%paycheck.PeriodDays)
		})
	}
}

func TestProject_NoReferenceDate(t *testing.T) {
	assert.Nil(t, paycheck.Project(paycheck.Settings{}, dates.MustParse("2025-01-10")))
}

func TestProject_Idempotent(t *testing.T) {
	settings := settingsFor("2025-01-03")
	today := dates.MustParse("2025-01-10")

	first := paycheck.Project(settings, today)
	second := paycheck.Project(settings, today)

	assert.Equal(t, first, second)
}
