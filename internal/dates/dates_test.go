package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/payday/internal/dates"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"2025-01-03",
		"2024-02-29",
		"1999-12-31",
		"2025-06-01",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			d, err := dates.Parse(in)
			require.NoError(t, err)
			assert.Equal(t, in, d.String())

			again, err := dates.Parse(d.String())
			require.NoError(t, err)
			assert.True(t, d.Equal(again))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "2025-13-01", "01/03/2025", "2025-1-3"} {
		t.Run(in, func(t *testing.T) {
			_, err := dates.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	type testCase struct {
		name string
		from string
		days int
		want string
	}

	tests := []testCase{
		{name: "WithinMonth", from: "2025-01-03", days: 14, want: "2025-01-17"},
		{name: "MonthRollover", from: "2025-01-20", days: 14, want: "2025-02-03"},
		{name: "YearRollover", from: "2024-12-27", days: 14, want: "2025-01-10"},
		{name: "LeapFebruary", from: "2024-02-28", days: 1, want: "2024-02-29"},
		{name: "Negative", from: "2025-01-10", days: -10, want: "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates.MustParse(tt.from).AddDays(tt.days)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_AddMonths(t *testing.T) {
	type testCase struct {
		name   string
		from   string
		months int
		want   string
	}

	tests := []testCase{
		{name: "Plain", from: "2025-01-15", months: 1, want: "2025-02-15"},
		{name: "ClampNonLeap", from: "2025-01-31", months: 1, want: "2025-02-28"},
		{name: "ClampLeap", from: "2024-01-31", months: 1, want: "2024-02-29"},
		{name: "NoStickyClamp", from: "2025-02-28", months: 1, want: "2025-03-28"},
		{name: "ClampThirtyDayMonth", from: "2025-03-31", months: 1, want: "2025-04-30"},
		{name: "Quarterly", from: "2025-01-31", months: 3, want: "2025-04-30"},
		{name: "Annual", from: "2024-02-29", months: 12, want: "2025-02-28"},
		{name: "YearBoundary", from: "2025-11-30", months: 2, want: "2026-01-30"},
		{name: "Backwards", from: "2025-03-31", months: -1, want: "2025-02-28"},
		{name: "BackwardsAcrossYear", from: "2025-01-15", months: -2, want: "2024-11-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates.MustParse(tt.from).AddMonths(tt.months)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := dates.MustParse("2025-01-10")
	b := dates.MustParse("2025-01-17")

	assert.Equal(t, 7, dates.DaysBetween(a, b))
	assert.Equal(t, -7, dates.DaysBetween(b, a))
	assert.Equal(t, 0, dates.DaysBetween(a, a))

	// Across a leap day.
	assert.Equal(t, 366, dates.DaysBetween(dates.MustParse("2024-01-01"), dates.MustParse("2025-01-01")))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, dates.SameMonth(dates.MustParse("2025-01-01"), dates.MustParse("2025-01-31")))
	assert.False(t, dates.SameMonth(dates.MustParse("2025-01-31"), dates.MustParse("2025-02-01")))
	// Same month number, different year.
	assert.False(t, dates.SameMonth(dates.MustParse("2024-01-15"), dates.MustParse("2025-01-15")))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Due dates.Date `json:"due"`
	}

	out, err := json.Marshal(payload{Due: dates.MustParse("2025-01-17")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2025-01-17"}`, string(out))

	var in payload

	require.NoError(t, json.Unmarshal([]byte(`{"due":"2025-01-17"}`), &in))
	assert.Equal(t, "2025-01-17", in.Due.String())

	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &in))
	assert.True(t, in.Due.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d dates.Date

	require.NoError(t, d.Scan(time.Date(2025, time.January, 17, 15, 4, 5, 0, time.Local)))
	assert.Equal(t, "2025-01-17", d.String())

	require.NoError(t, d.Scan("2025-02-01"))
	assert.Equal(t, "2025-02-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestFixedClock(t *testing.T) {
	today := dates.MustParse("2025-01-10")
	assert.True(t, dates.Fixed(today).Today().Equal(today))
}
