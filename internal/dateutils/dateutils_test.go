package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDiffDays(t *testing.T) {
	tests := []struct {
		name     string
		a        time.Time
		b        time.Time
		expected int
	}{
		{"Same day", date(2024, time.June, 20), date(2024, time.June, 20), 0},
		{"Next day", date(2024, time.June, 20), date(2024, time.June, 21), 1},
		{"Negative", date(2024, time.June, 21), date(2024, time.June, 20), -1},
		{"Across month", date(2024, time.January, 31), date(2024, time.February, 2), 2},
		{"Leap day", date(2024, time.February, 28), date(2024, time.March, 1), 2},
		{"Non-leap year", date(2023, time.February, 28), date(2023, time.March, 1), 1},
		{"Full year", date(2023, time.January, 1), date(2024, time.January, 1), 365},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DiffDays(tc.a, tc.b))
		})
	}
}

func TestDiffDaysIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.June, 20, 23, 59, 0, 0, time.Local)
	b := time.Date(2024, time.June, 21, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, DiffDays(a, b))
	assert.Equal(t, -1, DiffDays(b, a))
}

func TestClampBillingDay(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"In range", 15, 15},
		{"Lower bound", 1, 1},
		{"Upper bound", 31, 31},
		{"Below range", 0, 1},
		{"Negative", -5, 1},
		{"Above range", 42, 31},
		{"Rounds down", 15.4, 15},
		{"Rounds up", 15.6, 16},
		{"Rounds then clamps", 31.7, 31},
		{"NaN", nan(), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClampBillingDay(tc.input))
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestStartOfMonth(t *testing.T) {
	assert.Equal(t, date(2024, time.June, 1), StartOfMonth(time.Date(2024, time.June, 20, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, date(2024, time.February, 1), StartOfMonth(date(2024, time.February, 29)))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"31-day month", date(2024, time.January, 10), date(2024, time.January, 31)},
		{"Leap February", date(2024, time.February, 10), date(2024, time.February, 29)},
		{"Non-leap February", date(2023, time.February, 10), date(2023, time.February, 28)},
		{"30-day month", date(2024, time.April, 1), date(2024, time.April, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EndOfMonth(tc.input))
		})
	}
}

func TestMidnight(t *testing.T) {
	got := Midnight(time.Date(2024, time.June, 20, 18, 30, 12, 99, time.Local))
	assert.Equal(t, date(2024, time.June, 20), got)
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(date(2024, time.June, 20))
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.True(t, got.Before(date(2024, time.June, 21)))
}

func TestCompareDates(t *testing.T) {
	morning := time.Date(2024, time.June, 20, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.June, 20, 22, 0, 0, 0, time.Local)

	assert.Equal(t, 0, CompareDates(morning, evening))
	assert.Equal(t, -1, CompareDates(morning, date(2024, time.June, 21)))
	assert.Equal(t, 1, CompareDates(date(2024, time.June, 21), evening))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		a        time.Time
		b        time.Time
		expected int
	}{
		{"Same month", date(2024, time.June, 1), date(2024, time.June, 30), 0},
		{"Adjacent months", date(2024, time.June, 30), date(2024, time.July, 1), 1},
		{"Across years", date(2023, time.January, 15), date(2024, time.June, 20), 17},
		{"Negative", date(2024, time.June, 1), date(2024, time.March, 31), -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthsBetween(tc.a, tc.b))
		})
	}
}
