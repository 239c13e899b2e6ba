package spending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDateRange(t *testing.T) {
	now := time.Date(2024, time.June, 20, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name          string
		preset        string
		expectedStart time.Time
		expectedLabel string
	}{
		{"Six months", PresetSixMonths, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local), "Last 6 Months"},
		{"Year to date", PresetYTD, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), "Year to Date"},
		{"Full year", PresetYear, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), "This Year"},
		{"All time is bounded", PresetAllTime, time.Date(2014, time.January, 1, 0, 0, 0, 0, time.Local), "All Time"},
		{"Unknown preset falls back", "bogus", time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local), "Last 6 Months"},
		{"Empty preset falls back", "", time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local), "Last 6 Months"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := GetDateRange(tc.preset, now)
			assert.Equal(t, tc.expectedStart, r.Start)
			assert.Equal(t, tc.expectedLabel, r.Label)
			assert.False(t, r.End.Before(r.Start))
		})
	}
}

func TestGetDateRangeSixMonthsMonthEndReference(t *testing.T) {
	// A day-31 reference must not drift through April's normalization:
	// six months back from October is April, not May.
	now := time.Date(2024, time.October, 31, 9, 0, 0, 0, time.Local)

	r := GetDateRange(PresetSixMonths, now)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local), r.Start)
}

func TestGetDateRangeEnds(t *testing.T) {
	now := time.Date(2024, time.June, 20, 14, 30, 0, 0, time.Local)

	for _, preset := range []string{PresetSixMonths, PresetYTD, PresetAllTime} {
		r := GetDateRange(preset, now)
		assert.Equal(t, 20, r.End.Day(), "%s must end on the reference day", preset)
		assert.Equal(t, time.June, r.End.Month())
		assert.Equal(t, 23, r.End.Hour())
	}

	year := GetDateRange(PresetYear, now)
	assert.Equal(t, time.December, year.End.Month())
	assert.Equal(t, 31, year.End.Day())
}

func TestGetDateRangeIsDeterministic(t *testing.T) {
	now := time.Date(2024, time.June, 20, 14, 30, 0, 0, time.Local)
	assert.Equal(t, GetDateRange(PresetSixMonths, now), GetDateRange(PresetSixMonths, now))
}
