package spending

import (
	"time"

	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

// Named reporting presets understood by GetDateRange.
const (
	PresetSixMonths = "6months"
	PresetYTD       = "ytd"
	PresetYear      = "year"
	PresetAllTime   = "alltime"
)

// Presets lists the valid preset names.
var Presets = []string{PresetSixMonths, PresetYTD, PresetYear, PresetAllTime}

// allTimeYearsBack caps the "all time" lookback. Even "everything"
// must stay a bounded window.
const allTimeYearsBack = 10

// GetDateRange computes the reporting window for a named preset
// relative to now. Unknown preset names fall back to the six-month
// window rather than erroring, so a stale saved preference still
// renders a chart.
func GetDateRange(preset string, now time.Time) models.DateRange {
	switch preset {
	case PresetYTD:
		return models.DateRange{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   dateutils.EndOfDay(now),
			Label: "Year to Date",
		}
	case PresetYear:
		return models.DateRange{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   dateutils.EndOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())),
			Label: "This Year",
		}
	case PresetAllTime:
		return models.DateRange{
			Start: time.Date(now.Year()-allTimeYearsBack, time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   dateutils.EndOfDay(now),
			Label: "All Time",
		}
	default:
		// Step back from the first of the month, not from now: AddDate
		// on a day-29..31 reference normalizes through short months and
		// would land one month late.
		return models.DateRange{
			Start: dateutils.StartOfMonth(now).AddDate(0, -6, 0),
			End:   dateutils.EndOfDay(now),
			Label: "Last 6 Months",
		}
	}
}
