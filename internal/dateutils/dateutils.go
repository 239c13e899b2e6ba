// Package dateutils provides the calendar arithmetic used by the
// recurrence and spending engine. Every comparison normalizes to local
// midnight first so that time-of-day never affects a result.
package dateutils

import (
	"math"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO   = "2006-01-02"
	DateLayoutFull  = "2006-01-02 15:04:05"
	DateLayoutMonth = "Jan 2006"
)

// Midnight truncates a time to local midnight, keeping its location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the day containing t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DiffDays returns the number of whole days from a to b after
// normalizing both to midnight. The result is negative when b is
// before a.
func DiffDays(a, b time.Time) int {
	am := Midnight(a)
	bm := Midnight(b)
	// Round rather than truncate so DST transitions (23h/25h days)
	// still count as one day.
	return int(math.Round(bm.Sub(am).Hours() / 24))
}

// MonthsBetween returns the number of calendar-month boundaries
// crossed from a to b, ignoring the day of month. Negative when b is
// in an earlier month than a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// ClampBillingDay sanitizes a user-entered billing day: it rounds to
// the nearest integer and clamps into [1, 31]. Days beyond a month's
// length are left to time.Date normalization, which rolls them into
// the following month.
func ClampBillingDay(day float64) int {
	if math.IsNaN(day) {
		return 1
	}
	n := int(math.Round(day))
	if n < 1 {
		return 1
	}
	if n > 31 {
		return 31
	}
	return n
}

// CompareDates compares two dates by day, ignoring time of day:
//
//	-1 if a is before b
//	 0 if a and b fall on the same day
//	 1 if a is after b
func CompareDates(a, b time.Time) int {
	am := Midnight(a)
	bm := Midnight(b)
	switch {
	case am.Before(bm):
		return -1
	case am.After(bm):
		return 1
	default:
		return 0
	}
}

// MaxDate returns the later of two dates.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// MinDate returns the earlier of two dates.
func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
