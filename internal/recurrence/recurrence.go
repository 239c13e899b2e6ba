// Package recurrence resolves billing occurrence dates from a
// subscription's anchor date and cycle. Occurrences are computed as
// "anchor plus k periods" so a given (anchor, cycle, k) always maps to
// the same date regardless of how it is reached.
package recurrence

import (
	"fmt"
	"time"

	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

// Anchor resolves the date recurrence is computed from. An explicit
// start date is authoritative; otherwise the creation timestamp
// anchors recurrence, with its day-of-month reconciled to the billing
// day for month-aligned cycles. The reconciliation deliberately does
// not apply when a start date is present (legacy behavior kept for
// records created before start dates were editable).
func Anchor(sub models.Subscription) time.Time {
	if sub.StartDate != nil {
		return dateutils.Midnight(*sub.StartDate)
	}

	anchor := dateutils.Midnight(sub.CreatedAt)
	if sub.Cycle.MonthAligned() && sub.BillingDay != 0 {
		day := dateutils.ClampBillingDay(float64(sub.BillingDay))
		// time.Date rolls day 31 in a short month into the next
		// month; that roll-over is accepted behavior.
		anchor = time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
	}
	return anchor
}

// NextOccurrence returns the next billing date on or after the
// reference instant. One-time cycles return the anchor unchanged.
// For recurring cycles the result is always >= the reference
// normalized to midnight, and a returned date used as the next
// reference yields itself.
func NextOccurrence(ref time.Time, cycle models.BillingCycle, anchor time.Time) time.Time {
	anchor = dateutils.Midnight(anchor)
	if cycle == models.CycleOneTime {
		return anchor
	}

	ref = dateutils.Midnight(ref)
	if !anchor.Before(ref) {
		return anchor
	}
	return OccurrenceAt(anchor, cycle, FirstIndexOnOrAfter(ref, cycle, anchor))
}

// OccurrenceAt returns the k-th occurrence of a recurring cycle,
// counting the anchor itself as k = 0. Month-aligned cycles step by
// calendar months, so a day-31 anchor lands on day 31 where the month
// has one and rolls into the next month where it does not.
func OccurrenceAt(anchor time.Time, cycle models.BillingCycle, k int) time.Time {
	switch cycle {
	case models.CycleOneTime:
		return anchor
	case models.CycleWeekly, models.CycleBiweekly:
		return anchor.AddDate(0, 0, cycle.PeriodDays()*k)
	case models.CycleMonthly, models.CycleQuarterly, models.CycleSemiannual, models.CycleYearly:
		return anchor.AddDate(0, cycle.PeriodMonths()*k, 0)
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(cycle)))
}

// FirstIndexOnOrAfter returns the smallest k such that
// OccurrenceAt(anchor, cycle, k) is on or after ref. Both times must
// already be midnight-normalized. Anchors far in the past are handled
// by jumping an approximate whole-period count first; the estimate
// always undershoots, so the linear scan that follows runs at most a
// couple of iterations.
func FirstIndexOnOrAfter(ref time.Time, cycle models.BillingCycle, anchor time.Time) int {
	if cycle == models.CycleOneTime {
		return 0
	}

	k := approximateIndex(ref, cycle, anchor)
	if k < 0 {
		k = 0
	}
	for OccurrenceAt(anchor, cycle, k).Before(ref) {
		k++
	}
	return k
}

// approximateIndex estimates the occurrence index at ref, minus one
// period to guarantee the candidate never overshoots the target.
func approximateIndex(ref time.Time, cycle models.BillingCycle, anchor time.Time) int {
	switch cycle {
	case models.CycleWeekly, models.CycleBiweekly:
		return dateutils.DiffDays(anchor, ref)/cycle.PeriodDays() - 1
	case models.CycleMonthly, models.CycleQuarterly, models.CycleSemiannual, models.CycleYearly:
		return dateutils.MonthsBetween(anchor, ref)/cycle.PeriodMonths() - 1
	case models.CycleOneTime:
		return 0
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(cycle)))
}

// LastIndexOnOrBefore returns the largest k >= 0 whose occurrence is
// on or before ref, and false when even the anchor is after ref.
func LastIndexOnOrBefore(ref time.Time, cycle models.BillingCycle, anchor time.Time) (int, bool) {
	if anchor.After(ref) {
		return 0, false
	}
	k := FirstIndexOnOrAfter(ref, cycle, anchor)
	if OccurrenceAt(anchor, cycle, k).Equal(ref) {
		return k, true
	}
	// k is the first index past ref; the previous one is on or
	// before it. anchor <= ref guarantees k >= 1 here.
	return k - 1, true
}
