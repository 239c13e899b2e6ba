// Package history derives the bounded sequence of past and upcoming
// charge events for a subscription by walking its recurrence.
package history

import (
	"time"

	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
	"github.com/shamar-morrison/recurr-sub000/internal/recurrence"
)

// AllHistoryCap is the past-entry bound callers pass when they need
// the whole history of a subscription. Recurrence walking is always
// bounded: a weekly subscription anchored decades ago must never
// produce unbounded output. Sized to hold every weekly charge in the
// widest reporting window: the "all time" range starts in January ten
// years back, so it spans just under eleven years (~574 weeks).
const AllHistoryCap = 600

// Options bounds a single generation call.
type Options struct {
	// Reference is the "now" entries are classified against.
	Reference time.Time

	// FutureCount is the maximum number of upcoming entries.
	FutureCount int

	// MaxPastCount is the maximum number of past entries.
	MaxPastCount int
}

// Generate returns up to MaxPastCount past and FutureCount upcoming
// charge events, ascending by date. An entry is past when its date is
// on or before the reference day. Entries on or after the
// subscription's end date are never emitted. Every entry carries the
// subscription's current amount and currency; there is no
// point-in-time price log.
func Generate(sub models.Subscription, opts Options) []models.PaymentEntry {
	anchor := recurrence.Anchor(sub)
	ref := dateutils.Midnight(opts.Reference)

	var cutoff *time.Time
	if sub.EndDate != nil {
		c := dateutils.Midnight(*sub.EndDate)
		cutoff = &c
	}

	if sub.Cycle == models.CycleOneTime {
		if ended(anchor, cutoff) {
			return nil
		}
		return []models.PaymentEntry{entryFor(sub, anchor, ref)}
	}

	entries := make([]models.PaymentEntry, 0, opts.MaxPastCount+opts.FutureCount)

	// The backward walk starts from the last occurrence that can
	// actually be emitted. For a subscription that ended before the
	// reference that is the day before the cutoff, otherwise the
	// MaxPastCount window would sit entirely past the end date and
	// real pre-end charges would be lost.
	pastRef := ref
	if cutoff != nil && !cutoff.After(ref) {
		pastRef = cutoff.AddDate(0, 0, -1)
	}

	last, ok := recurrence.LastIndexOnOrBefore(pastRef, sub.Cycle, anchor)
	next := 0
	if ok {
		next = last + 1

		first := last - opts.MaxPastCount + 1
		if first < 0 {
			first = 0
		}
		for k := first; k <= last; k++ {
			entries = append(entries, entryFor(sub, recurrence.OccurrenceAt(anchor, sub.Cycle, k), ref))
		}
	}

	for k := next; k < next+opts.FutureCount; k++ {
		date := recurrence.OccurrenceAt(anchor, sub.Cycle, k)
		if ended(date, cutoff) {
			break
		}
		entries = append(entries, entryFor(sub, date, ref))
	}

	return entries
}

func entryFor(sub models.Subscription, date, ref time.Time) models.PaymentEntry {
	return models.PaymentEntry{
		Date:     date,
		Amount:   sub.Amount,
		Currency: sub.NormalizedCurrency(),
		IsPast:   !date.After(ref),
	}
}

// ended reports whether a date falls on or after the exclusive end
// cutoff.
func ended(date time.Time, cutoff *time.Time) bool {
	return cutoff != nil && !date.Before(*cutoff)
}
