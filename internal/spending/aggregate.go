// Package spending buckets derived charge events into calendar-month
// and category totals over a date range, normalizing mixed-currency
// sets through an injected rate source.
package spending

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shamar-morrison/recurr-sub000/internal/categorizer"
	"github.com/shamar-morrison/recurr-sub000/internal/currencyutils"
	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/history"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

// Options controls an aggregation call.
type Options struct {
	// Reference is the "now" past payments are generated against.
	// Zero means the end of the requested range.
	Reference time.Time

	// IncludePaused keeps paused subscriptions in the totals.
	// Archived subscriptions are always excluded.
	IncludePaused bool

	// PrimaryCurrency overrides the detected aggregation target.
	PrimaryCurrency string

	// Rates converts between currencies. Required only when the
	// filtered set actually spans currencies different from the
	// target.
	Rates currencyutils.RateFunc

	// CustomCategories seeds zero-amount category rows so empty
	// custom categories still render.
	CustomCategories []categorizer.CustomCategory
}

type monthKey struct {
	year  int
	month time.Month
}

// ByMonth computes one spending total per calendar month in
// [start, end]. Every month in the range appears in the result, zero
// months included, so charts get a contiguous sequence. Output is
// chronological regardless of accumulation order.
func ByMonth(subs []models.Subscription, start, end time.Time, opts Options) ([]models.SpendingDataPoint, error) {
	filtered := filterSubs(subs, opts.IncludePaused)
	target := resolveTargetCurrency(filtered, opts)

	buckets := make(map[monthKey]decimal.Decimal)
	first := dateutils.StartOfMonth(start)
	for m := first; !m.After(end); m = m.AddDate(0, 1, 0) {
		buckets[monthKey{m.Year(), m.Month()}] = decimal.Zero
	}

	accumulate := func(entry models.PaymentEntry, amount decimal.Decimal) {
		key := monthKey{entry.Date.Year(), entry.Date.Month()}
		buckets[key] = buckets[key].Add(amount)
	}
	if err := foldPastEntries(filtered, start, end, target, opts, accumulate); err != nil {
		return nil, err
	}

	points := make([]models.SpendingDataPoint, 0, len(buckets))
	for m := first; !m.After(end); m = m.AddDate(0, 1, 0) {
		points = append(points, models.SpendingDataPoint{
			Month:  m.Month().String()[:3],
			Year:   m.Year(),
			Amount: buckets[monthKey{m.Year(), m.Month()}],
			Label:  fmt.Sprintf("%s %d", m.Month().String()[:3], m.Year()),
		})
	}
	return points, nil
}

// ByCategory computes converted past-payment totals per category over
// [start, end], with each category's share of the grand total. Result
// rows are sorted descending by amount; callers truncate the tail for
// "top categories" views. Supplied custom categories appear even when
// empty.
func ByCategory(subs []models.Subscription, start, end time.Time, opts Options) ([]models.CategorySpending, error) {
	filtered := filterSubs(subs, opts.IncludePaused)
	target := resolveTargetCurrency(filtered, opts)
	registry := categorizer.NewRegistry(opts.CustomCategories)

	// Categories present in the input set or supplied as custom render
	// even when empty.
	totals := make(map[string]decimal.Decimal)
	for _, custom := range registry.Customs() {
		totals[custom.Name] = decimal.Zero
	}
	for _, sub := range filtered {
		category := registry.Resolve(sub.Category)
		if _, ok := totals[category]; !ok {
			totals[category] = decimal.Zero
		}
	}

	grand := decimal.Zero
	for _, sub := range filtered {
		category := registry.Resolve(sub.Category)
		err := foldPastEntries([]models.Subscription{sub}, start, end, target, opts, func(_ models.PaymentEntry, amount decimal.Decimal) {
			totals[category] = totals[category].Add(amount)
			grand = grand.Add(amount)
		})
		if err != nil {
			return nil, err
		}
	}

	result := make([]models.CategorySpending, 0, len(totals))
	for category, amount := range totals {
		percentage := 0.0
		if grand.IsPositive() {
			percentage, _ = amount.Div(grand).Mul(decimal.NewFromInt(100)).Float64()
		}
		result = append(result, models.CategorySpending{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
			Color:      registry.ColorFor(category),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// Total sums the month-bucketed spend over [start, end]. It is
// defined as the exact sum of ByMonth's buckets, same currency
// resolution included, so the headline figure always matches the
// chart it sits above.
func Total(subs []models.Subscription, start, end time.Time, opts Options) (decimal.Decimal, error) {
	points, err := ByMonth(subs, start, end, opts)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Amount)
	}
	return total, nil
}

// foldPastEntries generates past-only payment history for each
// subscription, filters it to [start, end], converts each entry into
// the target currency and hands it to the accumulator. A failing rate
// lookup aborts the whole fold.
func foldPastEntries(subs []models.Subscription, start, end time.Time, target string, opts Options, accumulate func(models.PaymentEntry, decimal.Decimal)) error {
	conv := currencyutils.NewConverter(opts.Rates)

	ref := opts.Reference
	if ref.IsZero() {
		ref = end
	}
	startDay := dateutils.Midnight(start)

	for _, sub := range subs {
		entries := history.Generate(sub, history.Options{
			Reference:    ref,
			FutureCount:  0,
			MaxPastCount: history.AllHistoryCap,
		})
		for _, entry := range entries {
			if entry.Date.Before(startDay) || entry.Date.After(end) {
				continue
			}
			amount, err := conv.Convert(entry.Amount, entry.Currency, target)
			if err != nil {
				return fmt.Errorf("aggregate %s: %w", sub.Name, err)
			}
			accumulate(entry, amount)
		}
	}
	return nil
}

// filterSubs drops archived subscriptions always, and paused ones
// unless requested.
func filterSubs(subs []models.Subscription, includePaused bool) []models.Subscription {
	filtered := make([]models.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.Archived() {
			continue
		}
		if sub.Paused() && !includePaused {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered
}

// resolveTargetCurrency picks the aggregation currency: the explicit
// option when given, else the first-seen currency of the filtered set.
func resolveTargetCurrency(filtered []models.Subscription, opts Options) string {
	if opts.PrimaryCurrency != "" {
		return opts.PrimaryCurrency
	}
	return currencyutils.DetectMixedCurrencies(filtered).PrimaryCurrency
}
