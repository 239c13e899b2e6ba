// Package currencyutils provides currency detection and conversion for
// subscription sets, plus shared amount-formatting helpers.
package currencyutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ErrNoRateSource is returned when a conversion between two different
// currencies is requested but no rate source was injected.
var ErrNoRateSource = errors.New("no currency rate source configured")

// RateFunc returns the multiplier converting one unit of `from` into
// `to`. Implementations are injected by the caller; the engine never
// reaches into ambient rate state.
type RateFunc func(from, to string) (decimal.Decimal, error)

// MixedCurrencyInfo describes the currency composition of a
// subscription set.
type MixedCurrencyInfo struct {
	HasMixedCurrencies bool
	// Currencies holds the distinct uppercase codes in first-seen
	// input order.
	Currencies []string
	// PrimaryCurrency is the first currency encountered, used as the
	// default aggregation target.
	PrimaryCurrency string
}

// DetectMixedCurrencies inspects the non-archived subscriptions of a
// set. Codes are folded to uppercase for comparison and
// de-duplication, and the primary currency is the first one seen in
// input order, not the alphabetically or numerically largest.
func DetectMixedCurrencies(subs []models.Subscription) MixedCurrencyInfo {
	info := MixedCurrencyInfo{}
	seen := make(map[string]bool)

	for _, sub := range subs {
		if sub.Archived() {
			continue
		}
		code := sub.NormalizedCurrency()
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		info.Currencies = append(info.Currencies, code)
	}

	if len(info.Currencies) > 0 {
		info.PrimaryCurrency = info.Currencies[0]
	}
	info.HasMixedCurrencies = len(info.Currencies) > 1
	return info
}

// Converter converts amounts between currencies through an injected
// rate source.
type Converter struct {
	rates RateFunc
}

// NewConverter creates a Converter backed by the given rate source.
// A nil rate source is allowed; conversion between equal currencies
// still works, anything else returns ErrNoRateSource.
func NewConverter(rates RateFunc) *Converter {
	return &Converter{rates: rates}
}

// Convert converts an amount from one currency to another. Equal
// currencies (case-insensitive) short-circuit and return the amount
// unchanged without consulting the rate source, keeping
// single-currency portfolios exact. A failing rate lookup propagates
// to the caller: substituting a silent 1:1 rate would corrupt
// financial totals.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if strings.EqualFold(strings.TrimSpace(from), strings.TrimSpace(to)) {
		return amount, nil
	}
	if c.rates == nil {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", from, to, ErrNoRateSource)
	}

	rate, err := c.rates(strings.ToUpper(strings.TrimSpace(from)), strings.ToUpper(strings.TrimSpace(to)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	log.WithFields(logrus.Fields{"from": from, "to": to, "rate": rate.String()}).Debug("Converted amount")
	return amount.Mul(rate), nil
}

// FormatAmount formats a decimal amount with two decimal places and a
// currency symbol or code, e.g. "$9.99" or "CHF 1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)

	switch strings.ToUpper(currency) {
	case "":
		return formatted
	case "EUR":
		return "€" + formatted
	case "USD":
		return "$" + formatted
	case "GBP":
		return "£" + formatted
	case "JPY":
		return "¥" + formatted
	case "CHF":
		return "CHF " + formatted
	default:
		return strings.ToUpper(currency) + " " + formatted
	}
}
