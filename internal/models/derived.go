package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEntry is a single derived charge event, past or upcoming.
type PaymentEntry struct {
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	IsPast   bool            `json:"is_past"`
}

// SpendingDataPoint is the total spend of one calendar month,
// expressed in the aggregation's target currency.
type SpendingDataPoint struct {
	Month  string          `json:"month"` // short month name, e.g. "Jan"
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"` // e.g. "Jan 2024"
}

// CategorySpending is the total spend of one category over a range,
// with its share of the grand total.
type CategorySpending struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color,omitempty"` // display color of custom categories
}

// DateRange is a computed reporting window with a display label.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}
