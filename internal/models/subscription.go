// Package models defines the subscription record consumed by the
// recurrence and spending engine, together with the derived value types
// it produces. All derived types are plain values recomputed on every
// call; none carry identity or persistence semantics.
package models

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle status of a subscription.
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusArchived Status = "archived"
)

// ParseStatus parses a status string case-insensitively. Empty or
// unknown values map to StatusActive; older records carry lifecycle
// state in the archived flag instead of a status field.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paused":
		return StatusPaused
	case "archived":
		return StatusArchived
	default:
		return StatusActive
	}
}

// Subscription is the input record for every engine computation.
// The engine treats it as immutable for the duration of a call.
type Subscription struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Category   string          `json:"category" yaml:"category"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
	Currency   string          `json:"currency" yaml:"currency"`
	Cycle      BillingCycle    `json:"cycle" yaml:"cycle"`
	BillingDay int             `json:"billing_day" yaml:"billing_day"`

	// StartDate, when set, is the authoritative recurrence anchor.
	// When absent, CreatedAt anchors recurrence instead.
	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`

	// EndDate is an exclusive upper bound: no charge occurs on or
	// after it.
	EndDate *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	Status Status `json:"status,omitempty" yaml:"status,omitempty"`

	// IsArchived is the legacy lifecycle flag, consulted only when
	// Status is empty.
	IsArchived bool `json:"is_archived,omitempty" yaml:"is_archived,omitempty"`
}

// EffectiveStatus resolves the lifecycle status, deriving it from the
// legacy archived flag when no explicit status is present.
func (s Subscription) EffectiveStatus() Status {
	if s.Status != "" {
		return s.Status
	}
	if s.IsArchived {
		return StatusArchived
	}
	return StatusActive
}

// Archived reports whether the subscription is archived.
func (s Subscription) Archived() bool {
	return s.EffectiveStatus() == StatusArchived
}

// Paused reports whether the subscription is paused.
func (s Subscription) Paused() bool {
	return s.EffectiveStatus() == StatusPaused
}

// NormalizedCurrency returns the uppercase currency code used for all
// currency comparisons.
func (s Subscription) NormalizedCurrency() string {
	return strings.ToUpper(strings.TrimSpace(s.Currency))
}

// AmountFromFloat converts a float amount into a decimal, coercing
// NaN, infinities and negative values to zero. Malformed amounts must
// never break a derived-display computation, so they are sanitized
// here rather than rejected.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
