package models

import (
	"fmt"
	"strings"
)

// BillingCycle represents the recurrence cadence of a subscription.
type BillingCycle string

const (
	CycleWeekly     BillingCycle = "weekly"
	CycleBiweekly   BillingCycle = "biweekly"
	CycleMonthly    BillingCycle = "monthly"
	CycleQuarterly  BillingCycle = "quarterly"
	CycleSemiannual BillingCycle = "semiannual"
	CycleYearly     BillingCycle = "yearly"
	CycleOneTime    BillingCycle = "onetime"
)

// AllCycles lists every valid billing cycle in cadence order.
var AllCycles = []BillingCycle{
	CycleWeekly,
	CycleBiweekly,
	CycleMonthly,
	CycleQuarterly,
	CycleSemiannual,
	CycleYearly,
	CycleOneTime,
}

// ParseBillingCycle parses a user- or file-supplied cycle name.
// Matching is case-insensitive and tolerant of common spellings
// like "bi-weekly" or "one-time".
func ParseBillingCycle(s string) (BillingCycle, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	switch normalized {
	case "weekly":
		return CycleWeekly, nil
	case "biweekly", "fortnightly":
		return CycleBiweekly, nil
	case "monthly":
		return CycleMonthly, nil
	case "quarterly":
		return CycleQuarterly, nil
	case "semiannual", "semiannually", "halfyearly":
		return CycleSemiannual, nil
	case "yearly", "annual", "annually":
		return CycleYearly, nil
	case "onetime", "once":
		return CycleOneTime, nil
	}
	return "", fmt.Errorf("unknown billing cycle: %q", s)
}

// String returns a human-readable name for the cycle.
func (c BillingCycle) String() string {
	switch c {
	case CycleWeekly:
		return "Weekly"
	case CycleBiweekly:
		return "Bi-weekly"
	case CycleMonthly:
		return "Monthly"
	case CycleQuarterly:
		return "Quarterly"
	case CycleSemiannual:
		return "Semiannual"
	case CycleYearly:
		return "Yearly"
	case CycleOneTime:
		return "One-time"
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(c)))
}

// IsRecurring reports whether the cycle repeats. Only the one-time
// cycle does not.
func (c BillingCycle) IsRecurring() bool {
	return c != CycleOneTime
}

// MonthAligned reports whether the cycle's period is a whole number of
// calendar months. Billing-day reconciliation only applies to these.
func (c BillingCycle) MonthAligned() bool {
	switch c {
	case CycleMonthly, CycleQuarterly, CycleSemiannual, CycleYearly:
		return true
	case CycleWeekly, CycleBiweekly, CycleOneTime:
		return false
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(c)))
}

// PeriodDays returns the period length in days for day-aligned cycles,
// and 0 for month-aligned or one-time cycles.
func (c BillingCycle) PeriodDays() int {
	switch c {
	case CycleWeekly:
		return 7
	case CycleBiweekly:
		return 14
	case CycleMonthly, CycleQuarterly, CycleSemiannual, CycleYearly, CycleOneTime:
		return 0
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(c)))
}

// PeriodMonths returns the period length in months for month-aligned
// cycles, and 0 for day-aligned or one-time cycles.
func (c BillingCycle) PeriodMonths() int {
	switch c {
	case CycleMonthly:
		return 1
	case CycleQuarterly:
		return 3
	case CycleSemiannual:
		return 6
	case CycleYearly:
		return 12
	case CycleWeekly, CycleBiweekly, CycleOneTime:
		return 0
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(c)))
}
