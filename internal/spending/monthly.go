package spending

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

// Cross-cycle comparison uses a fixed 4.33-week month rather than
// calendar-exact billing, trading exactness for a stable run-rate that
// compares cleanly across cycles. Calendar-exact totals come from the
// history generator and the aggregator instead.
var (
	factorWeekly   = decimal.NewFromFloat(4.33)
	factorBiweekly = decimal.NewFromFloat(2.16)
	divQuarterly   = decimal.NewFromInt(3)
	divSemiannual  = decimal.NewFromInt(6)
	divYearly      = decimal.NewFromInt(12)
)

// MonthlyEquivalent converts a per-cycle charge into an approximate
// monthly run-rate. One-time charges contribute nothing to an ongoing
// monthly figure and always yield zero, as do negative amounts. The
// function never errors.
func MonthlyEquivalent(amount decimal.Decimal, cycle models.BillingCycle) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}

	switch cycle {
	case models.CycleWeekly:
		return amount.Mul(factorWeekly)
	case models.CycleBiweekly:
		return amount.Mul(factorBiweekly)
	case models.CycleMonthly:
		return amount
	case models.CycleQuarterly:
		return amount.Div(divQuarterly)
	case models.CycleSemiannual:
		return amount.Div(divSemiannual)
	case models.CycleYearly:
		return amount.Div(divYearly)
	case models.CycleOneTime:
		return decimal.Zero
	}
	panic(fmt.Sprintf("invalid billing cycle: %q", string(cycle)))
}
