package oddsmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// ProfitMultiplier returns profit per unit staked for American odds
// +150 → 1.50 (win 1.5x the stake)
// -150 → 0.6667 (win two thirds of the stake)
// Zero odds are a degenerate input and yield a zero multiplier.
func ProfitMultiplier(american int) decimal.Decimal {
	if american == 0 {
		return decimal.Zero
	}

	if american > 0 {
		// Positive odds: american / 100
		return decimal.NewFromInt(int64(american)).Div(oneHundred)
	}

	// Negative odds: 100 / abs(american)
	return oneHundred.Div(decimal.NewFromInt(int64(-american)))
}

// PotentialProfit returns the profit if a wager at American odds wins,
// rounded to cents with halves away from zero.
// PotentialProfit(100, -110) → 90.91
// PotentialProfit(50, +200) → 100.00
func PotentialProfit(wager decimal.Decimal, american int) decimal.Decimal {
	return wager.Mul(ProfitMultiplier(american)).Round(2)
}

// UnitProfit is PotentialProfit against a notional one-unit stake.
// Used by flat (unit-weighted) ROI to strip stake sizing out of results.
func UnitProfit(american int) decimal.Decimal {
	return PotentialProfit(one, american)
}

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}

	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}

	return (100.0 / float64(-american)) + 1.0, nil
}

// AmericanToImpliedProbability converts American odds to the probability
// the price implies
// -110 → 0.524
// +200 → 0.333
func AmericanToImpliedProbability(american int) (float64, error) {
	dec, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}

	return 1.0 / dec, nil
}
