package valuation

import "github.com/shopspring/decimal"

// AddFundingRounds writes the funding valuation step function into t.
//
// Rounds must be in date order. The current valuation starts at zero and is
// only updated by rounds carrying a valuation: an unpriced round repeats the
// current one, it never resets it. Each fill point is plotted with its own
// valuation, or the current one when it has none.
func AddFundingRounds(t *Table, rounds []FundingRound) *Table {
	current := decimal.Zero
	for _, round := range rounds {
		if round.Valuation.Valid {
			current = round.Valuation.Decimal
		}
		t.at(round.Date).FundingValue = decimal.NewNullDecimal(current)

		for _, fill := range round.FillPoints {
			v := current
			if fill.Valuation.Valid {
				v = fill.Valuation.Decimal
			}
			t.at(fill.Date).FundingValue = decimal.NewNullDecimal(v)
		}
	}
	return t
}
