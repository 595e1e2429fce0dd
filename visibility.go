package valuation

// ShouldRender reports whether the valuation chart has a meaningful scale.
//
// It returns false, meaning "render the no data state", only when funding
// rounds exist but none has a positive valuation, and the orders are absent
// or all offer a non-positive FDV, and the price history is absent or
// entirely non-positive. In every other case the chart is rendered, even if
// it ends up empty.
func ShouldRender(s Sources) bool {
	if len(s.FundingRounds) == 0 {
		return true
	}
	for _, r := range s.FundingRounds {
		if positive(r.Valuation) {
			return true
		}
	}
	for _, o := range s.Orders {
		if positive(o.OfferedFullyDilutedValuation) {
			return true
		}
	}
	for _, p := range s.PriceHistory {
		if positive(p.SpotFdvUsd) {
			return true
		}
	}
	return false
}
