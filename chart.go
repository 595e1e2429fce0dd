package valuation

// ChartOptions tunes how sources are merged into a valuation chart.
type ChartOptions struct {
	Match MatchPolicy
}

// ValuationChart is the merged, chronological valuation series of an asset.
type ValuationChart struct {
	// NoData is set when the visibility gate decided there is nothing
	// meaningful to plot. Points is then empty.
	NoData bool `json:"noData"`
	// Points in chronological order, one per date.
	Points []DatedRecord `json:"points"`
	// Unmatched are the orders whose type is neither a buy nor a sell.
	Unmatched []Order `json:"unmatched,omitempty"`
}

// BuildValuationChart merges price history, funding rounds and orders into a
// single chronological sequence.
//
// Every call works on its own fresh table, so successive calls never see each
// other's data.
func BuildValuationChart(s Sources, opts ChartOptions) ValuationChart {
	if !ShouldRender(s) {
		return ValuationChart{NoData: true}
	}
	t := NewTable()
	AddPriceHistory(t, s.PriceHistory)
	AddFundingRounds(t, s.FundingRounds)
	unmatched := AddOrders(t, s.Orders, opts.Match)
	return ValuationChart{
		Points:    t.Sequence(),
		Unmatched: unmatched,
	}
}
