package valuation

// AddPriceHistory writes the spot valuations of points into t.
//
// A point is kept only when its spot FDV is present and strictly positive: a
// zero spot value means "no data for that day", and plotting it would draw a
// false dip. The market cap is written only when present.
func AddPriceHistory(t *Table, points []PriceHistoryPoint) *Table {
	for _, p := range points {
		if !positive(p.SpotFdvUsd) {
			continue
		}
		r := t.at(p.Date)
		r.MarketValue = p.SpotFdvUsd
		if p.MarketCapUsd.Valid {
			r.MarketCap = p.MarketCapUsd
		}
	}
	return t
}
