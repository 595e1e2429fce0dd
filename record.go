package valuation

import (
	"slices"

	"github.com/etnz/valuation/date"
	"github.com/shopspring/decimal"
)

// Quote is a single order kept for detail display.
//
// Quotes are never summed: only their valuation takes part in min/max
// selection. A quote without valuation is listed but never selected.
type Quote struct {
	ID                    ID                  `json:"id"`
	FullyDilutedValuation decimal.NullDecimal `json:"fullyDilutedValuation"`
	Amount                decimal.Decimal     `json:"amount"`
}

// DatedRecord is the merged view of every source for a single date.
//
// All numeric fields are optional: an absent field is not plotted.
type DatedRecord struct {
	Date          date.Date
	MarketValue   decimal.NullDecimal
	MarketCap     decimal.NullDecimal
	FundingValue  decimal.NullDecimal
	BuyQuote      decimal.NullDecimal
	SellQuote     decimal.NullDecimal
	AllBuyQuotes  []Quote
	AllSellQuotes []Quote
}

// clone returns a copy of r that shares no slice with r.
func (r DatedRecord) clone() DatedRecord {
	r.AllBuyQuotes = slices.Clone(r.AllBuyQuotes)
	r.AllSellQuotes = slices.Clone(r.AllSellQuotes)
	return r
}

// IsEmpty reports whether no source wrote anything on that date.
func (r DatedRecord) IsEmpty() bool {
	return !r.MarketValue.Valid && !r.MarketCap.Valid && !r.FundingValue.Valid &&
		!r.BuyQuote.Valid && !r.SellQuote.Valid &&
		len(r.AllBuyQuotes) == 0 && len(r.AllSellQuotes) == 0
}

// MarshalJSON writes the date first and omits absent fields.
func (r DatedRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Decimal("marketValue", r.MarketValue)
	w.Decimal("marketCap", r.MarketCap)
	w.Decimal("fundingValue", r.FundingValue)
	w.Decimal("buyQuote", r.BuyQuote)
	w.Decimal("sellQuote", r.SellQuote)
	w.Optional("allBuyQuotes", r.AllBuyQuotes)
	w.Optional("allSellQuotes", r.AllSellQuotes)
	return w.MarshalJSON()
}
