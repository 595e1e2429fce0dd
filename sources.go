package valuation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/etnz/valuation/date"
	"github.com/shopspring/decimal"
)

// ID identifies an asset, an order or a quote.
//
// Sources are not consistent about identifiers: some send strings, some send
// numbers. ID accepts both.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

// PriceHistoryPoint is a daily spot valuation of an asset.
type PriceHistoryPoint struct {
	Date         date.Date           `json:"date"`
	SpotFdvUsd   decimal.NullDecimal `json:"spotFdvUsd"`
	MarketCapUsd decimal.NullDecimal `json:"marketCapUsd"`
}

// FillPoint is an extra date where a funding round valuation is plotted.
//
// A null valuation means "the valuation carried at that point".
type FillPoint struct {
	Date      date.Date           `json:"date"`
	Valuation decimal.NullDecimal `json:"valuation"`
}

// FundingRound is a priced (or unpriced, when Valuation is null) funding event.
type FundingRound struct {
	Date       date.Date           `json:"date"`
	Valuation  decimal.NullDecimal `json:"valuation"`
	FillPoints []FillPoint         `json:"fillPoints,omitempty"`
}

// Order is a buy or sell quote posted on the secondary market.
type Order struct {
	Date                         date.Date           `json:"date"`
	Type                         string              `json:"type"`
	OfferedFullyDilutedValuation decimal.NullDecimal `json:"offeredFullyDilutedValuation"`
	OfferedAmount                decimal.Decimal     `json:"offeredAmount"`
	OrderID                      ID                  `json:"orderId"`
}

// UnlockAllocation is a scheduled token unlock.
//
// A missing amount decodes as zero. IsCliff and IsTge are carried for display only.
type UnlockAllocation struct {
	AssetID        ID                  `json:"assetId"`
	Date           date.Date           `json:"date"`
	Amount         decimal.Decimal     `json:"amount"`
	PercentOfTotal decimal.NullDecimal `json:"percentOfTotal"`
	IsCliff        bool                `json:"isCliff"`
	IsTge          bool                `json:"isTge"`
}

// AssetValue is the value of one asset on one date, like the composition of
// a portfolio over time.
type AssetValue struct {
	AssetID ID              `json:"assetId"`
	Date    date.Date       `json:"date"`
	Value   decimal.Decimal `json:"value"`
}

// Sources groups every collection the engine consumes for one screen.
//
// Any of them can be empty.
type Sources struct {
	PriceHistory  []PriceHistoryPoint `json:"priceHistory,omitempty"`
	FundingRounds []FundingRound      `json:"fundingRounds,omitempty"`
	Orders        []Order             `json:"orders,omitempty"`
	Allocations   []UnlockAllocation  `json:"allocations,omitempty"`
	Portfolio     []AssetValue        `json:"portfolio,omitempty"`
}
