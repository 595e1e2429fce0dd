package valuation

import (
	"github.com/etnz/valuation/date"
	"github.com/shopspring/decimal"
)

// day is a helper for test to create a date from a string const.
func day(s string) date.Date { return date.MustParse(s) }

// null is the absent value.
var null = decimal.NullDecimal{}

// alloc is a helper for test to create an allocation.
func alloc(asset ID, on string, amount int) UnlockAllocation {
	return UnlockAllocation{AssetID: asset, Date: day(on), Amount: D(amount)}
}

// order is a helper for test to create an order.
func order(id ID, on, typ string, fdv int) Order {
	return Order{Date: day(on), Type: typ, OfferedFullyDilutedValuation: N(fdv), OfferedAmount: D(1), OrderID: id}
}
