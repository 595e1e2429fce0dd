package valuation

import (
	"errors"
	"fmt"
	"strings"
)

// Side is the market side of an order.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// MatchPolicy decides how an order type string is mapped to a Side.
type MatchPolicy int

const (
	// MatchSubstring accepts any type containing BUY or SELL, like "BUY_LIMIT".
	// BUY is checked first.
	MatchSubstring MatchPolicy = iota
	// MatchExact only accepts "BUY" and "SELL".
	MatchExact
)

// ErrUnknownPolicy is returned when parsing an unknown policy name.
var ErrUnknownPolicy = errors.New("unknown policy")

func (p MatchPolicy) String() string {
	switch p {
	case MatchSubstring:
		return "substring"
	case MatchExact:
		return "exact"
	default:
		return fmt.Sprintf("MatchPolicy(%d)", int(p))
	}
}

// ParseMatchPolicy parses "substring" or "exact". Empty means substring.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring", "contains":
		return MatchSubstring, nil
	case "exact":
		return MatchExact, nil
	default:
		return MatchSubstring, fmt.Errorf("%w: order match %q", ErrUnknownPolicy, s)
	}
}

// Side classifies an order type. Matching is case-insensitive.
func (p MatchPolicy) Side(orderType string) (Side, bool) {
	t := strings.ToUpper(strings.TrimSpace(orderType))
	switch p {
	case MatchExact:
		switch t {
		case "BUY":
			return Buy, true
		case "SELL":
			return Sell, true
		}
	default:
		switch {
		case strings.Contains(t, "BUY"):
			return Buy, true
		case strings.Contains(t, "SELL"):
			return Sell, true
		}
	}
	return 0, false
}

// AddOrders writes the buy and sell quotes of orders into t.
//
// For every date, the plotted buy quote is the lowest offered FDV among buy
// orders and the plotted sell quote is the highest among sell orders. All
// same-day orders are kept in AllBuyQuotes/AllSellQuotes, in input order.
//
// An order without an offered FDV is still listed in AllBuyQuotes or
// AllSellQuotes, but never plotted. Orders whose type matches no side are
// returned, so that the caller can report them.
func AddOrders(t *Table, orders []Order, policy MatchPolicy) (unmatched []Order) {
	for _, o := range orders {
		side, ok := policy.Side(o.Type)
		if !ok {
			unmatched = append(unmatched, o)
			continue
		}
		fdv := o.OfferedFullyDilutedValuation
		q := Quote{ID: o.OrderID, FullyDilutedValuation: fdv, Amount: o.OfferedAmount}
		r := t.at(o.Date)
		switch side {
		case Buy:
			if fdv.Valid && (!r.BuyQuote.Valid || fdv.Decimal.LessThan(r.BuyQuote.Decimal)) {
				r.BuyQuote = fdv
			}
			r.AllBuyQuotes = append(r.AllBuyQuotes, q)
		case Sell:
			if fdv.Valid && (!r.SellQuote.Valid || fdv.Decimal.GreaterThan(r.SellQuote.Decimal)) {
				r.SellQuote = fdv
			}
			r.AllSellQuotes = append(r.AllSellQuotes, q)
		}
	}
	return unmatched
}
