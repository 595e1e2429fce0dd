package renderer

import (
	"github.com/etnz/valuation"
	"github.com/shopspring/decimal"
)

// Options holds display settings shared by every renderer.
type Options struct {
	Currency string // ISO 4217 code valuations are printed in.
}

func (o Options) currency() string {
	if o.Currency == "" {
		return "USD"
	}
	return o.Currency
}

// fdv formats an optional valuation in compact form, empty when absent.
func (o Options) fdv(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return valuation.M(v.Decimal, o.currency()).Compact()
}

// money formats a value with its currency symbol.
func (o Options) money(v decimal.Decimal) string {
	return valuation.M(v, o.currency()).String()
}

// amount formats a token amount.
func amount(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func ids(keys []valuation.ID) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
