package valuation

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// D is a convenient factory for decimal.Decimal.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// N returns a present NullDecimal.
func N[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.NullDecimal {
	return decimal.NewNullDecimal(D(value))
}

// positive reports whether v is present and strictly positive.
func positive(v decimal.NullDecimal) bool { return v.Valid && v.Decimal.IsPositive() }

// Money is a valuation expressed in a currency, used for display.
//
// All arithmetic in this package is done on decimal.Decimal; Money only
// carries the currency needed to print a value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as a Money in currency cur.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, cur string) Money {
	return Money{value: D(value), cur: cur}
}

// USD is a shortcut for M(value, "USD"), the currency of every FDV source.
func USD(value decimal.Decimal) Money { return M(value, "USD") }

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// the constructor falls back to a default definition for unknown codes
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted with its currency symbol and fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Compact returns a short human form of large valuations: "$1.25B", "$340M".
func (m Money) Compact() string {
	units := []struct {
		suffix string
		exp    int32
	}{{"T", 12}, {"B", 9}, {"M", 6}, {"K", 3}}
	abs := m.value.Abs()
	for _, u := range units {
		if scale := decimal.New(1, u.exp); abs.GreaterThanOrEqual(scale) {
			short := m.value.Div(scale).Round(2)
			return m.currency().Grapheme + short.String() + u.suffix
		}
	}
	return m.String()
}
