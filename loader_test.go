package valuation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{
  "data": {
    "priceHistory": [
      {"date": "2023-01-01T00:00:00Z", "spotFdvUsd": 100.10, "marketCapUsd": null},
      {"date": "2023-01-02", "spotFdvUsd": 0}
    ],
    "fundingRounds": [{"date": "2022-06-01", "valuation": null, "fillPoints": [{"date": "2022-12-31"}]}],
    "orders": [{"date": "2023-01-02", "type": "BUY_LIMIT", "offeredFullyDilutedValuation": "12345678901234567890.5", "offeredAmount": 3, "orderId": 42}],
    "allocations": [{"assetId": "tok", "date": "2024-01-01", "percentOfTotal": 2.5, "isTge": true}]
  }
}`

func TestLoadSources(t *testing.T) {
	paths := SourcePaths{
		PriceHistory:  "$.data.priceHistory",
		FundingRounds: "$.data.fundingRounds",
		Orders:        "$.data.orders",
		Allocations:   "$.data.allocations",
		Portfolio:     "$.data.portfolio",
	}
	s, err := LoadSources(strings.NewReader(payload), paths)
	require.NoError(t, err)

	require.Len(t, s.PriceHistory, 2)
	assert.Equal(t, day("2023-01-01"), s.PriceHistory[0].Date)
	assert.Equal(t, "100.1", s.PriceHistory[0].SpotFdvUsd.Decimal.String())
	assert.False(t, s.PriceHistory[0].MarketCapUsd.Valid)

	require.Len(t, s.FundingRounds, 1)
	assert.False(t, s.FundingRounds[0].Valuation.Valid)
	require.Len(t, s.FundingRounds[0].FillPoints, 1)
	assert.False(t, s.FundingRounds[0].FillPoints[0].Valuation.Valid)

	require.Len(t, s.Orders, 1)
	assert.Equal(t, ID("42"), s.Orders[0].OrderID, "numeric ids are accepted")
	assert.Equal(t, "12345678901234567890.5", s.Orders[0].OfferedFullyDilutedValuation.Decimal.String(), "numbers are exact")

	require.Len(t, s.Allocations, 1)
	assert.True(t, s.Allocations[0].Amount.IsZero(), "a missing amount is zero")
	assert.True(t, s.Allocations[0].IsTge)

	assert.Empty(t, s.Portfolio, "a missing collection is empty")
}

func TestLoadSourcesDefaultPaths(t *testing.T) {
	in := `{"portfolio": [{"assetId": 7, "date": "2024-01-01", "value": "1.5"}], "orders": null}`
	s, err := LoadSources(strings.NewReader(in), DefaultSourcePaths())
	require.NoError(t, err)
	require.Len(t, s.Portfolio, 1)
	assert.Equal(t, ID("7"), s.Portfolio[0].AssetID)
	assert.Equal(t, "1.5", s.Portfolio[0].Value.String())
	assert.Empty(t, s.Orders)
}

func TestLoadSourcesErrors(t *testing.T) {
	_, err := LoadSources(strings.NewReader(`{`), DefaultSourcePaths())
	assert.Error(t, err)

	_, err = LoadSources(strings.NewReader(`{"orders": [{"date": "yesterday"}]}`), DefaultSourcePaths())
	assert.Error(t, err, "invalid dates are reported")
}

func TestLoadSourcesAbsentPaths(t *testing.T) {
	in := `{"data": null, "meta": {"orders": [{"date": "2024-01-01", "type": "BUY", "orderId": "1"}]}}`
	testCases := []struct {
		name string
		path string
		want int
	}{
		{"missing parent", "$.nothing.orders", 0},
		{"null parent", "$.data.orders", 0},
		{"missing leaf", "$.meta.sells", 0},
		{"present", "$.meta.orders", 1},
		{"wildcard", "$.meta.orders[*]", 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := LoadSources(strings.NewReader(in), SourcePaths{Orders: tc.path})
			require.NoError(t, err)
			assert.Len(t, s.Orders, tc.want)
		})
	}

	_, err := LoadSources(strings.NewReader(in), SourcePaths{Orders: "$.meta.orders[?("})
	assert.Error(t, err, "malformed expressions are reported")
}

func TestAbsent(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": []any{}}, "n": nil}
	assert.False(t, absent(doc, "$.a.b"))
	assert.True(t, absent(doc, "$.a.c"))
	assert.True(t, absent(doc, "$.n.x"))
	assert.True(t, absent(doc, "$.z"))
	assert.False(t, absent(doc, "$.a.b[0]"), "jsonpath handles indexing")
	assert.False(t, absent(doc, "$"))
}
