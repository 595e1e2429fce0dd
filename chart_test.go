package valuation

import (
	"encoding/json"
	"testing"
)

func TestBuildValuationChart(t *testing.T) {
	s := Sources{
		PriceHistory: []PriceHistoryPoint{
			{Date: day("2023-03-01"), SpotFdvUsd: N(120), MarketCapUsd: N(30)},
			{Date: day("2023-02-01"), SpotFdvUsd: N(0)},
		},
		FundingRounds: []FundingRound{
			{Date: day("2023-01-01"), Valuation: N(50)},
			{Date: day("2023-03-01"), Valuation: null},
		},
		Orders: []Order{
			order("b1", "2023-02-15", "BUY", 80),
			order("x1", "2023-02-15", "SWAP", 80),
		},
	}

	chart := BuildValuationChart(s, ChartOptions{})
	if chart.NoData {
		t.Fatalf("BuildValuationChart().NoData = true, want false")
	}
	var dates []string
	for _, p := range chart.Points {
		dates = append(dates, p.Date.String())
	}
	want := []string{"2023-01-01", "2023-02-15", "2023-03-01"}
	if len(dates) != len(want) {
		t.Fatalf("Points dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("Points[%d].Date = %s, want %s", i, dates[i], want[i])
		}
	}
	last := chart.Points[2]
	if last.MarketValue.Decimal.String() != "120" || last.FundingValue.Decimal.String() != "50" {
		t.Errorf("Points[2] = %v / %v, want marketValue 120 and fundingValue 50", last.MarketValue, last.FundingValue)
	}
	if len(chart.Unmatched) != 1 || chart.Unmatched[0].OrderID != "x1" {
		t.Errorf("Unmatched = %v, want the SWAP order", chart.Unmatched)
	}
}

func TestBuildValuationChartNoData(t *testing.T) {
	s := Sources{FundingRounds: []FundingRound{{Date: day("2023-01-01"), Valuation: null}}}
	chart := BuildValuationChart(s, ChartOptions{})
	if !chart.NoData || len(chart.Points) != 0 {
		t.Errorf("BuildValuationChart() = %+v, want NoData and no points", chart)
	}
}

func TestDatedRecordJSON(t *testing.T) {
	tbl := NewTable()
	AddFundingRounds(tbl, []FundingRound{{Date: day("2023-01-01"), Valuation: N(50)}})
	AddOrders(tbl, []Order{order("7", "2023-01-01", "SELL", 60)}, MatchSubstring)

	got, err := json.Marshal(tbl.Sequence())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `[{"date":"2023-01-01","fundingValue":"50","sellQuote":"60","allSellQuotes":[{"id":"7","fullyDilutedValuation":"60","amount":"1"}]}]`
	if string(got) != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}
}
