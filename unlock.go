package valuation

import (
	"maps"
	"slices"

	"github.com/etnz/valuation/date"
	"github.com/shopspring/decimal"
)

// SortAllocations returns a copy of allocs sorted by date.
//
// The sort is stable: allocations on the same date keep their input order.
func SortAllocations(allocs []UnlockAllocation) []UnlockAllocation {
	sorted := slices.Clone(allocs)
	slices.SortStableFunc(sorted, func(a, b UnlockAllocation) int { return a.Date.Compare(b.Date) })
	return sorted
}

// amount returns the allocation amount, negative amounts count as zero.
func (a UnlockAllocation) amount() decimal.Decimal {
	if a.Amount.IsNegative() {
		return decimal.Zero
	}
	return a.Amount
}

// CumulativeRow holds the running totals recorded on a date.
type CumulativeRow struct {
	Date   date.Date              `json:"date"`
	Values map[ID]decimal.Decimal `json:"values"`
}

// CumulativeSeries is the per-asset running total of unlocked tokens.
type CumulativeSeries struct {
	// Assets in order of first unlock.
	Assets []ID `json:"assets"`
	// Rows in date order, one per date with at least one allocation.
	Rows []CumulativeRow `json:"rows"`
}

// CumulativeByAsset computes per-asset running totals over allocs.
//
// Each allocation adds its amount to its asset total, and the total reached
// (not the amount) is recorded for that asset on that date. A row only holds
// the assets that unlocked on its date: use CarryForward for the dense form.
func CumulativeByAsset(allocs []UnlockAllocation) CumulativeSeries {
	var s CumulativeSeries
	totals := make(map[ID]decimal.Decimal)
	for _, a := range SortAllocations(allocs) {
		total, seen := totals[a.AssetID]
		if !seen {
			s.Assets = append(s.Assets, a.AssetID)
		}
		total = total.Add(a.amount())
		totals[a.AssetID] = total

		if n := len(s.Rows); n == 0 || s.Rows[n-1].Date != a.Date {
			s.Rows = append(s.Rows, CumulativeRow{Date: a.Date, Values: make(map[ID]decimal.Decimal)})
		}
		s.Rows[len(s.Rows)-1].Values[a.AssetID] = total
	}
	return s
}

// CarryForward returns the dense form of s: every row also holds the last
// known total of the assets that did not unlock on its date.
func (s CumulativeSeries) CarryForward() CumulativeSeries {
	histories := make(map[ID]*date.History[decimal.Decimal], len(s.Assets))
	for _, id := range s.Assets {
		histories[id] = new(date.History[decimal.Decimal])
	}
	for _, row := range s.Rows {
		for id, v := range row.Values {
			histories[id].Append(row.Date, v)
		}
	}

	dense := CumulativeSeries{Assets: slices.Clone(s.Assets)}
	for _, row := range s.Rows {
		values := make(map[ID]decimal.Decimal, len(s.Assets))
		for _, id := range s.Assets {
			if v, ok := histories[id].ValueAsOf(row.Date); ok {
				values[id] = v
			}
		}
		dense.Rows = append(dense.Rows, CumulativeRow{Date: row.Date, Values: values})
	}
	return dense
}

// Final returns the last total of every asset.
func (s CumulativeSeries) Final() map[ID]decimal.Decimal {
	final := make(map[ID]decimal.Decimal, len(s.Assets))
	for _, row := range s.Rows {
		maps.Copy(final, row.Values)
	}
	return final
}

// AssetValues flattens the series into one value per asset and date, the
// input shape of Collapse.
func (s CumulativeSeries) AssetValues() []AssetValue {
	var values []AssetValue
	for _, row := range s.Rows {
		for _, id := range s.Assets {
			if v, ok := row.Values[id]; ok {
				values = append(values, AssetValue{AssetID: id, Date: row.Date, Value: v})
			}
		}
	}
	return values
}

// Totals returns the total amount allocated to each asset.
func Totals(allocs []UnlockAllocation) map[ID]decimal.Decimal {
	totals := make(map[ID]decimal.Decimal)
	for _, a := range allocs {
		totals[a.AssetID] = totals[a.AssetID].Add(a.amount())
	}
	return totals
}

// MonthlyPoint is the unlock activity of one calendar month.
type MonthlyPoint struct {
	Month            date.Month      `json:"month"`
	AmountThisMonth  decimal.Decimal `json:"amountThisMonth"`
	CumulativeAmount decimal.Decimal `json:"cumulativeAmount"`
}

// MonthlyUnlocks buckets allocs by calendar month.
//
// There is one point per month holding at least one allocation, in month
// order; empty months are not synthesised. All assets are combined, so it is
// meant for single asset charts.
func MonthlyUnlocks(allocs []UnlockAllocation) []MonthlyPoint {
	var points []MonthlyPoint
	for _, p := range PeriodicUnlocks(allocs, date.Monthly) {
		points = append(points, MonthlyPoint{
			Month:            date.MonthOf(p.Range.From),
			AmountThisMonth:  p.Amount,
			CumulativeAmount: p.CumulativeAmount,
		})
	}
	return points
}

// PeriodPoint is the unlock activity of one calendar period.
type PeriodPoint struct {
	Period           string          `json:"period"`
	Range            date.Range      `json:"-"`
	Amount           decimal.Decimal `json:"amount"`
	CumulativeAmount decimal.Decimal `json:"cumulativeAmount"`
}

// PeriodicUnlocks is like MonthlyUnlocks for any calendar period.
func PeriodicUnlocks(allocs []UnlockAllocation, period date.Period) []PeriodPoint {
	var points []PeriodPoint
	cumulative := decimal.Zero
	for _, a := range SortAllocations(allocs) {
		amount := a.amount()
		cumulative = cumulative.Add(amount)

		if n := len(points); n == 0 || !points[n-1].Range.Contains(a.Date) {
			r := date.NewRange(a.Date, period)
			points = append(points, PeriodPoint{Period: r.Identifier(), Range: r, Amount: decimal.Zero})
		}
		last := &points[len(points)-1]
		last.Amount = last.Amount.Add(amount)
		last.CumulativeAmount = cumulative
	}
	return points
}
