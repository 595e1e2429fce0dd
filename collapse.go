package valuation

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/etnz/valuation/date"
	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of assets charted individually before the
// remaining ones are folded into OtherKey.
const DefaultTopN = 10

// OtherKey is the key of the synthetic series holding the folded assets.
const OtherKey ID = "other"

// Ranking orders the assets of values, most important first.
//
// A ranking may omit assets; they are then ranked after the others in order
// of appearance.
type Ranking func(values []AssetValue) []ID

// ByTotal ranks assets by decreasing sum of their values. Ties are broken by id.
func ByTotal(values []AssetValue) []ID {
	totals := make(map[ID]decimal.Decimal)
	for _, v := range values {
		totals[v.AssetID] = totals[v.AssetID].Add(v.Value)
	}
	ids := ByAppearance(values)
	slices.SortStableFunc(ids, func(a, b ID) int {
		if c := totals[b].Cmp(totals[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}

// ByAppearance ranks assets in order of first appearance in values.
func ByAppearance(values []AssetValue) []ID {
	var ids []ID
	seen := make(map[ID]bool)
	for _, v := range values {
		if !seen[v.AssetID] {
			seen[v.AssetID] = true
			ids = append(ids, v.AssetID)
		}
	}
	return ids
}

// ByOrder ranks the given ids first, in that order.
func ByOrder(ids ...ID) Ranking {
	return func([]AssetValue) []ID { return slices.Clone(ids) }
}

// SeriesPoint is a single value of a Series.
type SeriesPoint struct {
	Date  date.Date       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Series is the chronological values of one asset, or of the synthetic
// "other" bucket.
type Series struct {
	Key       ID            `json:"key"`
	Synthetic bool          `json:"synthetic,omitempty"`
	Points    []SeriesPoint `json:"points"`
}

// Collapsed is a set of series ready to be stacked.
type Collapsed struct {
	// Dates present in the input, in chronological order.
	Dates []date.Date `json:"dates"`
	// Series in rank order; the "other" series, if any, is last.
	Series []Series `json:"series"`
}

// Collapse keeps the k best ranked assets as individual series and folds all
// the others into a single OtherKey series.
//
// When there are k assets or fewer, every asset is kept unchanged and there
// is no "other" series. Otherwise "other" has a point on every input date,
// equal to the sum of the folded assets on that date (zero if none). The sum
// of the kept series and "other" is exactly the sum of all input values on
// every date.
//
// Series keys are unique: if a kept asset is itself named OtherKey, the
// synthetic series takes another key, see otherKey.
//
// Values for the same asset and date are added. A k lower than 1 means
// DefaultTopN, a nil rank means ByTotal.
func Collapse(values []AssetValue, k int, rank Ranking) Collapsed {
	if k < 1 {
		k = DefaultTopN
	}
	if rank == nil {
		rank = ByTotal
	}

	histories := make(map[ID]*date.History[decimal.Decimal])
	for _, v := range values {
		h, ok := histories[v.AssetID]
		if !ok {
			h = new(date.History[decimal.Decimal])
			histories[v.AssetID] = h
		}
		sum, _ := h.Get(v.Date)
		h.Append(v.Date, sum.Add(v.Value))
	}

	ranked := completeRanking(rank(values), values, histories)
	all := make([]*date.History[decimal.Decimal], 0, len(ranked))
	for _, id := range ranked {
		all = append(all, histories[id])
	}

	var c Collapsed
	c.Dates = slices.Collect(date.Iterate(all...))

	kept, folded := ranked, []ID(nil)
	if len(ranked) > k {
		kept, folded = ranked[:k], ranked[k:]
	}
	for _, id := range kept {
		s := Series{Key: id}
		for on, v := range histories[id].Values() {
			s.Points = append(s.Points, SeriesPoint{Date: on, Value: v})
		}
		c.Series = append(c.Series, s)
	}
	if len(folded) == 0 {
		return c
	}

	other := Series{Key: otherKey(kept), Synthetic: true}
	for _, on := range c.Dates {
		sum := decimal.Zero
		for _, id := range folded {
			if v, ok := histories[id].Get(on); ok {
				sum = sum.Add(v)
			}
		}
		other.Points = append(other.Points, SeriesPoint{Date: on, Value: sum})
	}
	c.Series = append(c.Series, other)
	return c
}

// otherKey returns OtherKey, or OtherKey followed by the first number that
// no kept asset uses, like "other-2", when a kept asset is named OtherKey.
func otherKey(kept []ID) ID {
	key := OtherKey
	for n := 2; slices.Contains(kept, key); n++ {
		key = ID(fmt.Sprintf("%s-%d", OtherKey, n))
	}
	return key
}

// completeRanking drops unknown or duplicate ids from ranked and appends the
// assets it missed, in order of appearance.
func completeRanking(ranked []ID, values []AssetValue, known map[ID]*date.History[decimal.Decimal]) []ID {
	out := make([]ID, 0, len(known))
	seen := make(map[ID]bool, len(known))
	add := func(id ID) {
		if _, ok := known[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range ranked {
		add(id)
	}
	for _, id := range ByAppearance(values) {
		add(id)
	}
	return out
}

// StackedRow holds the value of every series on one date.
type StackedRow struct {
	Date   date.Date              `json:"date"`
	Values map[ID]decimal.Decimal `json:"values"`
}

// Rows returns the per-date view of c, the shape stacked charts consume.
// A series without a point on a date is absent from that row.
func (c Collapsed) Rows() []StackedRow {
	rows := make([]StackedRow, len(c.Dates))
	index := make(map[date.Date]int, len(c.Dates))
	for i, on := range c.Dates {
		rows[i] = StackedRow{Date: on, Values: make(map[ID]decimal.Decimal)}
		index[on] = i
	}
	for _, s := range c.Series {
		for _, p := range s.Points {
			rows[index[p.Date]].Values[s.Key] = p.Value
		}
	}
	return rows
}

// Total returns the sum of every series on day.
func (c Collapsed) Total(day date.Date) decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.Date == day {
				total = total.Add(p.Value)
			}
		}
	}
	return total
}
