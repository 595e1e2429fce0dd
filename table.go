package valuation

import (
	"slices"

	"github.com/etnz/valuation/date"
)

// Table is a sparse mapping from date to partial record, the scratchpad all
// sources are merged into.
//
// A Table belongs to a single computation: create a new one with NewTable
// every time the inputs change.
type Table struct {
	records map[date.Date]*DatedRecord
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{records: make(map[date.Date]*DatedRecord)}
}

// at returns the record for day, creating an empty one if needed.
func (t *Table) at(day date.Date) *DatedRecord {
	r, ok := t.records[day]
	if !ok {
		r = &DatedRecord{Date: day}
		t.records[day] = r
	}
	return r
}

// Len returns the number of distinct dates in the table.
func (t *Table) Len() int { return len(t.records) }

// Get returns a copy of the record at day.
func (t *Table) Get(day date.Date) (DatedRecord, bool) {
	r, ok := t.records[day]
	if !ok {
		return DatedRecord{}, false
	}
	return r.clone(), true
}

// Sequence returns the records in chronological order.
//
// It returns nil for an empty table: callers should read it as "no chart
// data", not as an error. The returned records share nothing with the table.
func (t *Table) Sequence() []DatedRecord {
	if len(t.records) == 0 {
		return nil
	}
	seq := make([]DatedRecord, 0, len(t.records))
	for _, r := range t.records {
		seq = append(seq, r.clone())
	}
	slices.SortFunc(seq, func(a, b DatedRecord) int { return a.Date.Compare(b.Date) })
	return seq
}
