package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Month is a (year, month) calendar bucket.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month d belongs to.
func MonthOf(d Date) Month { return Month{d.Year(), d.Month()} }

// NewMonth returns a normalized Month, so that NewMonth(2024, 13) is January 2025.
func NewMonth(year int, month time.Month) Month { return MonthOf(New(year, month, 1)) }

// ParseMonth parses "2024-03" (or any date, reduced to its month).
func ParseMonth(str string) (Month, error) {
	d, err := Parse(str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", str, err)
	}
	return MonthOf(d), nil
}

// First returns the first day of the month.
func (m Month) First() Date { return New(m.Year, m.Month, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return New(m.Year, m.Month+1, 0) }

// Days returns the number of days in the month.
func (m Month) Days() int { return m.Last().Day() }

// Range returns the range of days of the month.
func (m Month) Range() Range { return Range{From: m.First(), To: m.Last()} }

// Add returns the month i months later.
func (m Month) Add(i int) Month { return NewMonth(m.Year, m.Month+time.Month(i)) }

// Before reports whether m is strictly before n.
func (m Month) Before(n Month) bool {
	if m.Year != n.Year {
		return m.Year < n.Year
	}
	return m.Month < n.Month
}

// Compare orders months by year, then month.
func (m Month) Compare(n Month) int {
	switch {
	case m.Before(n):
		return -1
	case n.Before(m):
		return 1
	default:
		return 0
	}
}

// String returns the "2006-01" key of the month.
func (m Month) String() string { return m.First().Format("2006-01") }

// Label returns the human label of the month, like "January 2024".
func (m Month) Label() string { return m.First().Format("January 2006") }

func (m Month) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Month) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
