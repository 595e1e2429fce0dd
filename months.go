package valuation

import (
	"slices"

	"github.com/etnz/valuation/date"
)

// MonthIndex returns the distinct months holding at least one allocation,
// ordered by year then month.
func MonthIndex(allocs []UnlockAllocation) []date.Month {
	seen := make(map[date.Month]bool)
	var months []date.Month
	for _, a := range allocs {
		m := date.MonthOf(a.Date)
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	slices.SortFunc(months, date.Month.Compare)
	return months
}

// MonthLabels returns the "Month YYYY" labels of MonthIndex(allocs).
func MonthLabels(allocs []UnlockAllocation) []string {
	months := MonthIndex(allocs)
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.Label()
	}
	return labels
}
