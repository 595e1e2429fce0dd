package valuation

import (
	"iter"
	"time"

	"github.com/etnz/valuation/date"
)

// EventIndex maps a date to the allocations unlocking on that date.
type EventIndex map[date.Date][]UnlockAllocation

// NewEventIndex indexes allocs by date, once for every grid built from it.
func NewEventIndex(allocs []UnlockAllocation) EventIndex {
	idx := make(EventIndex)
	for _, a := range SortAllocations(allocs) {
		idx[a.Date] = append(idx[a.Date], a)
	}
	return idx
}

// Events returns the allocations unlocking on day.
func (idx EventIndex) Events(day date.Date) []UnlockAllocation { return idx[day] }

// CalendarDay is a single cell of a month grid.
type CalendarDay struct {
	Date           date.Date          `json:"date"`
	IsCurrentMonth bool               `json:"isCurrentMonth"`
	IsToday        bool               `json:"isToday"`
	Events         []UnlockAllocation `json:"events,omitempty"`
}

// Count returns the number of events of the day.
func (d CalendarDay) Count() int { return len(d.Events) }

// MonthGrid is the month view of a calendar: full weeks from Sunday to
// Saturday, padded with the days of the adjacent months.
type MonthGrid struct {
	Month date.Month      `json:"month"`
	Weeks [][]CalendarDay `json:"weeks"`
}

// BuildMonth builds the grid of month.
//
// The first row starts with the tail of the previous month so that day 1
// falls on its weekday (Sunday first); the last row is completed with the
// first days of the next month. A cell is today when its date is now.
func BuildMonth(month date.Month, now date.Date, idx EventIndex) MonthGrid {
	g := MonthGrid{Month: month}
	first := month.First()

	var week []CalendarDay
	push := func(day date.Date, current bool) {
		week = append(week, CalendarDay{
			Date:           day,
			IsCurrentMonth: current,
			IsToday:        day == now,
			Events:         idx.Events(day),
		})
		if len(week) == 7 {
			g.Weeks = append(g.Weeks, week)
			week = nil
		}
	}

	lead := int(first.Weekday() - time.Sunday)
	for i := lead; i > 0; i-- {
		push(first.Add(-i), false)
	}
	for day := range month.Range().Days() {
		push(day, true)
	}
	for next := month.Last().Add(1); len(week) > 0; next = next.Add(1) {
		push(next, false)
	}
	return g
}

// Range returns the displayed days, padding included.
func (g MonthGrid) Range() date.Range {
	if len(g.Weeks) == 0 {
		return date.Range{}
	}
	last := g.Weeks[len(g.Weeks)-1]
	return date.Range{From: g.Weeks[0][0].Date, To: last[len(last)-1].Date}
}

// Days iterates over every cell of the grid, row by row.
func (g MonthGrid) Days() iter.Seq[CalendarDay] {
	return func(yield func(CalendarDay) bool) {
		for _, week := range g.Weeks {
			for _, d := range week {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Day returns the cell of day, if displayed.
func (g MonthGrid) Day(day date.Date) (CalendarDay, bool) {
	for d := range g.Days() {
		if d.Date == day {
			return d, true
		}
	}
	return CalendarDay{}, false
}

// EventCount returns the number of events in the days of the month itself.
func (g MonthGrid) EventCount() int {
	n := 0
	for d := range g.Days() {
		if d.IsCurrentMonth {
			n += d.Count()
		}
	}
	return n
}

// CalendarView is the navigation state of a calendar: the displayed month
// and an optional selected day.
//
// It is a value owned by the caller; every navigation returns a new view.
type CalendarView struct {
	Month    date.Month `json:"month"`
	Selected date.Date  `json:"selected,omitzero"` // zero when nothing is selected
}

// NewCalendarView returns a view on the month of now.
func NewCalendarView(now date.Date) CalendarView { return CalendarView{Month: date.MonthOf(now)} }

// Next moves to the next month and clears the selection.
func (v CalendarView) Next() CalendarView { return CalendarView{Month: v.Month.Add(1)} }

// Prev moves to the previous month and clears the selection.
func (v CalendarView) Prev() CalendarView { return CalendarView{Month: v.Month.Add(-1)} }

// Jump moves to the given month and clears the selection.
func (v CalendarView) Jump(year int, month time.Month) CalendarView {
	return CalendarView{Month: date.NewMonth(year, month)}
}

// Today moves to the month of now and clears the selection.
func (v CalendarView) Today(now date.Date) CalendarView { return NewCalendarView(now) }

// Select selects day, keeping the displayed month.
func (v CalendarView) Select(day date.Date) CalendarView {
	v.Selected = day
	return v
}

// ClearSelection unselects the selected day.
func (v CalendarView) ClearSelection() CalendarView {
	v.Selected = date.Date{}
	return v
}

// HasSelection reports whether a day is selected.
func (v CalendarView) HasSelection() bool { return !v.Selected.IsZero() }

// SelectedEvents returns the events of the selected day, if any.
func (v CalendarView) SelectedEvents(idx EventIndex) []UnlockAllocation {
	if !v.HasSelection() {
		return nil
	}
	return idx.Events(v.Selected)
}

// Grid builds the grid of the displayed month.
func (v CalendarView) Grid(now date.Date, idx EventIndex) MonthGrid {
	return BuildMonth(v.Month, now, idx)
}
