package valuation

import (
	"testing"
	"time"

	"github.com/etnz/valuation/date"
)

func TestBuildMonthShape(t *testing.T) {
	// every month over three decades
	for m := date.NewMonth(2000, time.January); m.Before(date.NewMonth(2030, time.January)); m = m.Add(1) {
		g := BuildMonth(m, date.Date{}, nil)

		if rows := len(g.Weeks); rows < 4 || rows > 6 {
			t.Errorf("%v has %d rows, want 4 to 6", m, rows)
		}
		current := 0
		for i, week := range g.Weeks {
			if len(week) != 7 {
				t.Errorf("%v row %d has %d cells, want 7", m, i, len(week))
			}
			if week[0].Date.Weekday() != time.Sunday {
				t.Errorf("%v row %d starts on %v, want Sunday", m, i, week[0].Date.Weekday())
			}
		}
		previous := date.Date{}
		for d := range g.Days() {
			if !previous.IsZero() && d.Date != previous.Add(1) {
				t.Errorf("%v: %v follows %v, want consecutive days", m, d.Date, previous)
			}
			previous = d.Date
			if d.IsCurrentMonth != (date.MonthOf(d.Date) == m) {
				t.Errorf("%v: %v IsCurrentMonth = %v", m, d.Date, d.IsCurrentMonth)
			}
			if d.IsCurrentMonth {
				current++
			}
		}
		if current != m.Days() {
			t.Errorf("%v has %d current days, want %d", m, current, m.Days())
		}
	}
}

func TestBuildMonthPadding(t *testing.T) {
	testCases := []struct {
		month       date.Month
		rows        int
		first, last date.Date
	}{
		// March 2024 starts on a Friday and ends on a Sunday.
		{date.NewMonth(2024, time.March), 6, day("2024-02-25"), day("2024-04-06")},
		// February 2026 starts on a Sunday and has 28 days.
		{date.NewMonth(2026, time.February), 4, day("2026-02-01"), day("2026-02-28")},
		// September 2024 starts on a Sunday.
		{date.NewMonth(2024, time.September), 5, day("2024-09-01"), day("2024-10-05")},
	}
	for _, tc := range testCases {
		t.Run(tc.month.String(), func(t *testing.T) {
			g := BuildMonth(tc.month, date.Date{}, nil)
			if len(g.Weeks) != tc.rows {
				t.Errorf("rows = %d, want %d", len(g.Weeks), tc.rows)
			}
			if r := g.Range(); r.From != tc.first || r.To != tc.last {
				t.Errorf("Range() = %v..%v, want %v..%v", r.From, r.To, tc.first, tc.last)
			}
		})
	}
}

func TestBuildMonthToday(t *testing.T) {
	m := date.NewMonth(2024, time.March)
	testCases := []struct {
		now  date.Date
		want int
	}{
		{day("2024-03-10"), 1},
		{day("2024-02-25"), 1}, // leading padding
		{day("2024-04-06"), 1}, // trailing padding
		{day("2024-02-24"), 0},
		{day("2024-04-07"), 0},
	}
	for _, tc := range testCases {
		g := BuildMonth(m, tc.now, nil)
		n := 0
		for d := range g.Days() {
			if d.IsToday {
				n++
				if d.Date != tc.now {
					t.Errorf("now = %v: %v is today", tc.now, d.Date)
				}
			}
		}
		if n != tc.want {
			t.Errorf("now = %v: %d days are today, want %d", tc.now, n, tc.want)
		}
	}
}

func TestBuildMonthEvents(t *testing.T) {
	idx := NewEventIndex([]UnlockAllocation{
		alloc("A", "2024-03-15", 10),
		alloc("B", "2024-03-15", 5),
		alloc("A", "2024-02-26", 1), // padding day
		alloc("A", "2024-05-01", 1), // not displayed
	})
	g := BuildMonth(date.NewMonth(2024, time.March), date.Date{}, idx)

	d, ok := g.Day(day("2024-03-15"))
	if !ok || d.Count() != 2 {
		t.Fatalf("Day(2024-03-15) = %v, %v want 2 events", d, ok)
	}
	if d.Events[0].AssetID != "A" || d.Events[1].AssetID != "B" {
		t.Errorf("Day(2024-03-15) events = %v, want A then B", d.Events)
	}
	if d, _ := g.Day(day("2024-02-26")); d.Count() != 1 {
		t.Errorf("padding day 2024-02-26 has %d events, want 1", d.Count())
	}
	if got := g.EventCount(); got != 2 {
		t.Errorf("EventCount() = %d, want 2: padding days do not count", got)
	}
	if _, ok := g.Day(day("2024-05-01")); ok {
		t.Errorf("Day(2024-05-01) found, want not displayed")
	}
}

func TestCalendarViewNavigation(t *testing.T) {
	now := day("2024-01-20")
	idx := NewEventIndex([]UnlockAllocation{alloc("A", "2024-01-25", 3)})

	v := NewCalendarView(now).Select(day("2024-01-25"))
	if !v.HasSelection() || len(v.SelectedEvents(idx)) != 1 {
		t.Fatalf("Select(2024-01-25) = %+v, want one selected event", v)
	}

	testCases := []struct {
		name string
		got  CalendarView
		want date.Month
	}{
		{"next", v.Next(), date.NewMonth(2024, time.February)},
		{"prev", v.Prev(), date.NewMonth(2023, time.December)},
		{"jump", v.Jump(2025, time.July), date.NewMonth(2025, time.July)},
		{"today", v.Next().Next().Today(now), date.NewMonth(2024, time.January)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got.Month != tc.want {
				t.Errorf("Month = %v, want %v", tc.got.Month, tc.want)
			}
			if tc.got.HasSelection() {
				t.Errorf("Selected = %v, want cleared by navigation", tc.got.Selected)
			}
		})
	}

	if v.ClearSelection().HasSelection() {
		t.Errorf("ClearSelection() kept the selection")
	}
	if g := v.Grid(now, idx); g.Month != v.Month || g.EventCount() != 1 {
		t.Errorf("Grid() = %v with %d events, want %v with 1", g.Month, g.EventCount(), v.Month)
	}
}
