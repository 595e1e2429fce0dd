package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/valuation"
	"github.com/etnz/valuation/date"
	"github.com/etnz/valuation/renderer"
	"github.com/google/subcommands"
)

type calendarCmd struct {
	in       string
	month    string
	today    string
	selected string
	offset   int
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the unlock calendar of a month" }
func (*calendarCmd) Usage() string {
	return `vcs calendar -in <sources.json> [-month <YYYY-MM>] [-n <offset>] [-today <date>] [-select <date>]

  Displays a month grid, Sunday first, with the number of unlocks of every
  day. The month defaults to the current one; -n moves forward or backward
  from it. -select lists the unlocks of one day.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Sources file (JSON).")
	f.StringVar(&c.month, "month", "", "Month to display (YYYY-MM). Defaults to the month of -today.")
	f.IntVar(&c.offset, "n", 0, "Number of months to move from -month, negative to go back.")
	f.StringVar(&c.today, "today", "", "Current date. Defaults to today.")
	f.StringVar(&c.selected, "select", "", "Day whose unlocks are listed.")
}

// calendarResult is the JSON output of the calendar command.
type calendarResult struct {
	View     valuation.CalendarView       `json:"view"`
	Grid     valuation.MonthGrid          `json:"grid"`
	Selected []valuation.UnlockAllocation `json:"selected,omitempty"`
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := date.Today()
	if c.today != "" {
		var err error
		if now, err = date.Parse(c.today); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	view := valuation.NewCalendarView(now)
	if c.month != "" {
		m, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		view = view.Jump(m.Year, m.Month)
	}
	for range max(c.offset, 0) {
		view = view.Next()
	}
	for range max(-c.offset, 0) {
		view = view.Prev()
	}
	if c.selected != "" {
		day, err := date.Parse(c.selected)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing selected date: %v\n", err)
			return subcommands.ExitUsageError
		}
		view = view.Select(day)
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s, err := DecodeSources(cfg, c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sources: %v\n", err)
		return subcommands.ExitFailure
	}

	idx := valuation.NewEventIndex(s.Allocations)
	grid := view.Grid(now, idx)
	res := calendarResult{View: view, Grid: grid, Selected: view.SelectedEvents(idx)}
	return output(res, func() string { return renderer.CalendarMarkdown(view, grid, idx) })
}
