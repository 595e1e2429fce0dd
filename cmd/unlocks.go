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

type unlocksCmd struct {
	in      string
	monthly bool
	period  string
}

func (*unlocksCmd) Name() string     { return "unlocks" }
func (*unlocksCmd) Synopsis() string { return "display the token unlock schedule" }
func (*unlocksCmd) Usage() string {
	return `vcs unlocks -in <sources.json> [-monthly | -p <period>]

  Displays the cumulative unlocked amount of every asset, carried forward on
  every unlock date. With -monthly or -p, displays the amount unlocked per
  calendar period instead.
`
}

func (c *unlocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Sources file (JSON).")
	f.BoolVar(&c.monthly, "monthly", false, "Aggregate unlocks per month.")
	f.StringVar(&c.period, "p", "", "Aggregate unlocks per period (day, week, month, quarter, year).")
}

func (c *unlocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	switch {
	case c.monthly:
		points := valuation.MonthlyUnlocks(s.Allocations)
		return output(points, func() string { return renderer.MonthlyUnlocksMarkdown(points) })
	case c.period != "":
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		points := valuation.PeriodicUnlocks(s.Allocations, p)
		return output(points, func() string { return renderer.PeriodicUnlocksMarkdown(p.String(), points) })
	}

	series := valuation.CumulativeByAsset(s.Allocations).CarryForward()
	return output(series, func() string { return renderer.UnlocksMarkdown(series) })
}
