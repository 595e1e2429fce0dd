package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/valuation"
	"github.com/etnz/valuation/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	in string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the merged valuation chart of an asset" }
func (*chartCmd) Usage() string {
	return `vcs chart -in <sources.json>

  Merges the price history, funding rounds and secondary market orders of
  the sources file into one chronological valuation series.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Sources file (JSON).")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	chart := valuation.BuildValuationChart(s, valuation.ChartOptions{Match: cfg.MatchPolicy()})
	if chart.NoData {
		logger.Warn("no meaningful valuation to plot")
	}
	for _, o := range chart.Unmatched {
		logger.WithField("order", o.OrderID).Warnf("order type %q is neither a buy nor a sell, ignored", o.Type)
	}

	return output(chart, func() string {
		return renderer.ChartMarkdown(chart, renderer.Options{Currency: cfg.Currency})
	})
}
