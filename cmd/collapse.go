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

type collapseCmd struct {
	in   string
	k    int
	rank string
	from string
}

func (*collapseCmd) Name() string     { return "collapse" }
func (*collapseCmd) Synopsis() string { return "display the top assets, the rest aggregated as other" }
func (*collapseCmd) Usage() string {
	return `vcs collapse -in <sources.json> [-k <n>] [-rank total|appearance] [-from portfolio|unlocks]

  Keeps the k highest ranked assets of a composition and aggregates every
  other one into a single "other" series, for stacked charts.
`
}

func (c *collapseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Sources file (JSON).")
	f.IntVar(&c.k, "k", 0, "Number of series to keep. Defaults to the configured top_n.")
	f.StringVar(&c.rank, "rank", "total", "Ranking of the assets: total or appearance.")
	f.StringVar(&c.from, "from", "portfolio", "Composition to collapse: portfolio values or cumulative unlocks.")
}

func (c *collapseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rank valuation.Ranking
	switch c.rank {
	case "total":
		rank = valuation.ByTotal
	case "appearance":
		rank = valuation.ByAppearance
	default:
		fmt.Fprintf(os.Stderr, "Unknown ranking %q\n", c.rank)
		return subcommands.ExitUsageError
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

	var values []valuation.AssetValue
	switch c.from {
	case "portfolio":
		values = s.Portfolio
	case "unlocks":
		values = valuation.CumulativeByAsset(s.Allocations).CarryForward().AssetValues()
	default:
		fmt.Fprintf(os.Stderr, "Unknown composition %q\n", c.from)
		return subcommands.ExitUsageError
	}

	k := c.k
	if k < 1 {
		k = cfg.TopN
	}
	collapsed := valuation.Collapse(values, k, rank)
	return output(collapsed, func() string {
		return renderer.CollapsedMarkdown(collapsed, renderer.Options{Currency: cfg.Currency})
	})
}
