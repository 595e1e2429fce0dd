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

type monthsCmd struct {
	in string
}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "list the months holding an unlock" }
func (*monthsCmd) Usage() string {
	return `vcs months -in <sources.json>

  Lists the distinct months holding at least one unlock, in chronological order.
`
}

func (c *monthsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Sources file (JSON).")
}

func (c *monthsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	labels := valuation.MonthLabels(s.Allocations)
	return output(labels, func() string { return renderer.MonthsMarkdown(labels) })
}
