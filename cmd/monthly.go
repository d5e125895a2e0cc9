package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/renderer"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	date   string
	entity string
	base   string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly net-flow summaries" }
func (*monthlyCmd) Usage() string {
	return `tpc monthly [-d <date>] [-entity <entity>] [-base <ccy>]

  Displays inflow, outflow, net and month-end balance per calendar month.
  Intra-group transfers move individual balances but are excluded from the
  flow figures.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for forecast/actual split (defaults to today)")
	f.StringVar(&c.entity, "entity", "", "Entity scope (defaults to the whole group)")
	f.StringVar(&c.base, "base", string(treasury.RMB), "Base currency for conversion (HKD, RMB, USD)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	scope, err := parseScope(c.entity)
	if err != nil {
		return fail(err)
	}
	base, err := treasury.ParseCurrency(c.base)
	if err != nil {
		return fail(err)
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	agg := ledger.Aggregator(scope, base)
	months := agg.MonthlySummaries(ledger.Project(now))
	render(renderer.MonthlyMarkdown(months, agg.SafetyThreshold(), scope, base))
	return subcommands.ExitSuccess
}
