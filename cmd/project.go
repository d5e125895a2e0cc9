package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/renderer"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	date   string
	entity string
	base   string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the merged cash-flow projection" }
func (*projectCmd) Usage() string {
	return `tpc project [-d <date>] [-entity <entity>] [-base <ccy>]

  Regenerates the debt schedules under the saved scenario, merges them with
  the manual events and displays the stream with running balances.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for forecast/actual split (defaults to today)")
	f.StringVar(&c.entity, "entity", "", "Entity scope (defaults to the whole group)")
	f.StringVar(&c.base, "base", string(treasury.RMB), "Base currency for conversion (HKD, RMB, USD)")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	events := ledger.Project(now)
	lines := ledger.Aggregator(scope, base).RunningBalances(events)
	render(renderer.ProjectionMarkdown(lines, scope, base))
	return subcommands.ExitSuccess
}
