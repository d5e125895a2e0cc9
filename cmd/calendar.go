package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/renderer"
)

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	date   string
	entity string
	base   string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the daily balance calendar" }
func (*calendarCmd) Usage() string {
	return `tpc calendar [-d <date>] [-entity <entity>] [-base <ccy>]

  Walks every calendar day over the projection window, carrying balances
  forward. Days below the safety threshold are flagged.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the window (defaults to today)")
	f.StringVar(&c.entity, "entity", "", "Entity scope (defaults to the whole group)")
	f.StringVar(&c.base, "base", string(treasury.RMB), "Base currency for conversion (HKD, RMB, USD)")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	from, to := treasury.CalendarWindow(now, events)
	agg := ledger.Aggregator(scope, base)
	days := agg.CalendarBalances(events, from, to)
	render(renderer.CalendarMarkdown(days, agg.SafetyThreshold(), scope, base))
	return subcommands.ExitSuccess
}
