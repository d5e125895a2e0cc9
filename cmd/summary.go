package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/agent"
	"github.com/lionrock/treasury/renderer"
	"google.golang.org/genai"
)

// summaryCmd asks the AI analyst for a briefing of the projection.
type summaryCmd struct {
	date   string
	entity string
	base   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "generate an AI briefing of the treasury position" }
func (*summaryCmd) Usage() string {
	return `tpc summary [-d <date>] [-entity <entity>] [-base <ccy>]

  Feeds the monthly aggregates to Gemini and prints the resulting
  briefing. Requires GEMINI_API_KEY in the environment (a .env file is
  loaded at startup).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for forecast/actual split (defaults to today)")
	f.StringVar(&c.entity, "entity", "", "Entity scope (defaults to the whole group)")
	f.StringVar(&c.base, "base", string(treasury.RMB), "Base currency for conversion (HKD, RMB, USD)")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report := renderer.MonthlyMarkdown(months, agg.SafetyThreshold(), scope, base)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("initializing Gemini client: %w", err))
	}
	briefing, err := agent.NewSummarizer().Summarize(ctx, client, report)
	if err != nil {
		return fail(err)
	}
	render(briefing)
	return subcommands.ExitSuccess
}
