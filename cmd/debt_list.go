package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury/renderer"
)

type debtListCmd struct{}

func (*debtListCmd) Name() string     { return "debts" }
func (*debtListCmd) Synopsis() string { return "list the debt instruments" }
func (*debtListCmd) Usage() string {
	return `tpc debts

  Lists the recorded debt instruments.
`
}

func (*debtListCmd) SetFlags(*flag.FlagSet) {}

func (*debtListCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	render(renderer.DebtsMarkdown(ledger.Debts()))
	return subcommands.ExitSuccess
}
