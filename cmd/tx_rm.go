package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type txRmCmd struct {
	id string
}

func (*txRmCmd) Name() string     { return "tx-rm" }
func (*txRmCmd) Synopsis() string { return "remove a manual cash-flow event" }
func (*txRmCmd) Usage() string {
	return `tpc tx-rm -id <event-id>

  Removes a manual event. Debt-generated events cannot be removed this
  way; remove or edit the debt instead.
`
}

func (c *txRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the event to remove")
}

func (c *txRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("-id is required"))
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteEvent(c.id); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed event %s\n", c.id)
	return subcommands.ExitSuccess
}
