package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type debtRmCmd struct {
	id string
}

func (*debtRmCmd) Name() string     { return "debt-rm" }
func (*debtRmCmd) Synopsis() string { return "remove a debt instrument from the ledger" }
func (*debtRmCmd) Usage() string {
	return `tpc debt-rm -id <debt-id>

  Removes a debt instrument. Its generated cash-flow events disappear from
  the next projection.
`
}

func (c *debtRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the debt to remove")
}

func (c *debtRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("-id is required"))
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteDebt(c.id); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed debt %s\n", c.id)
	return subcommands.ExitSuccess
}
