package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury/fxrates"
)

// ratesCmd refreshes the scenario's exchange rates from the quote service.
type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "refresh exchange rates from the quote service" }
func (*ratesCmd) Usage() string {
	return `tpc rates

  Fetches the current HKD→RMB and USD→RMB rates and stores them in the
  saved scenario. Quotes are cached on disk for a day.
`
}

func (*ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, err := fxrates.New().Latest()
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	stress := ledger.Stress()
	stress.Rates = rates
	ledger.SetStress(stress)
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("HKD→RMB: %s\n", rates.HKDToRMB)
	fmt.Printf("USD→RMB: %s\n", rates.USDToRMB)
	return subcommands.ExitSuccess
}
