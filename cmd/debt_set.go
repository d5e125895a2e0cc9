package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

// debtSetCmd edits fields of an existing debt instrument. Unset flags keep
// the current value.
type debtSetCmd struct {
	id        string
	name      string
	lender    string
	principal string
	rate      string
	benchmark string
	spread    string
	start     string
	end       string
	frequency string
	status    string
	remarks   string
}

func (*debtSetCmd) Name() string     { return "debt-set" }
func (*debtSetCmd) Synopsis() string { return "edit fields of a debt instrument" }
func (*debtSetCmd) Usage() string {
	return `tpc debt-set -id <debt-id> [field flags]

  Edits the named fields of an existing debt. The next projection
  regenerates its schedule from the updated values.

Usage Examples:
$ tpc debt-set -id 4f2... -status ACTIVE
$ tpc debt-set -id 4f2... -rate 4.35 -end 2028-01-01

`
}

func (c *debtSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the debt to edit")
	f.StringVar(&c.name, "name", "", "Display name of the debt")
	f.StringVar(&c.lender, "lender", "", "Lender name")
	f.StringVar(&c.principal, "principal", "", "Principal amount, unit of 100 million")
	f.StringVar(&c.rate, "rate", "", "Base interest rate in percent")
	f.StringVar(&c.benchmark, "benchmark", "", "Benchmark (SHIBOR, HIBOR, SOFR, FIXED)")
	f.StringVar(&c.spread, "spread", "", "Spread over benchmark in bps")
	f.StringVar(&c.start, "start", "", "Start date (draw date)")
	f.StringVar(&c.end, "end", "", "End date (maturity)")
	f.StringVar(&c.frequency, "frequency", "", "Payment frequency")
	f.StringVar(&c.status, "status", "", "Lifecycle status (PLANNED, ACTIVE, SETTLED)")
	f.StringVar(&c.remarks, "remarks", "", "Free-text remarks")
}

// apply overlays the set flags onto d.
func (c *debtSetCmd) apply(d *treasury.DebtInstrument) error {
	var err error
	if c.name != "" {
		d.Name = c.name
	}
	if c.lender != "" {
		d.Lender = c.lender
	}
	if c.benchmark != "" {
		d.Benchmark = treasury.Benchmark(c.benchmark)
	}
	if c.frequency != "" {
		d.Frequency = treasury.Frequency(c.frequency)
	}
	if c.status != "" {
		d.Status = treasury.DebtStatus(c.status)
	}
	if c.remarks != "" {
		d.Remarks = c.remarks
	}
	if c.principal != "" {
		if d.Principal, err = decimal.NewFromString(c.principal); err != nil {
			return fmt.Errorf("invalid -principal %q: %w", c.principal, err)
		}
	}
	if c.rate != "" {
		if d.BaseRate, err = decimal.NewFromString(c.rate); err != nil {
			return fmt.Errorf("invalid -rate %q: %w", c.rate, err)
		}
	}
	if c.spread != "" {
		if d.SpreadBps, err = decimal.NewFromString(c.spread); err != nil {
			return fmt.Errorf("invalid -spread %q: %w", c.spread, err)
		}
	}
	if c.start != "" {
		if d.Start, err = date.Parse(c.start); err != nil {
			return fmt.Errorf("invalid -start: %w", err)
		}
	}
	if c.end != "" {
		if d.End, err = date.Parse(c.end); err != nil {
			return fmt.Errorf("invalid -end: %w", err)
		}
	}
	return nil
}

func (c *debtSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("-id is required"))
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	d := ledger.Debt(c.id)
	if d == nil {
		return fail(fmt.Errorf("no debt with id %q", c.id))
	}
	if err := c.apply(d); err != nil {
		return fail(err)
	}
	if err := ledger.UpdateDebt(*d); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated debt %q (%s)\n", d.Name, d.ID)
	return subcommands.ExitSuccess
}
