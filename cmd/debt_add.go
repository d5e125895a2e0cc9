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

// debtAddCmd holds the flags for the 'debt-add' subcommand.
type debtAddCmd struct {
	name      string
	lender    string
	loanType  string
	entity    string
	currency  string
	principal string
	rate      string
	benchmark string
	spread    string
	start     string
	end       string
	frequency string
	status    string
	guarantor string
	remarks   string
}

func (*debtAddCmd) Name() string     { return "debt-add" }
func (*debtAddCmd) Synopsis() string { return "record a debt instrument in the ledger" }
func (*debtAddCmd) Usage() string {
	return `tpc debt-add -name <name> -entity <entity> -currency <ccy> -principal <n> -rate <pct> -start <date> -end <date> [options]

  Records a debt instrument. The principal unit is 100 million of the
  denomination currency. Dates are YYYY-MM-DD.

Usage Examples:
$ tpc debt-add -name "CCB facility" -entity PROPERTY -currency RMB -principal 10 \
    -rate 4 -benchmark SHIBOR -frequency QUARTERLY -start 2024-01-01 -end 2027-01-01

`
}

func (c *debtAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the debt")
	f.StringVar(&c.lender, "lender", "", "Lender name")
	f.StringVar(&c.loanType, "type", "", "Loan type tag")
	f.StringVar(&c.entity, "entity", "", "Owning entity (PROPERTY, ENTERPRISE, HQ)")
	f.StringVar(&c.currency, "currency", string(treasury.RMB), "Denomination currency (HKD, RMB, USD)")
	f.StringVar(&c.principal, "principal", "", "Principal amount, unit of 100 million")
	f.StringVar(&c.rate, "rate", "", "Base interest rate in percent")
	f.StringVar(&c.benchmark, "benchmark", string(treasury.FIXED), "Benchmark (SHIBOR, HIBOR, SOFR, FIXED)")
	f.StringVar(&c.spread, "spread", "0", "Spread over benchmark in bps (informational)")
	f.StringVar(&c.start, "start", "", "Start date (draw date)")
	f.StringVar(&c.end, "end", "", "End date (maturity)")
	f.StringVar(&c.frequency, "frequency", string(treasury.Quarterly), "Payment frequency (MONTHLY, QUARTERLY, SEMIANNUAL, ANNUAL, AT_MATURITY)")
	f.StringVar(&c.status, "status", string(treasury.Planned), "Lifecycle status (PLANNED, ACTIVE, SETTLED)")
	f.StringVar(&c.guarantor, "guarantor", "", "Guarantor")
	f.StringVar(&c.remarks, "remarks", "", "Free-text remarks")
}

// debt builds the instrument from the flags. Validation proper happens in
// the ledger; this only converts the textual flag values.
func (c *debtAddCmd) debt() (treasury.DebtInstrument, error) {
	var d treasury.DebtInstrument
	var err error

	d.Name = c.name
	d.Lender = c.lender
	d.LoanType = c.loanType
	d.Entity = treasury.Entity(c.entity)
	d.Currency = treasury.Currency(c.currency)
	d.Benchmark = treasury.Benchmark(c.benchmark)
	d.Frequency = treasury.Frequency(c.frequency)
	d.Status = treasury.DebtStatus(c.status)
	d.Guarantor = c.guarantor
	d.Remarks = c.remarks

	if d.Principal, err = decimal.NewFromString(c.principal); err != nil {
		return d, fmt.Errorf("invalid -principal %q: %w", c.principal, err)
	}
	if d.BaseRate, err = decimal.NewFromString(c.rate); err != nil {
		return d, fmt.Errorf("invalid -rate %q: %w", c.rate, err)
	}
	if d.SpreadBps, err = decimal.NewFromString(c.spread); err != nil {
		return d, fmt.Errorf("invalid -spread %q: %w", c.spread, err)
	}
	if d.Start, err = date.Parse(c.start); err != nil {
		return d, fmt.Errorf("invalid -start: %w", err)
	}
	if d.End, err = date.Parse(c.end); err != nil {
		return d, fmt.Errorf("invalid -end: %w", err)
	}
	return d, nil
}

func (c *debtAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := c.debt()
	if err != nil {
		return fail(err)
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	// validate here first so the assigned id is visible for the printout.
	if err := d.Validate(); err != nil {
		return fail(err)
	}
	if err := ledger.AddDebt(d); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded debt %q (%s)\n", d.Name, d.ID)
	return subcommands.ExitSuccess
}
