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

// txCmd records one manual cash-flow event.
type txCmd struct {
	date        string
	entity      string
	category    string
	description string
	hkd         string
	rmb         string
	usd         string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a manual cash-flow event" }
func (*txCmd) Usage() string {
	return `tpc tx -entity <entity> -category <cat> [-d <date>] [-desc <text>] [-hkd n] [-rmb n] [-usd n]

  Records a manual cash-flow event. Amounts follow the unit convention of
  100 million per unit; outflows are negative.

Usage Examples:
$ tpc tx -entity HQ -category OPERATING -desc "land premium" -rmb -3.5

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the event (defaults to today)")
	f.StringVar(&c.entity, "entity", "", "Owning entity (PROPERTY, ENTERPRISE, HQ)")
	f.StringVar(&c.category, "category", string(treasury.Operating), "Category (OPERATING, FINANCING, INVESTING, INTERNAL)")
	f.StringVar(&c.description, "desc", "", "Free-text description")
	f.StringVar(&c.hkd, "hkd", "0", "HKD amount")
	f.StringVar(&c.rmb, "rmb", "0", "RMB amount")
	f.StringVar(&c.usd, "usd", "0", "USD amount")
}

func (c *txCmd) event(now date.Date) (treasury.CashFlowEvent, error) {
	var e treasury.CashFlowEvent
	var err error

	if e.Date, err = parseDateFlag(c.date); err != nil {
		return e, err
	}
	e.Entity = treasury.Entity(c.entity)
	e.Category = treasury.Category(c.category)
	e.Description = c.description
	e.Status = treasury.StatusOn(e.Date, now)
	if e.Amounts.HKD, err = decimal.NewFromString(c.hkd); err != nil {
		return e, fmt.Errorf("invalid -hkd %q: %w", c.hkd, err)
	}
	if e.Amounts.RMB, err = decimal.NewFromString(c.rmb); err != nil {
		return e, fmt.Errorf("invalid -rmb %q: %w", c.rmb, err)
	}
	if e.Amounts.USD, err = decimal.NewFromString(c.usd); err != nil {
		return e, fmt.Errorf("invalid -usd %q: %w", c.usd, err)
	}
	if e.Amounts.IsZero() {
		return e, fmt.Errorf("at least one of -hkd, -rmb, -usd must be non-zero")
	}
	return e, nil
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := c.event(date.Today())
	if err != nil {
		return fail(err)
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	// validate here first so the assigned id is visible for the printout.
	if err := e.Validate(); err != nil {
		return fail(err)
	}
	if err := ledger.Append(e); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded event on %s (%s)\n", e.Date, e.ID)
	return subcommands.ExitSuccess
}
