package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/shopspring/decimal"
)

// openingCmd sets or shows an entity's opening balances.
type openingCmd struct {
	entity string
	hkd    string
	rmb    string
	usd    string
}

func (*openingCmd) Name() string     { return "opening" }
func (*openingCmd) Synopsis() string { return "show or set an entity's opening balances" }
func (*openingCmd) Usage() string {
	return `tpc opening [-entity <entity>] [-hkd n] [-rmb n] [-usd n]

  Without amount flags, prints the opening balances. With amount flags,
  replaces the entity's opening triple (unset currencies become zero).

Usage Examples:
$ tpc opening -entity PROPERTY -rmb 120 -hkd 15

`
}

func (c *openingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entity, "entity", "", "Entity to set (PROPERTY, ENTERPRISE, HQ)")
	f.StringVar(&c.hkd, "hkd", "", "HKD opening balance")
	f.StringVar(&c.rmb, "rmb", "", "RMB opening balance")
	f.StringVar(&c.usd, "usd", "", "USD opening balance")
}

func (c *openingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	if c.hkd != "" || c.rmb != "" || c.usd != "" {
		entity, err := treasury.ParseEntity(c.entity)
		if err != nil {
			return fail(err)
		}
		if entity == treasury.EntityAll {
			return fail(fmt.Errorf("opening balances belong to a single entity, not the group scope"))
		}
		var a treasury.Amounts
		for _, v := range []struct {
			dst   *decimal.Decimal
			value string
			name  string
		}{
			{&a.HKD, c.hkd, "hkd"},
			{&a.RMB, c.rmb, "rmb"},
			{&a.USD, c.usd, "usd"},
		} {
			if v.value == "" {
				continue
			}
			if *v.dst, err = decimal.NewFromString(v.value); err != nil {
				return fail(fmt.Errorf("invalid -%s %q: %w", v.name, v.value, err))
			}
		}
		opening := ledger.Opening()
		opening[entity] = a
		ledger.SetOpening(opening)
		if err := encodeLedger(ledger); err != nil {
			return fail(err)
		}
	}

	opening := ledger.Opening()
	for _, entity := range treasury.Entities {
		a := opening[entity]
		fmt.Printf("%-12s HKD %s  RMB %s  USD %s\n", entity, a.HKD, a.RMB, a.USD)
	}
	return subcommands.ExitSuccess
}
