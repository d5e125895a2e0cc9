package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/shopspring/decimal"
)

// scenarioCmd shows or adjusts the stress scenario saved with the ledger.
type scenarioCmd struct {
	preset      string
	hkd         string
	usd         string
	fail        string
	shockShibor string
	shockHibor  string
	shockSofr   string
}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "show or adjust the stress scenario" }
func (*scenarioCmd) Usage() string {
	return `tpc scenario [-preset <name>] [-hkd <rate>] [-usd <rate>] [-fail <pct>] [-shock-shibor <bps>] [-shock-hibor <bps>] [-shock-sofr <bps>]

  Without flags, prints the current scenario. With flags, applies a preset
  first (BASE, OPTIMISTIC, PESSIMISTIC) then the individual overrides, and
  saves the result. Out-of-range values are clamped.

Usage Examples:
$ tpc scenario -preset PESSIMISTIC -fail 50
$ tpc scenario -shock-shibor 150

`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.preset, "preset", "", "Start from a named preset")
	f.StringVar(&c.hkd, "hkd", "", "HKD to RMB exchange rate")
	f.StringVar(&c.usd, "usd", "", "USD to RMB exchange rate")
	f.StringVar(&c.fail, "fail", "", "Financing failure rate in percent (0-100)")
	f.StringVar(&c.shockShibor, "shock-shibor", "", "SHIBOR shock in bps")
	f.StringVar(&c.shockHibor, "shock-hibor", "", "HIBOR shock in bps")
	f.StringVar(&c.shockSofr, "shock-sofr", "", "SOFR shock in bps")
}

// override parses one flag value into dst when the flag was set.
func override(dst *decimal.Decimal, value, name string) error {
	if value == "" {
		return nil
	}
	v, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	*dst = v
	return nil
}

func (c *scenarioCmd) apply(stress treasury.StressConfig) (treasury.StressConfig, bool, error) {
	changed := false
	if c.preset != "" {
		preset, err := treasury.Preset(c.preset)
		if err != nil {
			return stress, false, err
		}
		stress = preset
		changed = true
	}
	for _, o := range []struct {
		dst   *decimal.Decimal
		value string
		name  string
	}{
		{&stress.Rates.HKDToRMB, c.hkd, "hkd"},
		{&stress.Rates.USDToRMB, c.usd, "usd"},
		{&stress.FailRate, c.fail, "fail"},
		{&stress.ShockSHIBOR, c.shockShibor, "shock-shibor"},
		{&stress.ShockHIBOR, c.shockHibor, "shock-hibor"},
		{&stress.ShockSOFR, c.shockSofr, "shock-sofr"},
	} {
		if o.value != "" {
			changed = true
		}
		if err := override(o.dst, o.value, o.name); err != nil {
			return stress, false, err
		}
	}
	return stress, changed, nil
}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	stress, changed, err := c.apply(ledger.Stress())
	if err != nil {
		return fail(err)
	}
	if changed {
		ledger.SetStress(stress)
		if err := encodeLedger(ledger); err != nil {
			return fail(err)
		}
	}

	s := ledger.Stress()
	fmt.Printf("HKD to RMB:       %s\n", s.Rates.HKDToRMB)
	fmt.Printf("USD to RMB:       %s\n", s.Rates.USDToRMB)
	fmt.Printf("Financing fail:   %s%%\n", s.FailRate)
	fmt.Printf("SHIBOR shock:     %s bps\n", s.ShockSHIBOR)
	fmt.Printf("HIBOR shock:      %s bps\n", s.ShockHIBOR)
	fmt.Printf("SOFR shock:       %s bps\n", s.ShockSOFR)
	return subcommands.ExitSuccess
}
