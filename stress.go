package treasury

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StressConfig bundles the stress parameters a projection runs under:
// the FX rate pair, a financing-failure percentage applied to planned
// draws, and one rate shock per benchmark, in basis points.
//
// A StressConfig is a plain value: adjusting a parameter means building a
// new value and regenerating the whole schedule from it. It lives for the
// session only.
type StressConfig struct {
	Rates    Rates           `json:"rates"`
	FailRate decimal.Decimal `json:"failRate"` // percent, 0 to 100

	ShockSHIBOR decimal.Decimal `json:"shockShibor"` // bps
	ShockHIBOR  decimal.Decimal `json:"shockHibor"`  // bps
	ShockSOFR   decimal.Decimal `json:"shockSofr"`   // bps
}

// Shock returns the shock in basis points for the given benchmark.
// FIXED debts are never shocked.
func (s StressConfig) Shock(b Benchmark) decimal.Decimal {
	switch b {
	case SHIBOR:
		return s.ShockSHIBOR
	case HIBOR:
		return s.ShockHIBOR
	case SOFR:
		return s.ShockSOFR
	default:
		return decimal.Decimal{}
	}
}

// minRate is the floor the scenario boundary clamps exchange rates to, so
// the converter never divides by zero.
var minRate = decimal.NewFromFloat(0.0001)

// Clamp returns a copy with rates forced strictly positive and the failure
// rate forced into [0, 100]. Every scenario mutation goes through Clamp
// before reaching the generator or the converter.
func (s StressConfig) Clamp() StressConfig {
	if s.Rates.HKDToRMB.LessThanOrEqual(decimal.Decimal{}) {
		s.Rates.HKDToRMB = minRate
	}
	if s.Rates.USDToRMB.LessThanOrEqual(decimal.Decimal{}) {
		s.Rates.USDToRMB = minRate
	}
	if s.FailRate.IsNegative() {
		s.FailRate = decimal.Decimal{}
	}
	if hundred := decimal.NewFromInt(100); s.FailRate.GreaterThan(hundred) {
		s.FailRate = hundred
	}
	return s
}

// Named presets. Base reflects current market levels, the two others are
// canonical favorable/adverse bundles used as starting points for ad hoc
// stress runs.
const (
	PresetBase        = "BASE"
	PresetOptimistic  = "OPTIMISTIC"
	PresetPessimistic = "PESSIMISTIC"
)

// Preset returns the named stress preset.
func Preset(name string) (StressConfig, error) {
	base := Rates{
		HKDToRMB: decimal.NewFromFloat(0.92),
		USDToRMB: decimal.NewFromFloat(7.2),
	}
	switch name {
	case PresetBase:
		return StressConfig{Rates: base}, nil
	case PresetOptimistic:
		return StressConfig{
			Rates:       base,
			ShockSHIBOR: decimal.NewFromInt(-50),
			ShockHIBOR:  decimal.NewFromInt(-50),
			ShockSOFR:   decimal.NewFromInt(-50),
		}, nil
	case PresetPessimistic:
		return StressConfig{
			Rates: Rates{
				HKDToRMB: decimal.NewFromFloat(0.96),
				USDToRMB: decimal.NewFromFloat(7.5),
			},
			FailRate:    decimal.NewFromInt(30),
			ShockSHIBOR: decimal.NewFromInt(100),
			ShockHIBOR:  decimal.NewFromInt(100),
			ShockSOFR:   decimal.NewFromInt(100),
		}, nil
	default:
		return StressConfig{}, fmt.Errorf("unknown stress preset: %q", name)
	}
}
