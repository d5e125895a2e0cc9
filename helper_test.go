package treasury

import (
	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// flatRates makes conversions trivial to follow in tests: 1 HKD = 1 RMB and
// 1 USD = 1 RMB.
var flatRates = Rates{HKDToRMB: dec(1), USDToRMB: dec(1)}

// noStress is the neutral scenario used unless a test stresses something.
var noStress = StressConfig{Rates: flatRates}

// sampleDebt is the reference instrument most generator tests start from:
// a planned quarterly SHIBOR loan of 10 units at 4%, Jan to Jul 2024.
func sampleDebt() DebtInstrument {
	return DebtInstrument{
		ID:        "d1",
		Name:      "CCB facility",
		Lender:    "CCB",
		Entity:    EntityProperty,
		Currency:  RMB,
		Principal: dec(10),
		BaseRate:  dec(4),
		Benchmark: SHIBOR,
		Start:     date.MustParse("2024-01-01"),
		End:       date.MustParse("2024-07-01"),
		Frequency: Quarterly,
		Status:    Planned,
	}
}

// manualEvent builds a valid manual entry in RMB.
func manualEvent(id, day string, entity Entity, cat Category, rmb float64) CashFlowEvent {
	return CashFlowEvent{
		ID:       id,
		Date:     date.MustParse(day),
		Entity:   entity,
		Category: cat,
		Amounts:  In(RMB, dec(rmb)),
		Status:   Actual,
	}
}
