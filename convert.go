package treasury

import "github.com/shopspring/decimal"

// Rates holds the two exchange rates the group plans with, both expressed
// in RMB per unit of the foreign currency. Rates must be strictly positive;
// the scenario boundary clamps them before they reach the converter.
type Rates struct {
	HKDToRMB decimal.Decimal `json:"hkdToRmb"`
	USDToRMB decimal.Decimal `json:"usdToRmb"`
}

// Base converts the triple into a single value denominated in base.
//
// Everything is first brought to an RMB intermediate, then divided back out
// when the base currency is not RMB. There is no error path: rates are
// assumed positive by contract.
func (a Amounts) Base(r Rates, base Currency) decimal.Decimal {
	v := a.HKD.Mul(r.HKDToRMB).Add(a.RMB).Add(a.USD.Mul(r.USDToRMB))
	switch base {
	case HKD:
		return v.Div(r.HKDToRMB)
	case USD:
		return v.Div(r.USDToRMB)
	default:
		return v
	}
}
