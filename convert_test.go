package treasury

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountsBase(t *testing.T) {
	rates := Rates{HKDToRMB: dec(0.9), USDToRMB: dec(7.2)}
	a := Amounts{HKD: dec(100), RMB: dec(50), USD: dec(10)}

	// RMB intermediate: 100*0.9 + 50 + 10*7.2 = 212
	testCases := []struct {
		base Currency
		want decimal.Decimal
	}{
		{RMB, dec(212)},
		{HKD, dec(212).Div(dec(0.9))},
		{USD, dec(212).Div(dec(7.2))},
	}
	for _, tc := range testCases {
		t.Run(string(tc.base), func(t *testing.T) {
			if got := a.Base(rates, tc.base); !got.Equal(tc.want) {
				t.Errorf("Base(%s) = %s, want %s", tc.base, got, tc.want)
			}
		})
	}
}

func TestAmountsBase_zeroTriple(t *testing.T) {
	var a Amounts
	if got := a.Base(flatRates, RMB); !got.IsZero() {
		t.Errorf("Base of zero triple = %s, want 0", got)
	}
}

func TestAmountsBase_roundTripIsExact(t *testing.T) {
	// A pure RMB amount converted to HKD and back must be exact: decimals,
	// not floats, carry the intermediate value.
	rates := Rates{HKDToRMB: dec(0.92), USDToRMB: dec(7.2)}
	a := In(RMB, dec(123.45))

	inHKD := a.Base(rates, HKD)
	back := In(HKD, inHKD).Base(rates, RMB)
	if !back.Equal(dec(123.45)) {
		t.Errorf("round trip = %s, want 123.45", back)
	}
}

func TestIn_slotPlacement(t *testing.T) {
	for _, cur := range Currencies {
		a := In(cur, dec(5))
		if !a.Get(cur).Equal(dec(5)) {
			t.Errorf("In(%s).Get(%s) = %s, want 5", cur, cur, a.Get(cur))
		}
		for _, other := range Currencies {
			if other != cur && !a.Get(other).IsZero() {
				t.Errorf("In(%s) leaked into %s slot", cur, other)
			}
		}
	}
}
