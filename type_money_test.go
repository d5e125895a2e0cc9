package treasury

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.5, USD), "$1,234.50"},
		{M(-3, HKD), "-$3.00"},
		{M(42, RMB), "42.00 元"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String(%v %s) = %q, want %q", tc.m.Amount(), tc.m.Currency(), got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, USD).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := M(5, USD).SignedString(); got != "+$5.00" {
		t.Errorf("positive SignedString = %q, want +$5.00", got)
	}
}

func TestParseCurrency(t *testing.T) {
	if _, err := ParseCurrency("EUR"); err == nil {
		t.Error("ParseCurrency accepted EUR")
	}
	if c, err := ParseCurrency("RMB"); err != nil || c != RMB {
		t.Errorf("ParseCurrency(RMB) = %v, %v", c, err)
	}
}
