package treasury

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is one of the three currencies the group operates in.
type Currency string

const (
	HKD Currency = "HKD"
	RMB Currency = "RMB"
	USD Currency = "USD"
)

// Currencies lists all supported currencies.
var Currencies = []Currency{HKD, RMB, USD}

// ParseCurrency parses a string into a Currency.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case HKD, RMB, USD:
		return Currency(s), nil
	default:
		return "", fmt.Errorf("unknown currency: %q", s)
	}
}

// isoCode maps a Currency onto the ISO-4217 code go-money understands.
// The group books RMB under its CNY code.
func (c Currency) isoCode() string {
	if c == RMB {
		return "CNY"
	}
	return string(c)
}

// Money represents a monetary value in a single currency.
// The domain convention is that one unit is 100 million (亿) of the currency.
type Money struct {
	value decimal.Decimal
	cur   Currency
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency Currency) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	}
	return decimal.Decimal{}
}

// currency returns the go-money currency for formatting purpose.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur.isoCode()).Currency()
}

// String returns the value formatted with its currency symbol.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation with an explicit sign,
// and "-" for zero so report tables stay readable.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() Currency      { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool   { return m.value.LessThan(n.value) }
func (m Money) Neg() Money              { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money       { return Money{value: m.value.Add(n.value), cur: m.cur} }

// Amounts is a triple of values, one per currency. Generated events set
// exactly one slot; manual entries may mix.
type Amounts struct {
	HKD decimal.Decimal `json:"hkd"`
	RMB decimal.Decimal `json:"rmb"`
	USD decimal.Decimal `json:"usd"`
}

// In returns an Amounts with the given value in the slot for cur.
func In(cur Currency, v decimal.Decimal) Amounts {
	var a Amounts
	switch cur {
	case HKD:
		a.HKD = v
	case RMB:
		a.RMB = v
	case USD:
		a.USD = v
	}
	return a
}

// Get returns the value held in the slot for cur.
func (a Amounts) Get(cur Currency) decimal.Decimal {
	switch cur {
	case HKD:
		return a.HKD
	case RMB:
		return a.RMB
	case USD:
		return a.USD
	}
	return decimal.Decimal{}
}

// Add returns the slot-wise sum of a and b.
func (a Amounts) Add(b Amounts) Amounts {
	return Amounts{
		HKD: a.HKD.Add(b.HKD),
		RMB: a.RMB.Add(b.RMB),
		USD: a.USD.Add(b.USD),
	}
}

// IsZero reports whether all three slots are zero.
func (a Amounts) IsZero() bool {
	return a.HKD.IsZero() && a.RMB.IsZero() && a.USD.IsZero()
}
