package treasury

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

// Entity is one of the group's legal/business units.
type Entity string

const (
	// EntityAll is the aggregation scope covering the whole group.
	// It is never a valid owner for a debt or a transaction.
	EntityAll Entity = "ALL"

	EntityProperty   Entity = "PROPERTY"
	EntityEnterprise Entity = "ENTERPRISE"
	EntityHQ         Entity = "HQ"
)

// Entities lists the concrete entities of the group.
var Entities = []Entity{EntityProperty, EntityEnterprise, EntityHQ}

// ParseEntity parses a string into an Entity. "ALL" is accepted as a scope.
func ParseEntity(s string) (Entity, error) {
	switch Entity(s) {
	case EntityAll, EntityProperty, EntityEnterprise, EntityHQ:
		return Entity(s), nil
	default:
		return "", fmt.Errorf("unknown entity: %q", s)
	}
}

// Benchmark is the reference rate index a debt's pricing follows.
type Benchmark string

const (
	SHIBOR Benchmark = "SHIBOR"
	HIBOR  Benchmark = "HIBOR"
	SOFR   Benchmark = "SOFR"
	FIXED  Benchmark = "FIXED" // not indexed, shocks never apply
)

// ParseBenchmark parses a string into a Benchmark.
func ParseBenchmark(s string) (Benchmark, error) {
	switch Benchmark(s) {
	case SHIBOR, HIBOR, SOFR, FIXED:
		return Benchmark(s), nil
	default:
		return "", fmt.Errorf("unknown benchmark: %q", s)
	}
}

// Frequency is the interest payment cadence of a debt.
type Frequency string

const (
	Monthly    Frequency = "MONTHLY"
	Quarterly  Frequency = "QUARTERLY"
	Semiannual Frequency = "SEMIANNUAL"
	Annual     Frequency = "ANNUAL"
	AtMaturity Frequency = "AT_MATURITY"
)

// Months returns the interest cadence in months. AtMaturity returns 0,
// meaning a single lump repayment and no periodic interest at all.
func (f Frequency) Months() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Semiannual:
		return 6
	case Annual:
		return 12
	default:
		return 0
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Monthly, Quarterly, Semiannual, Annual, AtMaturity:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("unknown frequency: %q", s)
	}
}

// DebtStatus is the lifecycle status of a debt instrument.
type DebtStatus string

const (
	// Planned debts have not drawn yet: the schedule emits the draw and
	// scales everything by the financing failure factor.
	Planned DebtStatus = "PLANNED"
	// Active debts are already drawn; the draw is assumed reflected in
	// opening balances or historical actuals.
	Active DebtStatus = "ACTIVE"
	// Settled debts are kept for records only.
	Settled DebtStatus = "SETTLED"
)

// ParseDebtStatus parses a string into a DebtStatus.
func ParseDebtStatus(s string) (DebtStatus, error) {
	switch DebtStatus(s) {
	case Planned, Active, Settled:
		return DebtStatus(s), nil
	default:
		return "", fmt.Errorf("unknown debt status: %q", s)
	}
}

// DebtInstrument describes one loan. Amounts follow the group convention:
// the principal unit is 100 million (亿) of the denomination currency.
//
// The instrument is read-only input to the schedule generator; it is only
// ever mutated through explicit operator commands on the ledger.
type DebtInstrument struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Lender    string          `json:"lender,omitempty"`
	LoanType  string          `json:"loanType,omitempty"`
	Entity    Entity          `json:"entity"`
	Currency  Currency        `json:"currency"`
	Principal decimal.Decimal `json:"principal"`
	BaseRate  decimal.Decimal `json:"baseRate"`  // percent per annum
	Benchmark Benchmark       `json:"benchmark"` // index the rate shocks key on
	SpreadBps decimal.Decimal `json:"spreadBps"` // informational only
	Start     date.Date       `json:"start"`
	End       date.Date       `json:"end"`
	Frequency Frequency       `json:"frequency"`
	Status    DebtStatus      `json:"status"`
	Guarantor string          `json:"guarantor,omitempty"`
	Remarks   string          `json:"remarks,omitempty"`
}

// Validate checks the fields that the generator assumes correct, and gives
// the instrument an id when it has none. Date ordering is enforced here, at
// the creation boundary: the generator itself accepts degenerate ranges.
func (d *DebtInstrument) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("debt has no name")
	}
	if _, err := ParseEntity(string(d.Entity)); err != nil || d.Entity == EntityAll {
		return fmt.Errorf("debt %q: invalid entity %q", d.Name, d.Entity)
	}
	if _, err := ParseCurrency(string(d.Currency)); err != nil {
		return fmt.Errorf("debt %q: %w", d.Name, err)
	}
	if _, err := ParseBenchmark(string(d.Benchmark)); err != nil {
		return fmt.Errorf("debt %q: %w", d.Name, err)
	}
	if _, err := ParseFrequency(string(d.Frequency)); err != nil {
		return fmt.Errorf("debt %q: %w", d.Name, err)
	}
	if _, err := ParseDebtStatus(string(d.Status)); err != nil {
		return fmt.Errorf("debt %q: %w", d.Name, err)
	}
	if d.End.Before(d.Start) {
		return fmt.Errorf("debt %q: end %s before start %s", d.Name, d.End, d.Start)
	}
	if d.Principal.IsNegative() {
		return fmt.Errorf("debt %q: negative principal %s", d.Name, d.Principal)
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// MarshalJSON writes the instrument with a stable field order.
func (d DebtInstrument) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("name", d.Name)
	w.Optional("lender", d.Lender)
	w.Optional("loanType", d.LoanType)
	w.Append("entity", d.Entity)
	w.Append("currency", d.Currency)
	w.Append("principal", d.Principal)
	w.Append("baseRate", d.BaseRate)
	w.Append("benchmark", d.Benchmark)
	w.Append("spreadBps", d.SpreadBps)
	w.Append("start", d.Start)
	w.Append("end", d.End)
	w.Append("frequency", d.Frequency)
	w.Append("status", d.Status)
	w.Optional("guarantor", d.Guarantor)
	w.Optional("remarks", d.Remarks)
	return w.MarshalJSON()
}
