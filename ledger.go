package treasury

import (
	"fmt"
	"slices"

	"github.com/lionrock/treasury/date"
)

// Ledger holds the operator-owned inputs of a projection: manual cash-flow
// events, the debt instrument book, the session's stress scenario and the
// per-entity opening balances.
//
// Manual events are kept in chronological order. Generated events are never
// stored here: they are derived on every call to Project.
type Ledger struct {
	events  []CashFlowEvent
	debts   []DebtInstrument
	stress  StressConfig
	opening StartingBalances
}

// NewLedger creates an empty ledger with the BASE scenario.
func NewLedger() *Ledger {
	base, _ := Preset(PresetBase)
	return &Ledger{stress: base, opening: StartingBalances{}}
}

// Append validates and records manual events, keeping chronological order.
// Events already derived from a debt are rejected: those are regenerated,
// never recorded.
func (l *Ledger) Append(events ...CashFlowEvent) error {
	for _, e := range events {
		if e.Generated() {
			return fmt.Errorf("event %q is debt-generated and cannot be recorded manually", e.ID)
		}
		if err := e.Validate(); err != nil {
			return err
		}
		l.events = append(l.events, e)
	}
	slices.SortStableFunc(l.events, func(a, b CashFlowEvent) int {
		return a.Date.Compare(b.Date)
	})
	return nil
}

// DeleteEvent removes the manual event with the given id.
func (l *Ledger) DeleteEvent(id string) error {
	for i, e := range l.events {
		if e.ID == id {
			l.events = slices.Delete(l.events, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no event with id %q", id)
}

// Events returns a copy of the manual events, in chronological order.
func (l *Ledger) Events() []CashFlowEvent {
	return slices.Clone(l.events)
}

// AddDebt validates and records a debt instrument.
func (l *Ledger) AddDebt(d DebtInstrument) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, existing := range l.debts {
		if existing.ID == d.ID {
			return fmt.Errorf("debt %q already exists", d.ID)
		}
	}
	l.debts = append(l.debts, d)
	return nil
}

// UpdateDebt replaces the debt with the same id.
func (l *Ledger) UpdateDebt(d DebtInstrument) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for i, existing := range l.debts {
		if existing.ID == d.ID {
			l.debts[i] = d
			return nil
		}
	}
	return fmt.Errorf("no debt with id %q", d.ID)
}

// DeleteDebt removes the debt with the given id.
func (l *Ledger) DeleteDebt(id string) error {
	for i, d := range l.debts {
		if d.ID == id {
			l.debts = slices.Delete(l.debts, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no debt with id %q", id)
}

// Debt returns the debt with the given id, or nil.
func (l *Ledger) Debt(id string) *DebtInstrument {
	for i := range l.debts {
		if l.debts[i].ID == id {
			d := l.debts[i]
			return &d
		}
	}
	return nil
}

// Debts returns a copy of the debt book.
func (l *Ledger) Debts() []DebtInstrument {
	return slices.Clone(l.debts)
}

// SetStress replaces the session scenario, clamped to valid ranges.
func (l *Ledger) SetStress(s StressConfig) { l.stress = s.Clamp() }

// Stress returns the session scenario.
func (l *Ledger) Stress() StressConfig { return l.stress }

// SetOpening replaces the per-entity opening balances.
func (l *Ledger) SetOpening(s StartingBalances) { l.opening = s }

// Opening returns the per-entity opening balances.
func (l *Ledger) Opening() StartingBalances { return l.opening }

// Project regenerates the debt schedule under the session scenario,
// reclassifies manual events against now, and merges everything into one
// chronological stream. It is a pure read: the ledger is not modified.
func (l *Ledger) Project(now date.Date) []CashFlowEvent {
	manual := l.Events()
	for i := range manual {
		manual[i].Status = StatusOn(manual[i].Date, now)
	}
	generated := GenerateSchedule(l.debts, l.stress, now)
	return MergeEvents(manual, generated)
}

// Aggregator builds the aggregation engine for this ledger's opening
// balances under the given scope and base currency.
func (l *Ledger) Aggregator(scope Entity, base Currency) Aggregator {
	return Aggregator{
		Scope:   scope,
		Base:    base,
		Rates:   l.stress.Rates,
		Opening: l.opening,
	}
}
