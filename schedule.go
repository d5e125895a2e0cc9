package treasury

import (
	"fmt"

	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

// This file derives cash-flow events from debt instruments. It is the
// algorithmic heart of the planner: a pure function of (debts, stress, now)
// with no memory across calls, so every parameter change regenerates the
// whole schedule and replaces the previous one id-for-id.

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// GenerateSchedule derives, for every debt, up to three kinds of events:
//
//   - one principal draw at the start date, only while the debt is still
//     PLANNED, scaled down by the financing failure rate;
//   - periodic interest at the frequency cadence, simple interest on the
//     full original principal (no amortization), at the base rate plus the
//     shock of the matching benchmark;
//   - one principal repayment at the end date.
//
// Event ids are derived from (debt id, kind, date): identical inputs yield
// identical output, byte for byte.
//
// A debt whose end precedes its start yields no interest events and still
// yields its draw/repay pair. That is well defined and deliberate: date
// ordering is validated when the debt is recorded, not here.
func GenerateSchedule(debts []DebtInstrument, stress StressConfig, now date.Date) []CashFlowEvent {
	var events []CashFlowEvent
	for _, d := range debts {
		events = append(events, scheduleDebt(d, stress, now)...)
	}
	return events
}

func scheduleDebt(d DebtInstrument, stress StressConfig, now date.Date) []CashFlowEvent {
	var events []CashFlowEvent

	// Planned draws may partially fail; active and settled debts already
	// drew in full, so their factor is always 1.
	factor := decimal.NewFromInt(1)
	failNote := ""
	if d.Status == Planned {
		factor = factor.Sub(stress.FailRate.Div(hundred))
		if !stress.FailRate.IsZero() {
			failNote = fmt.Sprintf(" (financing fail %s%%)", stress.FailRate)
		}
	}
	effective := d.Principal.Mul(factor)

	if d.Status == Planned {
		events = append(events, CashFlowEvent{
			ID:          scheduleEventID(d.ID, "draw", d.Start),
			Date:        d.Start,
			Entity:      d.Entity,
			Category:    Financing,
			Description: fmt.Sprintf("Draw %s%s", d.Name, failNote),
			Amounts:     In(d.Currency, effective),
			Status:      Forecast,
			DebtID:      d.ID,
		})
	}

	if months := d.Frequency.Months(); months > 0 {
		// Rate shocks are quoted in bps; the matching benchmark's shock
		// becomes a percentage add-on. FIXED debts get no shock.
		rate := d.BaseRate.Add(stress.Shock(d.Benchmark).Div(hundred))
		period := decimal.NewFromInt(int64(months)).Div(monthsInYear)
		interest := effective.Mul(rate).Div(hundred).Mul(period).Neg()

		for due := d.Start.AddMonths(months); !due.After(d.End); due = due.AddMonths(months) {
			events = append(events, CashFlowEvent{
				ID:          scheduleEventID(d.ID, "interest", due),
				Date:        due,
				Entity:      d.Entity,
				Category:    Financing,
				Description: fmt.Sprintf("Interest %s @%s%%", d.Name, rate),
				Amounts:     In(d.Currency, interest),
				Status:      StatusOn(due, now),
				DebtID:      d.ID,
			})
		}
	}

	// The repayment stays FORECAST even when its date has passed. The
	// behavior is kept on purpose: settling a repayment is an operator
	// decision, not a calendar one.
	events = append(events, CashFlowEvent{
		ID:          scheduleEventID(d.ID, "repay", d.End),
		Date:        d.End,
		Entity:      d.Entity,
		Category:    Financing,
		Description: fmt.Sprintf("Repayment %s", d.Name),
		Amounts:     In(d.Currency, effective.Neg()),
		Status:      Forecast,
		DebtID:      d.ID,
	})

	return events
}

// scheduleEventID builds the stable id of a generated event.
func scheduleEventID(debtID, kind string, on date.Date) string {
	return fmt.Sprintf("%s:%s:%s", debtID, kind, on)
}
