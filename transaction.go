package treasury

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/lionrock/treasury/date"
)

// Category classifies a cash-flow event.
type Category string

const (
	Operating Category = "OPERATING"
	Financing Category = "FINANCING"
	Investing Category = "INVESTING"
	// Internal marks intra-group transfers. They move an individual
	// entity's balance but wash out at the group level, so daily and
	// monthly net-flow figures exclude them.
	Internal Category = "INTERNAL"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Operating, Financing, Investing, Internal:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// EventStatus separates projected events from realized ones.
type EventStatus string

const (
	Forecast EventStatus = "FORECAST"
	Actual   EventStatus = "ACTUAL"
)

// StatusOn returns Forecast for dates strictly after now, Actual otherwise.
func StatusOn(d, now date.Date) EventStatus {
	if d.After(now) {
		return Forecast
	}
	return Actual
}

// CashFlowEvent is a single dated cash movement. Manual entries and
// generated schedule events share this one shape; generated ones carry the
// id of their originating debt in DebtID.
type CashFlowEvent struct {
	ID          string      `json:"id"`
	Date        date.Date   `json:"date"`
	Entity      Entity      `json:"entity"`
	Category    Category    `json:"category"`
	Description string      `json:"description,omitempty"`
	Amounts     Amounts     `json:"amounts"`
	Status      EventStatus `json:"status"`
	DebtID      string      `json:"debtId,omitempty"`
}

// Generated reports whether the event was derived from a debt schedule.
// Generated events are replaced wholesale on every regeneration and are
// not editable through the ledger.
func (e CashFlowEvent) Generated() bool { return e.DebtID != "" }

// Validate checks a manual entry at the recording boundary and assigns an
// id when missing.
func (e *CashFlowEvent) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("event has no date")
	}
	if _, err := ParseEntity(string(e.Entity)); err != nil || e.Entity == EntityAll {
		return fmt.Errorf("event on %s: invalid entity %q", e.Date, e.Entity)
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return fmt.Errorf("event on %s: %w", e.Date, err)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// MarshalJSON writes the event with a stable field order.
func (e CashFlowEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("entity", e.Entity)
	w.Append("category", e.Category)
	w.Optional("description", e.Description)
	w.Append("amounts", e.Amounts)
	w.Append("status", e.Status)
	w.Optional("debtId", e.DebtID)
	return w.MarshalJSON()
}

// MergeEvents concatenates manual and generated events and sorts the result
// by date. The sort is stable: two events on the same day keep their
// concatenation order, manual entries first. No event is mutated.
func MergeEvents(manual, generated []CashFlowEvent) []CashFlowEvent {
	merged := make([]CashFlowEvent, 0, len(manual)+len(generated))
	merged = append(merged, manual...)
	merged = append(merged, generated...)
	slices.SortStableFunc(merged, func(a, b CashFlowEvent) int {
		return a.Date.Compare(b.Date)
	})
	return merged
}
