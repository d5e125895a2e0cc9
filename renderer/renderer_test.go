package renderer

import (
	"strings"
	"testing"

	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestProjectionMarkdown(t *testing.T) {
	lines := []treasury.BalanceLine{
		{
			Event: treasury.CashFlowEvent{
				ID:          "e1",
				Date:        date.MustParse("2024-01-01"),
				Entity:      treasury.EntityProperty,
				Category:    treasury.Financing,
				Description: "Draw CCB facility",
				Status:      treasury.Forecast,
			},
			Amount:  dec(10),
			Balance: dec(110),
		},
	}
	md := ProjectionMarkdown(lines, treasury.EntityAll, treasury.RMB)

	for _, want := range []string{"2024-01-01", "Draw CCB facility", "FINANCING", "| F |"} {
		if !strings.Contains(md, want) {
			t.Errorf("projection markdown missing %q:\n%s", want, md)
		}
	}
}

func TestProjectionMarkdown_empty(t *testing.T) {
	md := ProjectionMarkdown(nil, treasury.EntityHQ, treasury.USD)
	if !strings.Contains(md, "No events.") {
		t.Errorf("empty projection should say so:\n%s", md)
	}
}

func TestMonthlyMarkdown_flagsAndRunway(t *testing.T) {
	months := []treasury.MonthlySummary{
		{Month: "2024-01", Inflow: dec(10), Outflow: dec(30), Net: dec(-20), Closing: dec(130)},
		{Month: "2024-02", Outflow: dec(20), Net: dec(-20), Closing: dec(60)},
	}
	md := MonthlyMarkdown(months, dec(100), treasury.EntityAll, treasury.RMB)

	if !strings.Contains(md, "2024-02") {
		t.Fatalf("monthly markdown missing a month:\n%s", md)
	}
	// The sub-threshold closing is flagged, the healthy one is not.
	if !strings.Contains(md, "⚠") {
		t.Errorf("closing below threshold not flagged:\n%s", md)
	}
	if strings.Count(md, "⚠") != 1 {
		t.Errorf("want exactly one flag:\n%s", md)
	}
	// Burning 20 a month with 60 left: 3 months of runway.
	if !strings.Contains(md, "3.0 months") {
		t.Errorf("runway estimate missing:\n%s", md)
	}
}

func TestCalendarMarkdown_foldsQuietDays(t *testing.T) {
	days := []treasury.DayBalance{
		{Date: date.MustParse("2024-01-01"), Net: dec(5), Balance: dec(105)},
		{Date: date.MustParse("2024-01-02"), Balance: dec(105)},
		{Date: date.MustParse("2024-01-03"), Balance: dec(105)},
		{Date: date.MustParse("2024-01-04"), Net: dec(-10), Balance: dec(95)},
	}
	md := CalendarMarkdown(days, dec(100), treasury.EntityAll, treasury.RMB)

	if strings.Contains(md, "2024-01-02") {
		t.Errorf("quiet day was not folded:\n%s", md)
	}
	if !strings.Contains(md, "2 quiet days folded") {
		t.Errorf("fold note missing:\n%s", md)
	}
	if !strings.Contains(md, "⚠") {
		t.Errorf("sub-threshold day not flagged:\n%s", md)
	}
}

func TestDebtsMarkdown(t *testing.T) {
	md := DebtsMarkdown(nil)
	if !strings.Contains(md, "No debts recorded.") {
		t.Errorf("empty book should say so:\n%s", md)
	}
}
