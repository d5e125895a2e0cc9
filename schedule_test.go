package treasury

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

var scheduleNow = date.MustParse("2024-01-01")

func generateOne(t *testing.T, d DebtInstrument, stress StressConfig) []CashFlowEvent {
	t.Helper()
	return GenerateSchedule([]DebtInstrument{d}, stress, scheduleNow)
}

func findEvent(t *testing.T, events []CashFlowEvent, id string) CashFlowEvent {
	t.Helper()
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("no event with id %q in %d events", id, len(events))
	return CashFlowEvent{}
}

func TestGenerateSchedule_referenceScenario(t *testing.T) {
	// One planned quarterly debt of 10 at 4% over six months: one draw,
	// two interest payments of 10*4%*(3/12), one repayment.
	events := generateOne(t, sampleDebt(), noStress)

	if len(events) != 4 {
		t.Fatalf("generated %d events, want 4: %+v", len(events), events)
	}

	draw := findEvent(t, events, "d1:draw:2024-01-01")
	if !draw.Amounts.RMB.Equal(dec(10)) {
		t.Errorf("draw amount = %s, want 10", draw.Amounts.RMB)
	}
	if draw.Category != Financing || draw.Status != Forecast {
		t.Errorf("draw category/status = %s/%s, want FINANCING/FORECAST", draw.Category, draw.Status)
	}

	for _, day := range []string{"2024-04-01", "2024-07-01"} {
		interest := findEvent(t, events, "d1:interest:"+day)
		if !interest.Amounts.RMB.Equal(dec(-0.1)) {
			t.Errorf("interest on %s = %s, want -0.1", day, interest.Amounts.RMB)
		}
	}

	repay := findEvent(t, events, "d1:repay:2024-07-01")
	if !repay.Amounts.RMB.Equal(dec(-10)) {
		t.Errorf("repayment amount = %s, want -10", repay.Amounts.RMB)
	}
}

func TestGenerateSchedule_financingFailure(t *testing.T) {
	stress := noStress
	stress.FailRate = dec(50)

	events := generateOne(t, sampleDebt(), stress)

	draw := findEvent(t, events, "d1:draw:2024-01-01")
	if !draw.Amounts.RMB.Equal(dec(5)) {
		t.Errorf("draw amount = %s, want 5", draw.Amounts.RMB)
	}
	if !strings.Contains(draw.Description, "50") {
		t.Errorf("draw description %q should mention the failure rate", draw.Description)
	}
	interest := findEvent(t, events, "d1:interest:2024-04-01")
	if !interest.Amounts.RMB.Equal(dec(-0.05)) {
		t.Errorf("interest = %s, want -0.05", interest.Amounts.RMB)
	}
	repay := findEvent(t, events, "d1:repay:2024-07-01")
	if !repay.Amounts.RMB.Equal(dec(-5)) {
		t.Errorf("repayment = %s, want -5", repay.Amounts.RMB)
	}
}

func TestGenerateSchedule_benchmarkShock(t *testing.T) {
	stress := noStress
	stress.ShockSHIBOR = dec(100) // +100 bps on the matching benchmark

	events := generateOne(t, sampleDebt(), stress)

	// effective rate 4% + 1% = 5%, so 10 * 5% * 0.25 = 0.125 per quarter.
	interest := findEvent(t, events, "d1:interest:2024-04-01")
	if !interest.Amounts.RMB.Equal(dec(-0.125)) {
		t.Errorf("interest = %s, want -0.125", interest.Amounts.RMB)
	}
}

func TestGenerateSchedule_shockOnOtherBenchmarkDoesNotApply(t *testing.T) {
	stress := noStress
	stress.ShockHIBOR = dec(500)
	stress.ShockSOFR = dec(500)

	events := generateOne(t, sampleDebt(), stress)
	interest := findEvent(t, events, "d1:interest:2024-04-01")
	if !interest.Amounts.RMB.Equal(dec(-0.1)) {
		t.Errorf("interest = %s, want -0.1 (SHIBOR debt must ignore HIBOR/SOFR shocks)", interest.Amounts.RMB)
	}
}

func TestGenerateSchedule_fixedRateIgnoresAllShocks(t *testing.T) {
	d := sampleDebt()
	d.Benchmark = FIXED
	stress := noStress
	stress.ShockSHIBOR = dec(500)

	events := generateOne(t, d, stress)
	interest := findEvent(t, events, "d1:interest:2024-04-01")
	if !interest.Amounts.RMB.Equal(dec(-0.1)) {
		t.Errorf("interest = %s, want -0.1 (FIXED debt must never be shocked)", interest.Amounts.RMB)
	}
}

func TestGenerateSchedule_activeDebt(t *testing.T) {
	d := sampleDebt()
	d.Status = Active
	stress := noStress
	stress.FailRate = dec(50) // must not affect an active debt

	events := generateOne(t, d, stress)

	for _, e := range events {
		if strings.Contains(e.ID, ":draw:") {
			t.Fatalf("active debt produced a draw event: %+v", e)
		}
	}
	// 2 interests + 1 repayment, all unscaled.
	if len(events) != 3 {
		t.Fatalf("generated %d events, want 3", len(events))
	}
	interest := findEvent(t, events, "d1:interest:2024-04-01")
	if !interest.Amounts.RMB.Equal(dec(-0.1)) {
		t.Errorf("interest = %s, want -0.1 (fail rate must not scale active debts)", interest.Amounts.RMB)
	}
	repay := findEvent(t, events, "d1:repay:2024-07-01")
	if !repay.Amounts.RMB.Equal(dec(-10)) {
		t.Errorf("repayment = %s, want -10", repay.Amounts.RMB)
	}
}

func TestGenerateSchedule_atMaturityHasNoInterest(t *testing.T) {
	d := sampleDebt()
	d.Frequency = AtMaturity
	d.End = date.MustParse("2030-01-01") // range is irrelevant

	events := generateOne(t, d, noStress)

	for _, e := range events {
		if strings.Contains(e.ID, ":interest:") {
			t.Fatalf("at-maturity debt produced an interest event: %+v", e)
		}
	}
	if len(events) != 2 {
		t.Fatalf("generated %d events, want 2 (draw + repayment)", len(events))
	}
}

func TestGenerateSchedule_invertedDates(t *testing.T) {
	// End before start is not rejected: it degenerates to a draw/repay
	// pair with zero interest events.
	d := sampleDebt()
	d.Start = date.MustParse("2024-07-01")
	d.End = date.MustParse("2024-01-01")

	events := generateOne(t, d, noStress)
	if len(events) != 2 {
		t.Fatalf("generated %d events, want 2", len(events))
	}
}

func TestGenerateSchedule_statusSplit(t *testing.T) {
	d := sampleDebt()
	now := date.MustParse("2024-05-15")

	events := GenerateSchedule([]DebtInstrument{d}, noStress, now)

	testCases := []struct {
		id   string
		want EventStatus
	}{
		{"d1:interest:2024-04-01", Actual},   // passed
		{"d1:interest:2024-07-01", Forecast}, // still ahead
		{"d1:draw:2024-01-01", Forecast},     // draws are always forecast
		{"d1:repay:2024-07-01", Forecast},
	}
	for _, tc := range testCases {
		if got := findEvent(t, events, tc.id).Status; got != tc.want {
			t.Errorf("status of %s = %s, want %s", tc.id, got, tc.want)
		}
	}
}

func TestGenerateSchedule_repaymentStaysForecastInThePast(t *testing.T) {
	// The repayment keeps its FORECAST stamp even when its date has long
	// passed, unlike interest events.
	d := sampleDebt()
	now := date.MustParse("2030-01-01")

	events := GenerateSchedule([]DebtInstrument{d}, noStress, now)
	if got := findEvent(t, events, "d1:repay:2024-07-01").Status; got != Forecast {
		t.Errorf("past repayment status = %s, want FORECAST", got)
	}
}

func TestGenerateSchedule_monthlyCadence(t *testing.T) {
	d := sampleDebt()
	d.Frequency = Monthly

	events := generateOne(t, d, noStress)

	// Feb through Jul inclusive: 6 interest events.
	interests := 0
	for _, e := range events {
		if strings.Contains(e.ID, ":interest:") {
			interests++
			want := dec(10).Mul(dec(4)).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12)).Neg()
			if !e.Amounts.RMB.Equal(want) {
				t.Errorf("interest %s = %s, want %s", e.ID, e.Amounts.RMB, want)
			}
		}
	}
	if interests != 6 {
		t.Errorf("generated %d interest events, want 6", interests)
	}
}

func TestGenerateSchedule_idempotent(t *testing.T) {
	debts := []DebtInstrument{sampleDebt()}
	stress := noStress
	stress.FailRate = dec(12.5)
	stress.ShockSOFR = dec(25)

	a, errA := json.Marshal(GenerateSchedule(debts, stress, scheduleNow))
	b, errB := json.Marshal(GenerateSchedule(debts, stress, scheduleNow))
	if errA != nil || errB != nil {
		t.Fatalf("marshal errors: %v %v", errA, errB)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("two runs over identical input differ:\n%s\n%s", a, b)
	}
}

func TestGenerateSchedule_amountInDebtCurrency(t *testing.T) {
	d := sampleDebt()
	d.Currency = USD

	events := generateOne(t, d, noStress)
	draw := findEvent(t, events, "d1:draw:2024-01-01")
	if !draw.Amounts.USD.Equal(dec(10)) {
		t.Errorf("draw USD slot = %s, want 10", draw.Amounts.USD)
	}
	if !draw.Amounts.RMB.IsZero() || !draw.Amounts.HKD.IsZero() {
		t.Errorf("non-USD slots must stay zero, got %+v", draw.Amounts)
	}
}
