package treasury

import (
	"slices"

	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

// StartingBalances is the fixed per-entity opening position the running
// balance computation starts from. The aggregation engine never mutates it.
type StartingBalances map[Entity]Amounts

// Total converts the opening balances in scope to a single base value.
func (s StartingBalances) Total(scope Entity, r Rates, base Currency) decimal.Decimal {
	var total decimal.Decimal
	for entity, amounts := range s {
		if scope != EntityAll && entity != scope {
			continue
		}
		total = total.Add(amounts.Base(r, base))
	}
	return total
}

// BalanceLine pairs one event with the running balance right after it.
type BalanceLine struct {
	Event   CashFlowEvent
	Amount  decimal.Decimal // the event's own amount, converted to base
	Balance decimal.Decimal
}

// MonthlySummary aggregates one YYYY-MM bucket of events.
// Inflow/Outflow/Net exclude INTERNAL transfers; Closing is the running
// balance as of the bucket's last event and includes them.
type MonthlySummary struct {
	Month   string
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
	Closing decimal.Decimal
}

// DayBalance is one day of the balance calendar.
type DayBalance struct {
	Date    date.Date
	Net     decimal.Decimal // the day's net flow, INTERNAL excluded
	Balance decimal.Decimal
}

// Aggregator walks a chronologically sorted event stream and derives the
// balance views the dashboards consume. It is a value: configure the scope,
// base currency, rates and opening balances, then call its methods on any
// merged stream.
type Aggregator struct {
	Scope   Entity
	Base    Currency
	Rates   Rates
	Opening StartingBalances
}

func (g Aggregator) inScope(e CashFlowEvent) bool {
	return g.Scope == EntityAll || e.Entity == g.Scope
}

func (g Aggregator) convert(e CashFlowEvent) decimal.Decimal {
	return e.Amounts.Base(g.Rates, g.Base)
}

// RunningBalances accumulates every in-scope event on top of the converted
// opening balance, in stream order. INTERNAL transfers do move the running
// balance: they change the entity's own position even though they wash out
// in group-level flow figures.
func (g Aggregator) RunningBalances(events []CashFlowEvent) []BalanceLine {
	balance := g.Opening.Total(g.Scope, g.Rates, g.Base)
	lines := make([]BalanceLine, 0, len(events))
	for _, e := range events {
		if !g.inScope(e) {
			continue
		}
		amount := g.convert(e)
		balance = balance.Add(amount)
		lines = append(lines, BalanceLine{Event: e, Amount: amount, Balance: balance})
	}
	return lines
}

// MonthlySummaries buckets in-scope events by calendar month, in ascending
// order. Only months that actually hold events appear.
func (g Aggregator) MonthlySummaries(events []CashFlowEvent) []MonthlySummary {
	balance := g.Opening.Total(g.Scope, g.Rates, g.Base)
	byMonth := map[string]*MonthlySummary{}
	var order []string
	for _, e := range events {
		if !g.inScope(e) {
			continue
		}
		amount := g.convert(e)
		balance = balance.Add(amount)

		key := e.Date.MonthKey()
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlySummary{Month: key}
			byMonth[key] = m
			order = append(order, key)
		}
		m.Closing = balance
		if e.Category == Internal {
			continue // transfers are not external liquidity change
		}
		if amount.IsNegative() {
			m.Outflow = m.Outflow.Add(amount.Neg())
		} else {
			m.Inflow = m.Inflow.Add(amount)
		}
		m.Net = m.Net.Add(amount)
	}

	slices.Sort(order)
	months := make([]MonthlySummary, 0, len(order))
	for _, key := range order {
		months = append(months, *byMonth[key])
	}
	return months
}

// CalendarBalances iterates every single calendar day from 'from' to 'to'
// inclusive, carrying the previous day's balance forward and adding the
// day's net non-INTERNAL flow. Events before the window are folded into the
// opening carry so the first day starts from the right level.
func (g Aggregator) CalendarBalances(events []CashFlowEvent, from, to date.Date) []DayBalance {
	carry := g.Opening.Total(g.Scope, g.Rates, g.Base)
	netByDay := map[date.Date]decimal.Decimal{}
	for _, e := range events {
		if !g.inScope(e) || e.Category == Internal {
			continue
		}
		amount := g.convert(e)
		if e.Date.Before(from) {
			carry = carry.Add(amount)
			continue
		}
		if e.Date.After(to) {
			continue
		}
		netByDay[e.Date] = netByDay[e.Date].Add(amount)
	}

	var days []DayBalance
	for d := range date.Days(from, to) {
		net := netByDay[d]
		carry = carry.Add(net)
		days = append(days, DayBalance{Date: d, Net: net, Balance: carry})
	}
	return days
}

// BalanceMap flattens a balance calendar into the date-string keyed map the
// calendar views consume.
func BalanceMap(days []DayBalance) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(days))
	for _, d := range days {
		m[d.Date.String()] = d.Balance
	}
	return m
}

// CalendarWindow returns the default calendar range around now: a quarter
// of lookback and a forward horizon stretched to cover the latest event of
// the stream, at least eighteen months out.
func CalendarWindow(now date.Date, events []CashFlowEvent) (from, to date.Date) {
	from = now.Add(-90)
	to = now.AddMonths(18)
	for _, e := range events {
		if e.Date.After(to) {
			to = e.Date
		}
	}
	return from, to
}

// safetyRMB is the reference liquidity level, in RMB units, balances are
// flagged against.
var safetyRMB = decimal.NewFromInt(100)

// SafetyThreshold returns the reference balance (100 RMB units converted to
// the base currency) used for alerting. It is a comparison value only,
// never enforced.
func (g Aggregator) SafetyThreshold() decimal.Decimal {
	return In(RMB, safetyRMB).Base(g.Rates, g.Base)
}

// Runway estimates how many months the given balance lasts at the average
// burn rate of the supplied monthly summaries. It reports ok=false when the
// average net flow is not negative, i.e. the balance never depletes.
func Runway(months []MonthlySummary, balance decimal.Decimal) (float64, bool) {
	if len(months) == 0 {
		return 0, false
	}
	var net decimal.Decimal
	for _, m := range months {
		net = net.Add(m.Net)
	}
	avg := net.Div(decimal.NewFromInt(int64(len(months))))
	if !avg.IsNegative() {
		return 0, false
	}
	return balance.Div(avg.Neg()).InexactFloat64(), true
}
