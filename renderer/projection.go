package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/lionrock/treasury"
)

// ProjectionMarkdown renders the merged event stream with running balances:
// one table row per event, oldest first.
func ProjectionMarkdown(lines []treasury.BalanceLine, scope treasury.Entity, base treasury.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cash Projection (%s, in %s)\n\n", scope, base)
	if len(lines) == 0 {
		b.WriteString("No events.\n")
		return b.String()
	}

	row(&b, "Date", "St", "Entity", "Category", "Description", "Amount", "Balance")
	rule(&b, 7)
	for _, l := range lines {
		e := l.Event
		row(&b,
			e.Date.String(),
			statusMark(e.Status),
			string(e.Entity),
			string(e.Category),
			e.Description,
			signedCell(l.Amount, base),
			cell(l.Balance, base),
		)
	}
	return b.String()
}

// DebtsMarkdown renders the debt book.
func DebtsMarkdown(debts []treasury.DebtInstrument) string {
	var b strings.Builder
	b.WriteString("# Debt Instruments\n\n")
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(debts) == 0 {
			return false
		}
		row(w, "ID", "Name", "Entity", "Ccy", "Principal", "Rate", "Benchmark", "Freq", "Start", "End", "Status")
		rule(w, 11)
		for _, d := range debts {
			row(w,
				d.ID,
				d.Name,
				string(d.Entity),
				string(d.Currency),
				d.Principal.String(),
				d.BaseRate.String()+"%",
				string(d.Benchmark),
				string(d.Frequency),
				d.Start.String(),
				d.End.String(),
				string(d.Status),
			)
		}
		return true
	})
	if len(debts) == 0 {
		b.WriteString("No debts recorded.\n")
	}
	return b.String()
}

func statusMark(s treasury.EventStatus) string {
	if s == treasury.Forecast {
		return "F"
	}
	return "A"
}
