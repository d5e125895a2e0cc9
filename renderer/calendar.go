package renderer

import (
	"fmt"
	"strings"

	"github.com/lionrock/treasury"
	"github.com/shopspring/decimal"
)

// CalendarMarkdown renders the daily balance calendar. Quiet days (no flow,
// balance above threshold) are folded away so the report stays readable
// over a multi-year window.
func CalendarMarkdown(days []treasury.DayBalance, threshold decimal.Decimal, scope treasury.Entity, base treasury.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Balance Calendar (%s, in %s)\n\n", scope, base)
	if len(days) == 0 {
		b.WriteString("No days in window.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Window %s to %s.\n\n", days[0].Date, days[len(days)-1].Date)
	row(&b, "Date", "Day", "Net", "Balance")
	rule(&b, 4)
	folded := 0
	for _, d := range days {
		quiet := d.Net.IsZero() && !d.Balance.LessThan(threshold)
		if quiet {
			folded++
			continue
		}
		row(&b,
			d.Date.String(),
			d.Date.Weekday().String()[:3],
			signedCell(d.Net, base),
			cell(d.Balance, base)+flag(d.Balance, threshold),
		)
	}
	if folded > 0 {
		fmt.Fprintf(&b, "\n%d quiet days folded.\n", folded)
	}
	return b.String()
}
