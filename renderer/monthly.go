package renderer

import (
	"fmt"
	"strings"

	"github.com/lionrock/treasury"
	"github.com/shopspring/decimal"
)

// MonthlyMarkdown renders the month-by-month summary, with the safety
// threshold flag on closing balances and the runway estimate when the group
// is burning cash.
func MonthlyMarkdown(months []treasury.MonthlySummary, threshold decimal.Decimal, scope treasury.Entity, base treasury.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Net Flow (%s, in %s)\n\n", scope, base)
	if len(months) == 0 {
		b.WriteString("No events.\n")
		return b.String()
	}

	row(&b, "Month", "Inflow", "Outflow", "Net", "Closing")
	rule(&b, 5)
	for _, m := range months {
		row(&b,
			m.Month,
			cell(m.Inflow, base),
			cell(m.Outflow, base),
			signedCell(m.Net, base),
			cell(m.Closing, base)+flag(m.Closing, threshold),
		)
	}

	last := months[len(months)-1]
	fmt.Fprintf(&b, "\nSafety threshold: %s.\n", cell(threshold, base))
	if runway, ok := treasury.Runway(months, last.Closing); ok {
		fmt.Fprintf(&b, "Runway at average burn: %.1f months.\n", runway)
	}
	return b.String()
}
