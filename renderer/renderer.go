// Package renderer turns the core's aggregates into markdown reports. The
// cmd layer decides how to display them (raw, or through an ANSI markdown
// renderer).
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/lionrock/treasury"
	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// row writes one markdown table row.
func row(w io.Writer, cells ...string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

// rule writes the markdown table separator for n columns.
func rule(w io.Writer, n int) {
	fmt.Fprintf(w, "|%s\n", strings.Repeat(" --- |", n))
}

// cell formats a base-currency value for a table cell.
func cell(v decimal.Decimal, base treasury.Currency) string {
	return treasury.M(v, base).String()
}

// signedCell formats a base-currency value with an explicit sign, "-" for zero.
func signedCell(v decimal.Decimal, base treasury.Currency) string {
	return treasury.M(v, base).SignedString()
}

// flag marks balances sitting below the safety threshold.
func flag(balance, threshold decimal.Decimal) string {
	if balance.LessThan(threshold) {
		return " ⚠"
	}
	return ""
}
