// Package cmd implements the CLI application to manage the treasury plan.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/date"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&debtAddCmd{}, "debts")
	c.Register(&debtListCmd{}, "debts")
	c.Register(&debtSetCmd{}, "debts")
	c.Register(&debtRmCmd{}, "debts")

	c.Register(&txCmd{}, "transactions")
	c.Register(&txRmCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")
	c.Register(&syncCmd{}, "transactions")

	c.Register(&scenarioCmd{}, "scenario")
	c.Register(&ratesCmd{}, "scenario")
	c.Register(&openingCmd{}, "scenario")

	c.Register(&projectCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&calendarCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "treasury.jsonl", "Path to the ledger file (JSONL format)")
var plain = flag.Bool("plain", false, "Print reports as raw markdown instead of rendering for the terminal")

// decodeLedger loads the app ledger file, falling back to an empty ledger
// when the file does not exist yet.
func decodeLedger() (*treasury.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return treasury.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return treasury.DecodeLedger(f)
}

// encodeLedger writes the ledger back to the app ledger file in canonical form.
func encodeLedger(l *treasury.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return treasury.EncodeLedger(f, l)
}

// render prints a markdown report, through glamour unless -plain is set or
// rendering fails.
func render(md string) {
	if !*plain {
		if out, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// parseDateFlag parses a -d flag value, defaulting to today when empty.
func parseDateFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// parseScope parses an -entity flag value, defaulting to the group scope.
func parseScope(s string) (treasury.Entity, error) {
	if s == "" {
		return treasury.EntityAll, nil
	}
	return treasury.ParseEntity(s)
}

// fail prints the error and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
