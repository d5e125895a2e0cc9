package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
)

// exportCmd writes the projected event stream as CSV.
type exportCmd struct {
	date   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the projected events as CSV" }
func (*exportCmd) Usage() string {
	return `tpc export [-d <date>] [-o <file>]

  Writes the merged projection (manual and generated events) as CSV rows:
  date,status,entity,category,description,amountHKD,amountRMB,amountUSD.
  Defaults to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for forecast/actual split (defaults to today)")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}
	if err := treasury.ExportEvents(out, ledger.Project(now)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// importCmd appends manual events from a CSV file.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import manual events from CSV" }
func (*importCmd) Usage() string {
	return `tpc import -i <file>

  Reads CSV rows in the export format and records them as manual events
  with fresh ids.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		return fail(fmt.Errorf("-i is required"))
	}
	in, err := os.Open(c.input)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	events, err := treasury.ImportEvents(in)
	if err != nil {
		return fail(err)
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.Append(events...); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d events from %s\n", len(events), c.input)
	return subcommands.ExitSuccess
}
