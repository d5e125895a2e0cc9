package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury"
	"github.com/lionrock/treasury/store"
)

// syncCmd exchanges manual events with an external store file.
type syncCmd struct {
	storePath string
	pull      bool
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "sync manual events with a store file" }
func (*syncCmd) Usage() string {
	return `tpc sync -store <file> [-pull]

  Pushes the ledger's manual events into the store, or with -pull records
  store events the ledger does not know yet.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storePath, "store", "", "Store file to sync with")
	f.BoolVar(&c.pull, "pull", false, "Pull events from the store instead of pushing")
}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.storePath == "" {
		return fail(fmt.Errorf("-store is required"))
	}
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	st := store.NewFileStore(c.storePath)

	if c.pull {
		stored, err := st.FetchAll()
		if err != nil {
			return fail(err)
		}
		known := make(map[string]bool)
		for _, e := range ledger.Events() {
			known[e.ID] = true
		}
		var fresh []treasury.CashFlowEvent
		for _, e := range stored {
			if !known[e.ID] {
				fresh = append(fresh, e)
			}
		}
		if err := ledger.Append(fresh...); err != nil {
			return fail(err)
		}
		if err := encodeLedger(ledger); err != nil {
			return fail(err)
		}
		fmt.Printf("Pulled %d new events from %s\n", len(fresh), c.storePath)
		return subcommands.ExitSuccess
	}

	events := ledger.Events()
	for _, e := range events {
		if err := st.Upsert(e); err != nil {
			return fail(err)
		}
	}
	fmt.Printf("Pushed %d events to %s\n", len(events), c.storePath)
	return subcommands.ExitSuccess
}
