package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	payment   bool
	assumeYes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an entry or payment by id" }
func (*rmCmd) Usage() string {
	return `mill rm [-payment] [-y] <id>

  Deletes the record with the given id after confirmation. Deleting an unknown
  id changes nothing. There is no edit: delete and re-add to correct a record.

Usage Examples:
# Delete a production entry without the interactive prompt.
$ mill rm -y 0b07...

# Delete a payment.
$ mill rm -payment 4cc1...

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.payment, "payment", false, "Delete a payment instead of a production entry.")
	f.BoolVar(&c.assumeYes, "y", false, "Skip the confirmation prompt.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one record id is required")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	kind := "entry"
	if c.payment {
		kind = "payment"
	}
	if !confirm(fmt.Sprintf("Delete %s %s? This cannot be undone.", kind, id), c.assumeYes) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var removed bool
	if c.payment {
		removed, err = ledger.DeletePayment(id)
	} else {
		removed, err = ledger.DeleteEntry(id)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %s: %v\n", kind, err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Printf("No %s with id %s, nothing deleted.\n", kind, id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Deleted %s %s.\n", kind, id)
	return subcommands.ExitSuccess
}
