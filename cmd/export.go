package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/millbook"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	payments   bool
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as delimited text" }
func (*exportCmd) Usage() string {
	return `mill export [-payments] [-o <file>]

  Writes the full ledger as CSV, one row per record in store order. By default
  production entries go to production_logs_<date>.csv; with -payments the
  payment history goes to payment_history_<date>.csv.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.payments, "payments", false, "Export the payment history instead of production entries.")
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to the conventional dated name.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	name := c.outputFile
	if name == "" {
		if c.payments {
			name = millbook.PaymentsCSVName(millbook.Today())
		} else {
			name = millbook.ProductionCSVName(millbook.Today())
		}
	}

	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if c.payments {
		err = millbook.ExportPaymentsCSV(out, ledger.Payments())
	} else {
		err = millbook.ExportProductionCSV(out, ledger.Entries())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported to %s\n", name)
	return subcommands.ExitSuccess
}
