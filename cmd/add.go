package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/millbook"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date  string
	drum  int
	open  int
	close int
	cones int
	rate  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a production entry" }
func (*addCmd) Usage() string {
	return `mill add -drum <n> -open <g> -close <g> -cones <n> -rate <price> [-d <date>]

  Records one production entry. The produced weight, total amount and stock
  consumption are computed once at creation and never change.

Usage Examples:
# Record today's production.
$ mill add -drum 5 -open 200 -close 100 -cones 10 -rate 150

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", millbook.Today().String(), "Date of the entry. See the user manual for supported date formats.")
	f.IntVar(&c.drum, "drum", 0, "Running drum counter.")
	f.IntVar(&c.open, "open", 0, "Open stock in grams.")
	f.IntVar(&c.close, "close", 0, "Closing stock in grams.")
	f.IntVar(&c.cones, "cones", 0, "Cones produced.")
	f.StringVar(&c.rate, "rate", "", "Rate per kilogram.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := millbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.rate == "" {
		fmt.Fprintln(os.Stderr, "Error: -rate is required")
		return subcommands.ExitUsageError
	}
	rate, err := millbook.ParseMoney(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rate: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	entry, err := ledger.AddEntry(on, c.drum, c.open, c.close, c.cones, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording entry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded entry %s on %s: %s for %s\n", entry.ID, entry.Date, entry.ProductionWeight, entry.TotalAmount)
	return subcommands.ExitSuccess
}
