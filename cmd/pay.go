package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/millbook"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	date   string
	amount string
	note   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against the outstanding balance" }
func (*payCmd) Usage() string {
	return `mill pay -amount <value> [-d <date>] [-note <text>]

  Records one payment. The amount must be positive; payments are not linked to
  a specific entry, they reduce the period's outstanding balance.

Usage Examples:
# Record a payment received today.
$ mill pay -amount 5000 -note "advance for August"

`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", millbook.Today().String(), "Date of the payment.")
	f.StringVar(&c.amount, "amount", "", "Payment amount.")
	f.StringVar(&c.note, "note", "", "Free-text note.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := millbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := millbook.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	payment, err := ledger.AddPayment(on, amount, c.note)
	if errors.Is(err, millbook.ErrNonPositiveAmount) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording payment: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded payment %s on %s: %s\n", payment.ID, payment.Date, payment.Amount)
	return subcommands.ExitSuccess
}
