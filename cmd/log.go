package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/millbook"
	"github.com/etnz/millbook/renderer"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	period string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the production log for a period" }
func (*logCmd) Usage() string {
	return `mill log [-p <period>]

  Displays the production entries for a period (a YYYY-MM month or "all"),
  most recently recorded first.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", string(millbook.AllPeriods), "Period to display: a YYYY-MM month or \"all\".")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := parsePeriodFlag(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	entries := millbook.FilterEntries(ledger.Entries(), period)
	printMarkdown(renderer.EntriesMarkdown(entries, period))
	return subcommands.ExitSuccess
}

// paymentsCmd holds the flags for the 'payments' subcommand.
type paymentsCmd struct {
	period string
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "display the payment history for a period" }
func (*paymentsCmd) Usage() string {
	return `mill payments [-p <period>]

  Displays the payments for a period (a YYYY-MM month or "all"), most recently
  recorded first.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", string(millbook.AllPeriods), "Period to display: a YYYY-MM month or \"all\".")
}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := parsePeriodFlag(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	payments := millbook.FilterPayments(ledger.Payments(), period)
	printMarkdown(renderer.PaymentsMarkdown(payments, period))
	return subcommands.ExitSuccess
}
