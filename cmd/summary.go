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

// recentEntries is how many entries the dashboard shows below the statistics.
const recentEntries = 10

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the production dashboard for a period" }
func (*summaryCmd) Usage() string {
	return `mill summary [-p <period>]

  Displays aggregate statistics for a period: total production weight and
  value, net stock consumption, total paid and the outstanding balance,
  followed by the most recent entries.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", string(millbook.ThisMonth()), "Period to summarize: a YYYY-MM month or \"all\".")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	payments := millbook.FilterPayments(ledger.Payments(), period)
	stats := millbook.Summarize(entries, payments)

	printMarkdown(renderer.SummaryMarkdown(stats, period, millbook.Recent(entries, recentEntries)))
	return subcommands.ExitSuccess
}

// periodsCmd implements the 'periods' subcommand.
type periodsCmd struct{}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "list the available period keys" }
func (*periodsCmd) Usage() string {
	return `mill periods

  Lists every month with at least one entry or payment, plus the current
  month, most recent first.
`
}

func (*periodsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	for _, period := range millbook.AvailablePeriods(ledger.Entries(), ledger.Payments()) {
		fmt.Println(period)
	}
	return subcommands.ExitSuccess
}
