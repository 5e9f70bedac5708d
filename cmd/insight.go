package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/millbook"
	"github.com/etnz/millbook/insight"
)

// insightEntries is how many recent entries are sent to the model.
const insightEntries = 10

// insightCmd holds the flags for the 'insight' subcommand.
type insightCmd struct {
	period string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "ask the AI for a short review of recent production" }
func (*insightCmd) Usage() string {
	return `mill insight [-p <period>]

  Sends the 10 most recent entries of the selected period to Gemini and prints
  the returned prose. Requires GEMINI_API_KEY in the environment; a failure
  prints a fallback message and never affects the ledger.
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", string(millbook.AllPeriods), "Period to review: a YYYY-MM month or \"all\".")
}

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	entries := millbook.Recent(millbook.FilterEntries(ledger.Entries(), period), insightEntries)

	analyst, err := insight.NewAnalyst(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(analyst.Summarize(ctx, entries))
	return subcommands.ExitSuccess
}
