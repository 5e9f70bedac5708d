// Package cmd implements the CLI application to manage a production ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/millbook"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "millbook.db", "Path to the millbook database file")

// Commands lists all subcommands in registration order.
// A main package will register them all and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&payCmd{},
	&rmCmd{},
	&logCmd{},
	&paymentsCmd{},
	&summaryCmd{},
	&periodsCmd{},
	&exportCmd{},
	&backupCmd{},
	&restoreCmd{},
	&insightCmd{},
	&topicCmd{},
}

// openLedger opens the store and loads the ledger from it. The returned close
// function must be called before exit.
func openLedger() (*millbook.Ledger, func(), error) {
	store, err := millbook.OpenStore(*dbFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open database %q: %w", *dbFile, err)
	}
	ledger := millbook.NewLedger(store)
	if err := ledger.Load(); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("cannot load ledger: %w", err)
	}
	return ledger, func() { store.Close() }, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be created.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// confirm is the destructive-operation gate: the ledger itself asks no
// questions, so every delete or restore goes through here first.
func confirm(intent string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", intent)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// parsePeriodFlag parses the -p flag shared by the reporting commands.
func parsePeriodFlag(s string) (millbook.PeriodKey, error) {
	if s == "" {
		return millbook.AllPeriods, nil
	}
	return millbook.ParsePeriodKey(s)
}
