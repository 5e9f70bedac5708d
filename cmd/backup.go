package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/millbook"
)

// backupCmd holds the flags for the 'backup' subcommand.
type backupCmd struct {
	outputFile string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export the full ledger as a versioned backup document" }
func (*backupCmd) Usage() string {
	return `mill backup [-o <file>]

  Writes the complete ledger (all entries and payments, never period-filtered)
  to production_full_backup_<date>.json. A backup restored with 'mill restore'
  reproduces the ledger exactly, ids included.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to the conventional dated name.")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	name := c.outputFile
	if name == "" {
		name = millbook.BackupName(millbook.Today())
	}

	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	backup := millbook.NewBackup(ledger.Entries(), ledger.Payments(), time.Now())
	if err := millbook.EncodeBackup(out, backup); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Backup written to %s\n", name)
	return subcommands.ExitSuccess
}

// restoreCmd holds the flags for the 'restore' subcommand.
type restoreCmd struct {
	assumeYes bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the ledger from a backup or CSV export" }
func (*restoreCmd) Usage() string {
	return `mill restore [-y] <file>

  Replaces ledger state from a file, after confirmation:
  - a .json backup replaces both sequences wholesale;
  - a .csv export replaces only the matching sequence (entries or payments),
    detected from the header row, with fresh ids.

  A malformed file is rejected and the current ledger is left untouched.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.assumeYes, "y", false, "Skip the confirmation prompt.")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file is required")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return c.restoreBackup(name)
	case ".csv":
		return c.restoreCSV(name)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported file type %q, want .json or .csv\n", name)
		return subcommands.ExitUsageError
	}
}

func (c *restoreCmd) restoreBackup(name string) subcommands.ExitStatus {
	in, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	backup, err := millbook.DecodeBackup(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup %q: %v\nThe ledger is unchanged.\n", name, err)
		return subcommands.ExitFailure
	}

	intent := fmt.Sprintf("Replace the whole ledger with %d entries and %d payments from %q (version %s)?",
		len(backup.Entries), len(backup.Payments), name, backup.Version)
	if !confirm(intent, c.assumeYes) {
		fmt.Fprintln(os.Stderr, "Aborted, the ledger is unchanged.")
		return subcommands.ExitSuccess
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := ledger.ReplaceAll(backup.Entries, backup.Payments); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Restored %d entries and %d payments from %s\n", len(backup.Entries), len(backup.Payments), name)
	return subcommands.ExitSuccess
}

func (c *restoreCmd) restoreCSV(name string) subcommands.ExitStatus {
	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	// Try the production format first, then the payments one.
	entries, entryErr := millbook.ImportProductionCSV(strings.NewReader(string(data)))
	var payments []millbook.Payment
	var paymentErr error
	if entryErr != nil {
		payments, paymentErr = millbook.ImportPaymentsCSV(strings.NewReader(string(data)))
		if paymentErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %q matches neither export format.\nAs production: %v\nAs payments: %v\nThe ledger is unchanged.\n",
				name, entryErr, paymentErr)
			return subcommands.ExitFailure
		}
	}

	ledger, closeStore, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if entryErr == nil {
		if !confirm(fmt.Sprintf("Replace all production entries with %d rows from %q?", len(entries), name), c.assumeYes) {
			fmt.Fprintln(os.Stderr, "Aborted, the ledger is unchanged.")
			return subcommands.ExitSuccess
		}
		if err := ledger.ReplaceAll(entries, ledger.Payments()); err != nil {
			fmt.Fprintf(os.Stderr, "Error restoring entries: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Restored %d entries from %s\n", len(entries), name)
		return subcommands.ExitSuccess
	}

	if !confirm(fmt.Sprintf("Replace all payments with %d rows from %q?", len(payments), name), c.assumeYes) {
		fmt.Fprintln(os.Stderr, "Aborted, the ledger is unchanged.")
		return subcommands.ExitSuccess
	}
	if err := ledger.ReplaceAll(ledger.Entries(), payments); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring payments: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored %d payments from %s\n", len(payments), name)
	return subcommands.ExitSuccess
}
