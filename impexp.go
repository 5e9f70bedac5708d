package millbook

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"
)

// this file contains functions for the export formats: tabular CSV for
// spreadsheets, and the versioned full-backup document. Both must stay
// human readable and single file.

// BackupVersion is the current version tag written into backup documents.
const BackupVersion = "1.0"

// Column headers of the two tabular exports.
var (
	productionHeader = []string{"Date", "Running Drum", "Open Stock (g)", "Production (cones)", "Closing Stock (g)", "Rate per Kg", "Weight (kg)", "Total Amount"}
	paymentsHeader   = []string{"Date", "Amount", "Note"}
)

// ProductionCSVName returns the conventional file name for a production
// export made on the given date.
func ProductionCSVName(on Date) string { return "production_logs_" + on.String() + ".csv" }

// PaymentsCSVName returns the conventional file name for a payment-history
// export made on the given date.
func PaymentsCSVName(on Date) string { return "payment_history_" + on.String() + ".csv" }

// BackupName returns the conventional file name for a full backup made on the
// given date.
func BackupName(on Date) string { return "production_full_backup_" + on.String() + ".json" }

// ExportProductionCSV writes entries as delimited text, one row per entry in
// sequence order. Fields containing the delimiter or quotes are quoted with
// internal quote-doubling by the csv writer.
func ExportProductionCSV(w io.Writer, entries []ProductionEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(productionHeader); err != nil {
		return fmt.Errorf("cannot write production header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Date.String(),
			strconv.Itoa(e.RunningDrum),
			strconv.Itoa(e.OpenStockGrams),
			strconv.Itoa(e.ProductionCones),
			strconv.Itoa(e.ClosingStockGrams),
			e.RatePerKg.Text(),
			e.ProductionWeight.Text(),
			e.TotalAmount.Text(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write production row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPaymentsCSV writes payments as delimited text, one row per payment in
// sequence order. The free-text note field relies on the csv writer's quoting.
func ExportPaymentsCSV(w io.Writer, payments []Payment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(paymentsHeader); err != nil {
		return fmt.Errorf("cannot write payments header: %w", err)
	}
	for _, p := range payments {
		if err := cw.Write([]string{p.Date.String(), p.Amount.Text(), p.Note}); err != nil {
			return fmt.Errorf("cannot write payment row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportProductionCSV parses a production export back into entries, in file
// order. The exported values are taken verbatim, derived columns are not
// recomputed; only the consumption, which the tabular format drops, is derived
// again from the stock columns. Imported entries get fresh ids.
func ImportProductionCSV(r io.Reader) ([]ProductionEntry, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read production header: %w", err)
	}
	if !slices.Equal(header, productionHeader) {
		return nil, fmt.Errorf("not a production export, header is %q", header)
	}

	var entries []ProductionEntry
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read production row: %w", err)
		}
		entry, err := parseProductionRow(row)
		if err != nil {
			return nil, fmt.Errorf("invalid production row %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseProductionRow(row []string) (ProductionEntry, error) {
	on, err := ParseDate(row[0])
	if err != nil {
		return ProductionEntry{}, err
	}
	drum, err := strconv.Atoi(row[1])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("running drum: %w", err)
	}
	open, err := strconv.Atoi(row[2])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("open stock: %w", err)
	}
	cones, err := strconv.Atoi(row[3])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("production cones: %w", err)
	}
	closing, err := strconv.Atoi(row[4])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("closing stock: %w", err)
	}
	rate, err := ParseMoney(row[5])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("rate per kg: %w", err)
	}
	weight, err := ParseWeight(row[6])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("weight: %w", err)
	}
	amount, err := ParseMoney(row[7])
	if err != nil {
		return ProductionEntry{}, fmt.Errorf("total amount: %w", err)
	}
	return ProductionEntry{
		ID:                newID(),
		Date:              on,
		RunningDrum:       drum,
		OpenStockGrams:    open,
		ClosingStockGrams: closing,
		ProductionCones:   cones,
		RatePerKg:         rate,
		ProductionWeight:  weight,
		TotalAmount:       amount,
		ConsumptionKg:     StockConsumption(open, closing),
	}, nil
}

// ImportPaymentsCSV parses a payment-history export back into payments, in
// file order. Imported payments get fresh ids.
func ImportPaymentsCSV(r io.Reader) ([]Payment, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read payments header: %w", err)
	}
	if !slices.Equal(header, paymentsHeader) {
		return nil, fmt.Errorf("not a payments export, header is %q", header)
	}

	var payments []Payment
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read payment row: %w", err)
		}
		on, err := ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("invalid payment row %d: %w", line, err)
		}
		amount, err := ParseMoney(row[1])
		if err != nil {
			return nil, fmt.Errorf("invalid payment row %d: %w", line, err)
		}
		payments = append(payments, Payment{ID: newID(), Date: on, Amount: amount, Note: row[2]})
	}
	return payments, nil
}

// Backup is the structured, versioned export of the full ledger state. It
// always carries the complete unfiltered sequences.
type Backup struct {
	Entries    []ProductionEntry `json:"entries"`
	Payments   []Payment         `json:"payments"`
	Version    string            `json:"version"`
	ExportDate string            `json:"exportDate"`
}

// NewBackup snapshots the given sequences into a backup document stamped at
// the given time.
func NewBackup(entries []ProductionEntry, payments []Payment, at time.Time) Backup {
	if entries == nil {
		entries = []ProductionEntry{}
	}
	if payments == nil {
		payments = []Payment{}
	}
	return Backup{
		Entries:    entries,
		Payments:   payments,
		Version:    BackupVersion,
		ExportDate: at.UTC().Format(time.RFC3339),
	}
}

// MarshalJSON implements the json.Marshaler interface with a canonical field order.
func (b Backup) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entries", b.Entries)
	w.Append("payments", b.Payments)
	w.Append("version", b.Version)
	w.Append("exportDate", b.ExportDate)
	return w.MarshalJSON()
}

// EncodeBackup writes the backup document to w.
func EncodeBackup(w io.Writer, b Backup) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// DecodeBackup parses a backup document from r. It requires both the entries
// and payments containers to be present; beyond that presence check no deeper
// schema or version validation is performed. On any error the caller's ledger
// state is untouched, import is all-or-nothing.
func DecodeBackup(r io.Reader) (Backup, error) {
	var probe struct {
		Entries    json.RawMessage `json:"entries"`
		Payments   json.RawMessage `json:"payments"`
		Version    string          `json:"version"`
		ExportDate string          `json:"exportDate"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&probe); err != nil {
		return Backup{}, fmt.Errorf("cannot parse backup: %w", err)
	}
	if probe.Entries == nil {
		return Backup{}, fmt.Errorf("invalid backup: missing entries container")
	}
	if probe.Payments == nil {
		return Backup{}, fmt.Errorf("invalid backup: missing payments container")
	}

	b := Backup{Version: probe.Version, ExportDate: probe.ExportDate}
	if err := json.Unmarshal(probe.Entries, &b.Entries); err != nil {
		return Backup{}, fmt.Errorf("cannot parse backup entries: %w", err)
	}
	if err := json.Unmarshal(probe.Payments, &b.Payments); err != nil {
		return Backup{}, fmt.Errorf("cannot parse backup payments: %w", err)
	}
	return b, nil
}
