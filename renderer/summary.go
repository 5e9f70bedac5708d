// Package renderer formats ledger data as markdown for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/millbook"
)

// periodLabel names a period key for titles.
func periodLabel(period millbook.PeriodKey) string {
	if period == millbook.AllPeriods {
		return "All Time"
	}
	return period.String()
}

// SummaryMarkdown renders the dashboard: aggregate statistics for the selected
// period followed by the most recent entries.
func SummaryMarkdown(stats millbook.SummaryStats, period millbook.PeriodKey, recent []millbook.ProductionEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Production Summary — %s", periodLabel(period)))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Entries", fmt.Sprintf("%d", stats.Entries)},
			{"Total Production", stats.TotalWeight.String()},
			{"Total Value", stats.TotalValue.String()},
			{"Net Consumption", stats.NetConsumption.String()},
			{"Payments", fmt.Sprintf("%d", stats.Payments)},
			{"Total Paid", stats.TotalPaid.String()},
			{"Outstanding", stats.Outstanding.String()},
		},
	})

	if len(recent) > 0 {
		doc.H2("Recent Entries")
		doc.Table(entriesTable(recent))
	}

	return doc.String()
}

// EntriesMarkdown renders the production log for a period as a markdown table.
func EntriesMarkdown(entries []millbook.ProductionEntry, period millbook.PeriodKey) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Production Log — %s", periodLabel(period)))
	if len(entries) == 0 {
		doc.PlainText("No entries for this period.")
		return doc.String()
	}
	doc.Table(entriesTable(entries))
	return doc.String()
}

// PaymentsMarkdown renders the payment history for a period as a markdown table.
func PaymentsMarkdown(payments []millbook.Payment, period millbook.PeriodKey) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payment History — %s", periodLabel(period)))
	if len(payments) == 0 {
		doc.PlainText("No payments for this period.")
		return doc.String()
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{p.Date.String(), p.Amount.String(), p.Note, p.ID})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Amount", "Note", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

func entriesTable(entries []millbook.ProductionEntry) md.TableSet {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date.String(),
			fmt.Sprintf("%d", e.RunningDrum),
			fmt.Sprintf("%d", e.OpenStockGrams),
			fmt.Sprintf("%d", e.ProductionCones),
			fmt.Sprintf("%d", e.ClosingStockGrams),
			e.RatePerKg.String(),
			e.ProductionWeight.String(),
			e.TotalAmount.String(),
			e.ID,
		})
	}
	return md.TableSet{
		Header: []string{"Date", "Drum", "Open (g)", "Cones", "Closing (g)", "Rate/Kg", "Weight", "Amount", "ID"},
		Rows:   rows,
	}
}
