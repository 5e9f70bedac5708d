package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/millbook"
)

func entry(date string) millbook.ProductionEntry {
	return millbook.NewProductionEntry(millbook.MustParseDate(date), 5, 200, 100, 10, millbook.M(150))
}

func TestSummaryMarkdown(t *testing.T) {
	e := entry("2026-08-15")
	stats := millbook.Summarize([]millbook.ProductionEntry{e}, nil)

	got := SummaryMarkdown(stats, millbook.AllPeriods, []millbook.ProductionEntry{e})

	for _, want := range []string{
		"# Production Summary — All Time",
		"## Recent Entries",
		"Total Production",
		"14.5 kg",
		"Outstanding",
		"2026-08-15",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdownMonthLabel(t *testing.T) {
	stats := millbook.Summarize(nil, nil)
	got := SummaryMarkdown(stats, millbook.PeriodKey("2026-08"), nil)
	if !strings.Contains(got, "# Production Summary — 2026-08") {
		t.Errorf("month period not in title:\n%s", got)
	}
	if strings.Contains(got, "Recent Entries") {
		t.Errorf("empty recent list must not render a table:\n%s", got)
	}
}

func TestEntriesMarkdownEmpty(t *testing.T) {
	got := EntriesMarkdown(nil, millbook.AllPeriods)
	if !strings.Contains(got, "No entries for this period.") {
		t.Errorf("EntriesMarkdown(nil) = %q", got)
	}
}

func TestPaymentsMarkdown(t *testing.T) {
	p := millbook.NewPayment(millbook.MustParseDate("2026-08-16"), millbook.M(2000), "advance")
	got := PaymentsMarkdown([]millbook.Payment{p}, millbook.AllPeriods)
	for _, want := range []string{"# Payment History — All Time", "2026-08-16", "advance", p.ID} {
		if !strings.Contains(got, want) {
			t.Errorf("PaymentsMarkdown() missing %q:\n%s", want, got)
		}
	}
}
