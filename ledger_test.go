package millbook

import (
	"errors"
	"testing"
)

func TestLedger_AddEntryPrepends(t *testing.T) {
	l := testLedger()

	first, err := l.AddEntry(MustParseDate("2026-08-01"), 5, 200, 100, 10, R(150))
	if err != nil {
		t.Fatalf("AddEntry() returned an unexpected error: %v", err)
	}
	second, err := l.AddEntry(MustParseDate("2026-07-15"), 3, 333, 77, 7, R(151.75))
	if err != nil {
		t.Fatalf("AddEntry() returned an unexpected error: %v", err)
	}

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() has %d elements, want 2", len(entries))
	}
	// Most recent insertion first, regardless of the dates.
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("entries are not in insertion order: got [%s, %s]", entries[0].ID, entries[1].ID)
	}
}

func TestLedger_AddPaymentRejectsNonPositive(t *testing.T) {
	l := testLedger()
	if _, err := l.AddPayment(MustParseDate("2026-08-01"), R(500), "advance"); err != nil {
		t.Fatalf("AddPayment() returned an unexpected error: %v", err)
	}

	for _, amount := range []Money{R(0), R(-1), R(-0.01)} {
		_, err := l.AddPayment(MustParseDate("2026-08-02"), amount, "bad")
		if !errors.Is(err, ErrNonPositiveAmount) {
			t.Errorf("AddPayment(%s) error = %v, want ErrNonPositiveAmount", amount, err)
		}
	}

	if got := len(l.Payments()); got != 1 {
		t.Errorf("payments collection has %d elements after rejections, want 1", got)
	}
}

func TestLedger_Delete(t *testing.T) {
	l := testLedger()
	a, _ := l.AddEntry(MustParseDate("2026-08-01"), 5, 200, 100, 10, R(150))
	b, _ := l.AddEntry(MustParseDate("2026-08-02"), 6, 150, 80, 11, R(150))
	c, _ := l.AddEntry(MustParseDate("2026-08-03"), 7, 100, 60, 12, R(150))

	// Deleting a non-existent id is a no-op.
	removed, err := l.DeleteEntry("no-such-id")
	if err != nil {
		t.Fatalf("DeleteEntry() returned an unexpected error: %v", err)
	}
	if removed {
		t.Error("DeleteEntry(no-such-id) reported a removal")
	}
	if got := len(l.Entries()); got != 3 {
		t.Fatalf("entries collection has %d elements, want 3", got)
	}

	// Deleting an existing id removes exactly that one.
	removed, err = l.DeleteEntry(b.ID)
	if err != nil {
		t.Fatalf("DeleteEntry() returned an unexpected error: %v", err)
	}
	if !removed {
		t.Error("DeleteEntry() did not report a removal")
	}
	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries collection has %d elements after delete, want 2", len(entries))
	}
	if entries[0].ID != c.ID || entries[1].ID != a.ID {
		t.Errorf("surviving entries are [%s, %s], want [%s, %s]", entries[0].ID, entries[1].ID, c.ID, a.ID)
	}
}

func TestLedger_DeletePayment(t *testing.T) {
	l := testLedger()
	p, _ := l.AddPayment(MustParseDate("2026-08-01"), R(500), "")

	if removed, _ := l.DeletePayment("nope"); removed {
		t.Error("DeletePayment(nope) reported a removal")
	}
	if removed, _ := l.DeletePayment(p.ID); !removed {
		t.Error("DeletePayment() did not report a removal")
	}
	if got := len(l.Payments()); got != 0 {
		t.Errorf("payments collection has %d elements, want 0", got)
	}
}

func TestLedger_PersistsEveryMutation(t *testing.T) {
	store := NewMemoryStore()
	l := NewLedger(store)
	if err := l.Load(); err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}

	entry, _ := l.AddEntry(MustParseDate("2026-08-01"), 5, 200, 100, 10, R(150))
	payment, _ := l.AddPayment(MustParseDate("2026-08-02"), R(1000), "cash")

	// A second ledger over the same store must observe the same state.
	reloaded := NewLedger(store)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	entries, payments := reloaded.Entries(), reloaded.Payments()
	if len(entries) != 1 || !entries[0].Equal(entry) {
		t.Errorf("reloaded entries = %v, want [%v]", entries, entry)
	}
	if len(payments) != 1 || !payments[0].Equal(payment) {
		t.Errorf("reloaded payments = %v, want [%v]", payments, payment)
	}

	if removed, _ := l.DeleteEntry(entry.ID); !removed {
		t.Fatal("DeleteEntry() did not report a removal")
	}
	reloaded = NewLedger(store)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if got := len(reloaded.Entries()); got != 0 {
		t.Errorf("reloaded entries after delete = %d, want 0", got)
	}
}

func TestLedger_LoadCorruptValue(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Put("production_entries", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("production_payments", []byte(`[{"id":"p1","date":"2026-08-01","amount":100,"note":""}]`)); err != nil {
		t.Fatal(err)
	}

	l := NewLedger(store)
	// Corrupt persisted data falls back to empty, never a fatal error.
	if err := l.Load(); err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if got := len(l.Entries()); got != 0 {
		t.Errorf("entries loaded from corrupt value = %d, want 0", got)
	}
	if got := len(l.Payments()); got != 1 {
		t.Errorf("payments = %d, want 1", got)
	}
}

func TestLedger_ReplaceAll(t *testing.T) {
	store := NewMemoryStore()
	l := NewLedger(store)
	if err := l.Load(); err != nil {
		t.Fatal(err)
	}
	l.AddEntry(MustParseDate("2026-08-01"), 5, 200, 100, 10, R(150))
	l.AddPayment(MustParseDate("2026-08-02"), R(1000), "")

	entries := []ProductionEntry{
		testEntry("2026-07-03", 7, 100, 60, 12, 149),
		testEntry("2026-07-02", 6, 150, 80, 11, 149),
	}
	payments := []Payment{NewPayment(MustParseDate("2026-07-04"), R(2000), "july")}

	if err := l.ReplaceAll(entries, payments); err != nil {
		t.Fatalf("ReplaceAll() returned an unexpected error: %v", err)
	}

	got := l.Entries()
	if len(got) != 2 || !got[0].Equal(entries[0]) || !got[1].Equal(entries[1]) {
		t.Errorf("entries after ReplaceAll = %v, want %v", got, entries)
	}
	if gotP := l.Payments(); len(gotP) != 1 || !gotP[0].Equal(payments[0]) {
		t.Errorf("payments after ReplaceAll = %v, want %v", gotP, payments)
	}

	// Both sequences are persisted too.
	reloaded := NewLedger(store)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	if got := len(reloaded.Entries()); got != 2 {
		t.Errorf("reloaded entries = %d, want 2", got)
	}
	if got := len(reloaded.Payments()); got != 1 {
		t.Errorf("reloaded payments = %d, want 1", got)
	}
}
