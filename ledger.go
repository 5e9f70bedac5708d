package millbook

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
)

// ErrNonPositiveAmount is returned when a payment is added with a zero or
// negative amount. The payments sequence is left untouched.
var ErrNonPositiveAmount = errors.New("payment amount must be positive")

// Ledger owns the two record sequences of the production log.
//
// Both sequences are kept most-recent-insertion-first: new records are
// prepended, never re-sorted by date. Every mutation synchronously rewrites
// the affected sequence to the store before returning, so persisted and
// in-memory state never diverge.
//
// The ledger is a single-writer structure. If it is ever shared between
// goroutines, all mutating operations must be serialized under one lock
// guarding both sequences together, because ReplaceAll swaps them jointly.
type Ledger struct {
	store    Store
	entries  []ProductionEntry
	payments []Payment
}

// NewLedger creates an empty ledger persisting into store.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		store:    store,
		entries:  make([]ProductionEntry, 0),
		payments: make([]Payment, 0),
	}
}

// Load restores both sequences from the store. An absent key loads as an
// empty sequence; an unparseable value is logged and also loads as an empty
// sequence. Only a failing store read is an error.
func (l *Ledger) Load() error {
	data, err := l.store.Get(entriesKey)
	if err != nil {
		return fmt.Errorf("cannot load entries: %w", err)
	}
	l.entries = make([]ProductionEntry, 0)
	if len(data) > 0 {
		entries, err := DecodeEntries(data)
		if err != nil {
			log.Printf("warning, discarding corrupt %q value: %v", entriesKey, err)
		} else {
			l.entries = entries
		}
	}

	data, err = l.store.Get(paymentsKey)
	if err != nil {
		return fmt.Errorf("cannot load payments: %w", err)
	}
	l.payments = make([]Payment, 0)
	if len(data) > 0 {
		payments, err := DecodePayments(data)
		if err != nil {
			log.Printf("warning, discarding corrupt %q value: %v", paymentsKey, err)
		} else {
			l.payments = payments
		}
	}
	return nil
}

// AddEntry computes the derived fields for the raw user input, prepends the
// new entry and persists the sequence.
func (l *Ledger) AddEntry(on Date, runningDrum, openStockGrams, closingStockGrams, productionCones int, ratePerKg Money) (ProductionEntry, error) {
	entry := NewProductionEntry(on, runningDrum, openStockGrams, closingStockGrams, productionCones, ratePerKg)
	l.entries = append([]ProductionEntry{entry}, l.entries...)
	if err := l.persistEntries(); err != nil {
		return ProductionEntry{}, err
	}
	return entry, nil
}

// AddPayment prepends a new payment and persists the sequence. A zero or
// negative amount is rejected with ErrNonPositiveAmount and nothing changes.
func (l *Ledger) AddPayment(on Date, amount Money, note string) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, ErrNonPositiveAmount
	}
	payment := NewPayment(on, amount, note)
	l.payments = append([]Payment{payment}, l.payments...)
	if err := l.persistPayments(); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// DeleteEntry removes the entry with the given id and persists the sequence.
// It reports whether an entry was removed; an absent id is a no-op.
//
// The caller is expected to have satisfied its own confirmation gate before
// invoking this, the ledger asks no questions.
func (l *Ledger) DeleteEntry(id string) (bool, error) {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = slices.Delete(l.entries, i, i+1)
			return true, l.persistEntries()
		}
	}
	return false, nil
}

// DeletePayment removes the payment with the given id and persists the
// sequence. It reports whether a payment was removed; an absent id is a no-op.
func (l *Ledger) DeletePayment(id string) (bool, error) {
	for i, p := range l.payments {
		if p.ID == id {
			l.payments = slices.Delete(l.payments, i, i+1)
			return true, l.persistPayments()
		}
	}
	return false, nil
}

// ReplaceAll swaps both sequences wholesale, as restore-from-backup does.
// Both sequences are persisted and swapped together or not at all: on a
// persistence error the in-memory state is left untouched.
func (l *Ledger) ReplaceAll(entries []ProductionEntry, payments []Payment) error {
	if entries == nil {
		entries = make([]ProductionEntry, 0)
	}
	if payments == nil {
		payments = make([]Payment, 0)
	}

	entryData, err := EncodeEntries(entries)
	if err != nil {
		return err
	}
	paymentData, err := EncodePayments(payments)
	if err != nil {
		return err
	}
	if err := l.store.Put(entriesKey, entryData); err != nil {
		return fmt.Errorf("cannot persist entries: %w", err)
	}
	if err := l.store.Put(paymentsKey, paymentData); err != nil {
		return fmt.Errorf("cannot persist payments: %w", err)
	}

	l.entries = slices.Clone(entries)
	l.payments = slices.Clone(payments)
	return nil
}

// Entries returns a copy of the entries sequence in store order
// (most recently inserted first).
func (l *Ledger) Entries() []ProductionEntry { return slices.Clone(l.entries) }

// Payments returns a copy of the payments sequence in store order
// (most recently inserted first).
func (l *Ledger) Payments() []Payment { return slices.Clone(l.payments) }

// AllEntries returns an iterator that yields each entry in store order.
func (l *Ledger) AllEntries() iter.Seq2[int, ProductionEntry] {
	return func(yield func(int, ProductionEntry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// AllPayments returns an iterator that yields each payment in store order.
func (l *Ledger) AllPayments() iter.Seq2[int, Payment] {
	return func(yield func(int, Payment) bool) {
		for i, p := range l.payments {
			if !yield(i, p) {
				return
			}
		}
	}
}

func (l *Ledger) persistEntries() error {
	data, err := EncodeEntries(l.entries)
	if err != nil {
		return err
	}
	if err := l.store.Put(entriesKey, data); err != nil {
		return fmt.Errorf("cannot persist entries: %w", err)
	}
	return nil
}

func (l *Ledger) persistPayments() error {
	data, err := EncodePayments(l.payments)
	if err != nil {
		return err
	}
	if err := l.store.Put(paymentsKey, data); err != nil {
		return fmt.Errorf("cannot persist payments: %w", err)
	}
	return nil
}
