package millbook

// R is a helper for tests to create a money amount from a const.
func R(v float64) Money { return M(v) }

// Kg is a helper for tests to create a weight from a const.
func Kg(v float64) Weight { return W(v) }

// testEntry builds an entry with derived fields computed, on a fixed date.
func testEntry(date string, drum, open, closing, cones int, rate float64) ProductionEntry {
	return NewProductionEntry(MustParseDate(date), drum, open, closing, cones, R(rate))
}

// testLedger builds a loaded ledger over a fresh in-memory store.
func testLedger() *Ledger {
	l := NewLedger(NewMemoryStore())
	if err := l.Load(); err != nil {
		panic(err)
	}
	return l
}
