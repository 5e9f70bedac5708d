package millbook

// SummaryStats aggregates a filtered (entries, payments) pair. It is derived
// on demand and never persisted.
type SummaryStats struct {
	Entries        int
	Payments       int
	TotalWeight    Weight // sum of production weights
	TotalValue     Money  // sum of entry amounts
	NetConsumption Weight // sum of stock consumptions, may be negative
	TotalPaid      Money  // sum of payment amounts
	Outstanding    Money  // TotalValue - TotalPaid, negative means overpaid
}

// Summarize reduces a filtered subset into summary statistics. Plain sums
// only: no rounding is applied beyond what each addend already carries, so the
// result is independent of the input order.
func Summarize(entries []ProductionEntry, payments []Payment) SummaryStats {
	var s SummaryStats
	s.Entries = len(entries)
	s.Payments = len(payments)
	for _, e := range entries {
		s.TotalWeight = s.TotalWeight.Add(e.ProductionWeight)
		s.TotalValue = s.TotalValue.Add(e.TotalAmount)
		s.NetConsumption = s.NetConsumption.Add(e.ConsumptionKg)
	}
	for _, p := range payments {
		s.TotalPaid = s.TotalPaid.Add(p.Amount)
	}
	s.Outstanding = s.TotalValue.Sub(s.TotalPaid)
	return s
}
