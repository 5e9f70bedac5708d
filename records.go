package millbook

import (
	"github.com/google/uuid"
)

// ProductionEntry is one recorded manufacturing event. Entries are immutable
// once created: the derived fields are computed exactly once and never
// recomputed, entries can only be created or deleted.
type ProductionEntry struct {
	ID                string `json:"id"`
	Date              Date   `json:"date"`
	RunningDrum       int    `json:"runningDrum"`
	OpenStockGrams    int    `json:"openStockGrams"`
	ClosingStockGrams int    `json:"closingStockGrams"`
	ProductionCones   int    `json:"productionCones"`
	RatePerKg         Money  `json:"ratePerKg"`
	ProductionWeight  Weight `json:"productionWeight"`
	TotalAmount       Money  `json:"totalAmount"`
	ConsumptionKg     Weight `json:"consumptionKg"`
}

// NewProductionEntry builds an entry from the raw user-supplied fields,
// computing the derived weight, amount and consumption, and assigning a fresh
// opaque id.
func NewProductionEntry(on Date, runningDrum, openStockGrams, closingStockGrams, productionCones int, ratePerKg Money) ProductionEntry {
	weight := ProductionWeight(runningDrum, openStockGrams, closingStockGrams, productionCones)
	return ProductionEntry{
		ID:                newID(),
		Date:              on,
		RunningDrum:       runningDrum,
		OpenStockGrams:    openStockGrams,
		ClosingStockGrams: closingStockGrams,
		ProductionCones:   productionCones,
		RatePerKg:         ratePerKg,
		ProductionWeight:  weight,
		TotalAmount:       AmountFor(weight, ratePerKg),
		ConsumptionKg:     StockConsumption(openStockGrams, closingStockGrams),
	}
}

// Equal reports whether two entries carry the same values, field for field.
// Numeric fields compare by value, not representation.
func (e ProductionEntry) Equal(o ProductionEntry) bool {
	return e.ID == o.ID &&
		e.Date == o.Date &&
		e.RunningDrum == o.RunningDrum &&
		e.OpenStockGrams == o.OpenStockGrams &&
		e.ClosingStockGrams == o.ClosingStockGrams &&
		e.ProductionCones == o.ProductionCones &&
		e.RatePerKg.Equal(o.RatePerKg) &&
		e.ProductionWeight.Equal(o.ProductionWeight) &&
		e.TotalAmount.Equal(o.TotalAmount) &&
		e.ConsumptionKg.Equal(o.ConsumptionKg)
}

// MarshalJSON implements the json.Marshaler interface with a canonical field order.
func (e ProductionEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("runningDrum", e.RunningDrum)
	w.Append("openStockGrams", e.OpenStockGrams)
	w.Append("closingStockGrams", e.ClosingStockGrams)
	w.Append("productionCones", e.ProductionCones)
	w.Append("ratePerKg", e.RatePerKg)
	w.Append("productionWeight", e.ProductionWeight)
	w.Append("totalAmount", e.TotalAmount)
	w.Append("consumptionKg", e.ConsumptionKg)
	return w.MarshalJSON()
}

// Payment is one recorded payment against the accrued balance. Payments are
// not linked to a specific entry, the outstanding balance is a period-level
// aggregate.
type Payment struct {
	ID     string `json:"id"`
	Date   Date   `json:"date"`
	Amount Money  `json:"amount"`
	Note   string `json:"note"`
}

// NewPayment builds a payment with a fresh opaque id. It does not validate the
// amount, the ledger rejects non-positive payments at insertion.
func NewPayment(on Date, amount Money, note string) Payment {
	return Payment{
		ID:     newID(),
		Date:   on,
		Amount: amount,
		Note:   note,
	}
}

// Equal reports whether two payments carry the same values, field for field.
func (p Payment) Equal(o Payment) bool {
	return p.ID == o.ID && p.Date == o.Date && p.Amount.Equal(o.Amount) && p.Note == o.Note
}

// MarshalJSON implements the json.Marshaler interface with a canonical field order.
func (p Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("date", p.Date)
	w.Append("amount", p.Amount)
	w.Append("note", p.Note)
	return w.MarshalJSON()
}

// newID returns a fresh opaque record identifier.
func newID() string { return uuid.NewString() }

// Recent returns the first n records of a sequence, i.e. the n most recently
// inserted ones given the ledger's most-recent-first ordering.
func Recent[T any](records []T, n int) []T {
	if n >= len(records) {
		return records
	}
	return records[:n]
}
