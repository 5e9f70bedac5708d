package millbook

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeEntries serializes a sequence of entries to a canonical JSON array,
// preserving the sequence order.
func EncodeEntries(entries []ProductionEntry) ([]byte, error) {
	if entries == nil {
		entries = []ProductionEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("cannot encode production entries: %w", err)
	}
	return data, nil
}

// DecodeEntries parses a JSON array of entries, preserving order.
func DecodeEntries(data []byte) ([]ProductionEntry, error) {
	var entries []ProductionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("cannot decode production entries: %w", err)
	}
	return entries, nil
}

// EncodePayments serializes a sequence of payments to a canonical JSON array,
// preserving the sequence order.
func EncodePayments(payments []Payment) ([]byte, error) {
	if payments == nil {
		payments = []Payment{}
	}
	data, err := json.Marshal(payments)
	if err != nil {
		return nil, fmt.Errorf("cannot encode payments: %w", err)
	}
	return data, nil
}

// DecodePayments parses a JSON array of payments, preserving order.
func DecodePayments(data []byte) ([]Payment, error) {
	var payments []Payment
	if err := json.Unmarshal(data, &payments); err != nil {
		return nil, fmt.Errorf("cannot decode payments: %w", err)
	}
	return payments, nil
}
