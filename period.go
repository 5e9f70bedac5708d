package millbook

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// PeriodKey selects a subset of records by calendar month. It is either the
// literal "all" or a YYYY-MM string.
type PeriodKey string

// AllPeriods selects every record regardless of date.
const AllPeriods PeriodKey = "all"

// ThisMonth returns the period key of the current calendar month.
func ThisMonth() PeriodKey { return PeriodKey(Today().MonthKey()) }

// ParsePeriodKey parses and validates a period key.
func ParsePeriodKey(s string) (PeriodKey, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == string(AllPeriods) {
		return AllPeriods, nil
	}
	if _, err := time.Parse(MonthKeyFormat, s); err != nil {
		return "", fmt.Errorf("invalid period %q, want %q or a YYYY-MM month: %w", s, AllPeriods, err)
	}
	return PeriodKey(s), nil
}

// Contains reports whether a date falls inside the period.
func (k PeriodKey) Contains(d Date) bool {
	return k == AllPeriods || d.MonthKey() == string(k)
}

func (k PeriodKey) String() string { return string(k) }

// FilterEntries returns the subsequence of entries whose date falls inside the
// period, preserving the input order. The "all" key returns the input unchanged.
func FilterEntries(entries []ProductionEntry, key PeriodKey) []ProductionEntry {
	if key == AllPeriods {
		return entries
	}
	filtered := make([]ProductionEntry, 0, len(entries))
	for _, e := range entries {
		if key.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FilterPayments returns the subsequence of payments whose date falls inside
// the period, preserving the input order. The "all" key returns the input unchanged.
func FilterPayments(payments []Payment, key PeriodKey) []Payment {
	if key == AllPeriods {
		return payments
	}
	filtered := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if key.Contains(p.Date) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AvailablePeriods derives the set of distinct month keys across both
// sequences, plus the current month, deduplicated and sorted most recent
// first.
func AvailablePeriods(entries []ProductionEntry, payments []Payment) []PeriodKey {
	visited := map[string]struct{}{Today().MonthKey(): {}}
	for _, e := range entries {
		visited[e.Date.MonthKey()] = struct{}{}
	}
	for _, p := range payments {
		visited[p.Date.MonthKey()] = struct{}{}
	}

	keys := make([]PeriodKey, 0, len(visited))
	for k := range visited {
		keys = append(keys, PeriodKey(k))
	}
	// YYYY-MM keys sort lexicographically, reversed for most recent first.
	slices.SortFunc(keys, func(a, b PeriodKey) int {
		return strings.Compare(string(b), string(a))
	})
	return keys
}
