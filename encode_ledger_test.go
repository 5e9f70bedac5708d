package millbook

import (
	"strings"
	"testing"
)

func TestEncodeEntriesCanonical(t *testing.T) {
	e := testEntry("2026-08-15", 5, 200, 100, 10, 150)
	e.ID = "fixed-id"

	data, err := EncodeEntries([]ProductionEntry{e})
	if err != nil {
		t.Fatalf("EncodeEntries() returned an unexpected error: %v", err)
	}

	want := `[{"id":"fixed-id","date":"2026-08-15","runningDrum":5,"openStockGrams":200,"closingStockGrams":100,"productionCones":10,"ratePerKg":150,"productionWeight":14.5,"totalAmount":2175,"consumptionKg":0.1}]`
	if string(data) != want {
		t.Errorf("EncodeEntries() =\n%s\nwant\n%s", data, want)
	}
}

func TestEncodeEntriesNil(t *testing.T) {
	data, err := EncodeEntries(nil)
	if err != nil {
		t.Fatalf("EncodeEntries(nil) returned an unexpected error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("EncodeEntries(nil) = %s, want []", data)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	entries := []ProductionEntry{
		testEntry("2026-08-15", 5, 200, 100, 10, 150),
		testEntry("2026-08-14", 3, 333, 77, 7, 151.75),
	}

	data, err := EncodeEntries(entries)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeEntries(data)
	if err != nil {
		t.Fatalf("DecodeEntries() returned an unexpected error: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("decoded %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if !got[i].Equal(entries[i]) {
			t.Errorf("entry %d round-tripped to %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestPaymentsRoundTrip(t *testing.T) {
	payments := []Payment{
		NewPayment(MustParseDate("2026-08-16"), R(2000), "August advance"),
		NewPayment(MustParseDate("2026-08-01"), R(500.25), ""),
	}

	data, err := EncodePayments(payments)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodePayments(data)
	if err != nil {
		t.Fatalf("DecodePayments() returned an unexpected error: %v", err)
	}
	if len(got) != len(payments) {
		t.Fatalf("decoded %d payments, want %d", len(got), len(payments))
	}
	for i := range payments {
		if !got[i].Equal(payments[i]) {
			t.Errorf("payment %d round-tripped to %+v, want %+v", i, got[i], payments[i])
		}
	}
}

func TestDecodeEntriesCorrupt(t *testing.T) {
	for _, corrupt := range []string{"not json", `{"entries":[]}`, `[{"date":42}]`} {
		if _, err := DecodeEntries([]byte(corrupt)); err == nil {
			t.Errorf("DecodeEntries(%q) accepted corrupt input", corrupt)
		}
	}
	if _, err := DecodePayments([]byte(strings.Repeat("{", 3))); err == nil {
		t.Error("DecodePayments() accepted corrupt input")
	}
}
