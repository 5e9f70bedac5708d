package millbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input string
		want  Date
	}{
		{"2026-08-15", NewDate(2026, time.August, 15)},
		{"2026-8-5", NewDate(2026, time.August, 5)},
		{" 2026-08-15 ", NewDate(2026, time.August, 15)},
		{"0d", Today()},
		{"-1d", Today().Add(-1)},
		{"+2w", Today().Add(14)},
	}

	for _, tc := range testCases {
		got, err := ParseDate(tc.input)
		if err != nil {
			t.Errorf("ParseDate(%q) returned an unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "15/08/2026", "2026-08", "yesterday", "1d"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) accepted an invalid date", input)
		}
	}
}

func TestDateMonthKey(t *testing.T) {
	if got := NewDate(2026, time.August, 1).MonthKey(); got != "2026-08" {
		t.Errorf("MonthKey() = %q, want %q", got, "2026-08")
	}
	if got := NewDate(2026, time.January, 31).MonthKey(); got != "2026-01" {
		t.Errorf("MonthKey() = %q, want %q", got, "2026-01")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned an unexpected error: %v", err)
	}
	if string(data) != `"2026-08-15"` {
		t.Errorf("Marshal = %s, want %q", data, `"2026-08-15"`)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal returned an unexpected error: %v", err)
	}
	if got != d {
		t.Errorf("round-tripped to %v, want %v", got, d)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2026, time.July, 31)
	b := NewDate(2026, time.August, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %v vs %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: %v vs %v", a, b)
	}
}

func TestDateAddNormalizes(t *testing.T) {
	if got := NewDate(2026, time.August, 31).Add(1); got != NewDate(2026, time.September, 1) {
		t.Errorf("Add(1) = %v, want 2026-09-01", got)
	}
}
