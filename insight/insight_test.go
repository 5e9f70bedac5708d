package insight

import (
	"strings"
	"testing"

	"github.com/etnz/millbook"
)

func TestBuildPrompt(t *testing.T) {
	e := millbook.NewProductionEntry(millbook.MustParseDate("2026-08-15"), 5, 200, 100, 10, millbook.M(150))

	prompt, err := buildPrompt([]millbook.ProductionEntry{e})
	if err != nil {
		t.Fatalf("buildPrompt() returned an unexpected error: %v", err)
	}
	if !strings.HasPrefix(prompt, instruction) {
		t.Error("prompt does not start with the analysis instruction")
	}
	if !strings.Contains(prompt, `"date":"2026-08-15"`) {
		t.Errorf("prompt does not carry the entries payload:\n%s", prompt)
	}
}

func TestBuildPromptEmpty(t *testing.T) {
	prompt, err := buildPrompt(nil)
	if err != nil {
		t.Fatalf("buildPrompt(nil) returned an unexpected error: %v", err)
	}
	if !strings.HasSuffix(prompt, "[]") {
		t.Errorf("empty entries must serialize as an empty array:\n%s", prompt)
	}
}
