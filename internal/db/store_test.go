package db

import (
	"strings"
	"testing"
)

func TestCleanList_NormalizesStoredDomains(t *testing.T) {
	got := cleanList([]string{" VLSI Design ", "", "   ", "Embedded Systems"})

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
	if got[0] != "VLSI Design" || got[1] != "Embedded Systems" {
		t.Fatalf("unexpected entries: %v", got)
	}
}

func TestCleanList_NilBecomesEmptyNonNil(t *testing.T) {
	got := cleanList(nil)
	if got == nil {
		t.Fatal("expected non-nil slice for nil input")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestInternshipCols_CarriesRuleInputs(t *testing.T) {
	// Every field the rules core reads must survive the query; a column
	// dropped here only shows up as a zero value at runtime.
	mustContain := []string{
		"i.domains",
		"i.departments",
		"i.first_round_date",
		"i.eligibility",
		"i.posted_date",
	}

	for _, token := range mustContain {
		if !strings.Contains(internshipCols, token) {
			t.Fatalf("internship column list missing %q: %s", token, internshipCols)
		}
	}
}
