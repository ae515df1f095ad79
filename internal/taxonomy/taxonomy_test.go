package taxonomy

import (
	"sort"
	"strings"
	"testing"
)

func TestDepartments_SortedAndComplete(t *testing.T) {
	names := Departments()
	if len(names) != len(DepartmentDomains) {
		t.Fatalf("expected %d departments, got %d", len(DepartmentDomains), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("department names not sorted: %v", names)
	}
}

func TestDomainsFor_UnknownDepartment(t *testing.T) {
	if DomainsFor("Astrology") != nil {
		t.Fatal("unknown department must yield nil domains")
	}
	if IsKnownDepartment("Astrology") {
		t.Fatal("unknown department must not be known")
	}
}

func TestComputerScienceDoesNotClaimAIDomains(t *testing.T) {
	for _, d := range DomainsFor("Computer Science") {
		if IsAITerm(strings.ToLower(d)) {
			t.Fatalf("Computer Science lists AI-exclusive domain %q", d)
		}
	}
}

func TestIsAITerm(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"machine learning", true},
		{"applied machine learning", true},
		{"ai", true},
		{"ml", true},
		{"email systems", false}, // "ai"/"ml" match by equality only
		{"html", false},
		{"natural language processing (nlp)", true},
		{"computer vision", true},
		{"computer networks", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsAITerm(tc.in); got != tc.want {
			t.Errorf("IsAITerm(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
