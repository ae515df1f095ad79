package rules

import (
	"reflect"
	"testing"

	"github.com/priya/internlink/internal/models"
	"github.com/priya/internlink/internal/taxonomy"
)

func TestMatchesDepartment_ExactCanonicalMatch(t *testing.T) {
	if !MatchesDepartment("Data Science", "Computer Science") {
		t.Fatal("expected Data Science to match Computer Science")
	}
	if !MatchesDepartment("  data science  ", "Computer Science") {
		t.Fatal("expected match to ignore case and surrounding whitespace")
	}
}

func TestMatchesDepartment_AITermsAreExclusive(t *testing.T) {
	cases := []struct {
		domain     string
		department string
		want       bool
	}{
		{"Machine Learning", taxonomy.DeptArtificialIntelligence, true},
		{"Machine Learning", "Computer Science", false},
		{"Deep Learning for Genomics", taxonomy.DeptArtificialIntelligence, true},
		{"Deep Learning for Genomics", "Computer Science", false},
		{"AI", taxonomy.DeptArtificialIntelligence, true},
		{"ai", "Information Technology", false},
		{"NLP", taxonomy.DeptArtificialIntelligence, true},
	}
	for _, tc := range cases {
		if got := MatchesDepartment(tc.domain, tc.department); got != tc.want {
			t.Errorf("MatchesDepartment(%q, %q) = %v, want %v", tc.domain, tc.department, got, tc.want)
		}
	}
}

func TestMatchesDepartment_SubstringFallbackIsBidirectional(t *testing.T) {
	// domain contains a canonical entry
	if !MatchesDepartment("Advanced Cybersecurity", "Computer Science") {
		t.Fatal("expected superstring of a canonical domain to match")
	}
	// a canonical entry contains the domain
	if !MatchesDepartment("Web", "Information Technology") {
		t.Fatal("expected substring of a canonical domain to match")
	}
}

func TestMatchesDepartment_EmptyAndUnknown(t *testing.T) {
	if MatchesDepartment("", "Computer Science") {
		t.Fatal("empty domain must not match anything")
	}
	if MatchesDepartment("   ", "Computer Science") {
		t.Fatal("blank domain must not match anything")
	}
	if MatchesDepartment("Software Development", "Department of Magic") {
		t.Fatal("unknown department has no canonical domains to match")
	}
}

func TestDepartmentCompatible_ExplicitDepartmentsWin(t *testing.T) {
	in := models.Internship{
		Domains:     []string{"Web Development"},
		Departments: []string{"Mechanical Engineering"},
	}
	// The domains would match IT, but the explicit list overrides.
	if DepartmentCompatible(in, "Information Technology") {
		t.Fatal("explicit departments list must override domain inference")
	}
	if !DepartmentCompatible(in, "Mechanical Engineering") {
		t.Fatal("expected listed department to be compatible")
	}
}

func TestDepartmentCompatible_OpenWhenNothingDeclared(t *testing.T) {
	in := models.Internship{}
	if !DepartmentCompatible(in, "Civil Engineering") {
		t.Fatal("posting with no domains and no departments is open to everyone")
	}
}

func TestDepartmentCompatible_NoViewerDepartment(t *testing.T) {
	in := models.Internship{Departments: []string{"Computer Science"}}
	if !DepartmentCompatible(in, "") {
		t.Fatal("viewer without a department is never excluded")
	}
}

func TestDepartmentCompatible_DomainInferenceFallback(t *testing.T) {
	in := models.Internship{Domains: []string{"Structural Engineering"}}
	if !DepartmentCompatible(in, "Civil Engineering") {
		t.Fatal("expected domain inference to admit Civil Engineering")
	}
	if DepartmentCompatible(in, "Information Technology") {
		t.Fatal("expected domain inference to exclude Information Technology")
	}
}

func TestInferDepartments_AIRoutesExclusively(t *testing.T) {
	got := InferDepartments([]string{"Machine Learning", "Computer Vision"})
	want := []string{taxonomy.DeptArtificialIntelligence}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestInferDepartments_SkipsBlanksAndDeduplicates(t *testing.T) {
	got := InferDepartments([]string{"", "  ", "Web Development", "Mobile App Development"})
	want := []string{"Information Technology"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
