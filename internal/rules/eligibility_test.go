package rules

import (
	"testing"

	"github.com/priya/internlink/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestIsEligible_OpenByDefault(t *testing.T) {
	if !IsEligible(nil, &models.EligibilityCriteria{MinCGPA: f64(9.9)}) {
		t.Fatal("nil profile must always be eligible")
	}
	if !IsEligible(&models.StudentProfile{CGPA: "5.0"}, nil) {
		t.Fatal("nil criteria must always pass")
	}
}

func TestIsEligible_CGPAVariant(t *testing.T) {
	crit := &models.EligibilityCriteria{Type: models.EligibilityTypeCGPA, MinCGPA: f64(7.5)}

	cases := []struct {
		name string
		cgpa string
		want bool
	}{
		{"above threshold", "8.2", true},
		{"exactly at threshold", "7.5", true},
		{"below threshold", "7.49", false},
		{"whitespace tolerated", " 8.0 ", true},
		{"empty passes", "", true},
		{"unparseable passes", "NA", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &models.StudentProfile{CGPA: tc.cgpa}
			if got := IsEligible(profile, crit); got != tc.want {
				t.Fatalf("IsEligible(cgpa=%q) = %v, want %v", tc.cgpa, got, tc.want)
			}
		})
	}
}

func TestIsEligible_PercentageVariantRequiresAllThree(t *testing.T) {
	crit := &models.EligibilityCriteria{Type: models.EligibilityTypePercentage, MinPercentage: f64(60)}

	cases := []struct {
		name    string
		tenth   string
		twelfth string
		cgpa    string
		want    bool
	}{
		{"all clear", "75", "70", "6.5", true}, // 6.5*9.5 = 61.75
		{"tenth below", "59", "70", "8.0", false},
		{"twelfth below", "75", "59.9", "8.0", false},
		{"converted cgpa below", "75", "70", "6.0", false}, // 6.0*9.5 = 57
		{"unparseable tenth fails", "abc", "70", "8.0", false},
		{"missing twelfth fails", "75", "", "8.0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &models.StudentProfile{
				TenthPercentage:   tc.tenth,
				TwelfthPercentage: tc.twelfth,
				CGPA:              tc.cgpa,
			}
			if got := IsEligible(profile, crit); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsEligible_PercentageVariantWithoutThreshold(t *testing.T) {
	crit := &models.EligibilityCriteria{Type: models.EligibilityTypePercentage}
	profile := &models.StudentProfile{TenthPercentage: "junk"}
	if !IsEligible(profile, crit) {
		t.Fatal("percentage criteria without a minimum gates nothing")
	}
}

func TestIsEligible_AllowedYears(t *testing.T) {
	crit := &models.EligibilityCriteria{AllowedYears: []string{"3", "4"}}

	if IsEligible(&models.StudentProfile{CurrentYear: "2"}, crit) {
		t.Fatal("second-year student must not pass a 3rd/4th-year gate")
	}
	if !IsEligible(&models.StudentProfile{CurrentYear: "3"}, crit) {
		t.Fatal("third-year student must pass")
	}
	// Unknown year means the gate cannot be evaluated and stays open.
	if !IsEligible(&models.StudentProfile{}, crit) {
		t.Fatal("profile without a current year must pass")
	}
}
