package rules

import (
	"strings"
	"time"

	"github.com/priya/internlink/internal/models"
)

// IsExpired reports whether an application deadline has passed. A nil
// deadline never expires; a deadline exactly equal to now already has.
func IsExpired(firstRoundDate *time.Time, now time.Time) bool {
	return firstRoundDate != nil && !firstRoundDate.After(now)
}

// FilterAndAnnotate runs the full visibility pipeline over a list of
// internships for one viewer and returns the surviving records, each
// annotated with the per-viewer verdicts. The input order is preserved;
// sorting is the caller's concern. The clock is a parameter so expiry
// checks stay testable.
//
// Exclusion rules, short-circuiting in order:
//
//  1. already applied (department-scoped view only)
//  2. deadline passed, unless ShowExpired
//  3. search term matches neither title, company nor any domain
//  4. in the department-scoped view, the posting's explicit departments
//     must name the student's department
//
// Show-all mode stops after the search check: department and
// eligibility state no longer exclude, they only annotate.
func FilterAndAnnotate(internships []models.Internship, vc models.ViewingContext, profile *models.StudentProfile, now time.Time) []models.AnnotatedInternship {
	term := normalize(vc.SearchTerm)

	department := ""
	if profile != nil {
		department = profile.Department
	}

	out := make([]models.AnnotatedInternship, 0, len(internships))
	for _, in := range internships {
		if !vc.ShowAll && vc.HasApplied(in.ID) {
			continue
		}

		expired := IsExpired(in.FirstRoundDate, now)
		if expired && !vc.ShowExpired {
			continue
		}

		if term != "" && !matchesSearch(in, term) {
			continue
		}

		if !vc.ShowAll && department != "" && !listsDepartment(in.Departments, department) {
			// Postings without an explicit departments list only
			// surface under show-all.
			continue
		}

		compatible := DepartmentCompatible(in, department)

		ann := models.AnnotatedInternship{
			Internship:         in,
			IsExpired:          expired,
			DepartmentMismatch: !compatible,
			HasMatchingDomains: hasMatchingDomains(profile, in.Domains),
		}
		if vc.ShowAll {
			ann.CanApply = compatible && !expired && IsEligible(profile, in.Eligibility)
		} else {
			// The scoped view pre-filters by department, so whatever
			// survived is applicable by construction.
			ann.CanApply = true
		}

		out = append(out, ann)
	}
	return out
}

func listsDepartment(departments []string, department string) bool {
	for _, d := range departments {
		if d == department {
			return true
		}
	}
	return false
}

func matchesSearch(in models.Internship, term string) bool {
	if strings.Contains(strings.ToLower(in.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(in.CompanyName), term) {
		return true
	}
	for _, domain := range in.Domains {
		if strings.Contains(strings.ToLower(domain), term) {
			return true
		}
	}
	return false
}

// hasMatchingDomains reports whether any of the viewer's declared
// interests fuzzily overlaps any internship domain. Informational only;
// it never gates visibility or application.
func hasMatchingDomains(profile *models.StudentProfile, domains []string) bool {
	if profile == nil || len(profile.InterestedDomains) == 0 || len(domains) == 0 {
		return false
	}
	for _, interest := range profile.InterestedDomains {
		i := normalize(interest)
		if i == "" {
			continue
		}
		for _, domain := range domains {
			d := normalize(domain)
			if d == "" {
				continue
			}
			if strings.Contains(d, i) || strings.Contains(i, d) {
				return true
			}
		}
	}
	return false
}
