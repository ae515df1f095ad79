// Package rules implements the eligibility and department-matching
// engine behind the internship listing. Everything here is a pure
// function of its inputs: the handlers materialize internships, the
// viewer's profile and a ViewingContext, and the rules decide what is
// visible, who may apply, and why not.
package rules

import (
	"strings"

	"github.com/priya/internlink/internal/models"
	"github.com/priya/internlink/internal/taxonomy"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchesDepartment decides whether a free-text internship domain
// belongs to a department. Rules fire in order, first decision wins:
//
//  1. exact equality against the department's canonical domains
//  2. AI/ML terms belong to the Artificial Intelligence department
//     exclusively — this both grants AI matches and vetoes accidental
//     substring hits against other departments
//  3. bidirectional substring containment against the canonical domains
//
// An empty domain string matches nothing, and an unknown department has
// no canonical domains to match against.
func MatchesDepartment(domain, department string) bool {
	d := normalize(domain)
	if d == "" {
		return false
	}

	canonical := taxonomy.DomainsFor(department)
	for _, entry := range canonical {
		if d == normalize(entry) {
			return true
		}
	}

	if taxonomy.IsAITerm(d) {
		return department == taxonomy.DeptArtificialIntelligence
	}

	for _, entry := range canonical {
		e := normalize(entry)
		if strings.Contains(d, e) || strings.Contains(e, d) {
			return true
		}
	}

	return false
}

// DepartmentCompatible decides whether a student from the given
// department is an intended audience for the internship. An explicit
// departments list on the posting always wins; domain inference is the
// fallback for older records that never set one. No declared domains at
// all means the posting is open to everyone.
func DepartmentCompatible(in models.Internship, department string) bool {
	if department == "" {
		return true
	}

	if len(in.Departments) > 0 {
		for _, dept := range in.Departments {
			if dept == department {
				return true
			}
		}
		return false
	}

	if len(in.Domains) == 0 {
		return true
	}

	for _, domain := range in.Domains {
		if MatchesDepartment(domain, department) {
			return true
		}
	}
	return false
}

// InferDepartments maps an internship's free-text domains to the set of
// departments it plausibly targets, for display on the detail page when
// the posting never declared explicit departments. AI terms route to
// the Artificial Intelligence department only.
func InferDepartments(domains []string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(dept string) {
		if _, ok := seen[dept]; ok {
			return
		}
		seen[dept] = struct{}{}
		out = append(out, dept)
	}

	for _, domain := range domains {
		d := normalize(domain)
		if d == "" {
			continue
		}
		if taxonomy.IsAITerm(d) {
			add(taxonomy.DeptArtificialIntelligence)
			continue
		}
		for _, dept := range taxonomy.Departments() {
			if dept == taxonomy.DeptArtificialIntelligence {
				continue
			}
			for _, entry := range taxonomy.DomainsFor(dept) {
				e := normalize(entry)
				if d == e || strings.Contains(d, e) || strings.Contains(e, d) {
					add(dept)
					break
				}
			}
		}
	}
	return out
}
