package rules

import (
	"strconv"
	"strings"

	"github.com/priya/internlink/internal/models"
)

// cgpaToPercent converts a 10-point CGPA to the percentage scale used
// when a posting gates on minimum percentage.
const cgpaToPercent = 9.5

// parseScore parses an academic number stored as free text. Profiles
// predate any input validation, so values like "8.2 ", "" or "NA" all
// occur in the wild.
func parseScore(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsEligible reports whether a student clears an internship's
// eligibility criteria. A nil profile (faculty or anonymous viewer) or
// nil criteria means no gate at all — open access is the deliberate
// default, not an oversight.
//
// The percentage variant requires 10th, 12th and CGPA×9.5 to each clear
// the threshold, and a value that fails to parse fails the gate. The
// default CGPA variant only rejects a CGPA that parses and falls below
// the minimum.
func IsEligible(profile *models.StudentProfile, crit *models.EligibilityCriteria) bool {
	if profile == nil || crit == nil {
		return true
	}

	if len(crit.AllowedYears) > 0 && profile.CurrentYear != "" {
		allowed := false
		for _, year := range crit.AllowedYears {
			if year == profile.CurrentYear {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	if crit.Type == models.EligibilityTypePercentage {
		if crit.MinPercentage == nil {
			return true
		}
		tenth, okTenth := parseScore(profile.TenthPercentage)
		twelfth, okTwelfth := parseScore(profile.TwelfthPercentage)
		cgpa, okCGPA := parseScore(profile.CGPA)
		if !okTenth || !okTwelfth || !okCGPA {
			return false
		}
		min := *crit.MinPercentage
		if tenth < min || twelfth < min || cgpa*cgpaToPercent < min {
			return false
		}
		return true
	}

	if crit.MinCGPA != nil {
		if cgpa, ok := parseScore(profile.CGPA); ok && cgpa < *crit.MinCGPA {
			return false
		}
	}
	return true
}
