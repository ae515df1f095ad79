// Package profile evaluates whether a user record carries everything
// its role requires, and turns the deficiencies into the notification
// text the dropdown shows.
package profile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/priya/internlink/internal/models"
)

type requiredField struct {
	label string
	value func(models.User) string
}

// studentFields is the fixed, ordered list of fields the student
// profile form marks as required. Order matters: the missing-fields
// report and its tests rely on it.
var studentFields = []requiredField{
	{"First Name", func(u models.User) string { return u.FirstName }},
	{"Last Name", func(u models.User) string { return u.LastName }},
	{"Email", func(u models.User) string { return u.Email }},
	{"Phone Number", func(u models.User) string { return u.PhoneNumber }},
	{"Department", func(u models.User) string { return u.Department }},
	{"Current Year", func(u models.User) string { return u.CurrentYear }},
	{"10th Percentage", func(u models.User) string { return u.TenthPercentage }},
	{"12th Percentage", func(u models.User) string { return u.TwelfthPercentage }},
	{"CGPA", func(u models.User) string { return u.CGPA }},
	{"Passing Year", func(u models.User) string { return u.PassingYear }},
	{"Previous Projects", func(u models.User) string { return u.PreviousProjects }},
	{"GitHub Profile Link", func(u models.User) string { return u.GithubLink }},
	{"LinkedIn Profile Link", func(u models.User) string { return u.LinkedinLink }},
	{"CoCubes Score", func(u models.User) string { return u.CocubesScore }},
	{"LeetCode Profile Link", func(u models.User) string { return u.LeetcodeLink }},
	{"CodeChef Profile Link", func(u models.User) string { return u.CodechefLink }},
}

var facultyFields = []requiredField{
	{"First Name", func(u models.User) string { return u.FirstName }},
	{"Last Name", func(u models.User) string { return u.LastName }},
	{"Department", func(u models.User) string { return u.Department }},
	{"Designation", func(u models.User) string { return u.Designation }},
	{"Specialization", func(u models.User) string { return u.Specialization }},
	{"Years of Experience", func(u models.User) string { return u.Experience }},
	{"Qualifications", func(u models.User) string { return u.Qualifications }},
	{"Contact Email", func(u models.User) string { return u.ContactEmail }},
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// CompletionReport lists what a profile still needs before it counts as
// complete.
type CompletionReport struct {
	IsComplete    bool     `json:"is_complete"`
	MissingFields []string `json:"missing_fields"`
}

// CheckCompletion evaluates a user record against the required-field
// list for its role. A field is missing when empty or whitespace-only.
// For students, a present but malformed phone number adds a distinct
// "invalid format" entry on top of the presence check.
func CheckCompletion(u models.User, role models.Role) CompletionReport {
	fields := studentFields
	if role == models.RoleFaculty {
		fields = facultyFields
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value(u)) == "" {
			missing = append(missing, f.label)
		}
	}

	if role == models.RoleStudent && u.PhoneNumber != "" && !phonePattern.MatchString(u.PhoneNumber) {
		// A whitespace-only phone number already produced the presence
		// label; don't stack the format label on top of it.
		if !contains(missing, "Phone Number") {
			missing = append(missing, "Valid Phone Number (10 digits)")
		}
	}

	return CompletionReport{
		IsComplete:    len(missing) == 0,
		MissingFields: missing,
	}
}

// NotificationMessage renders the dropdown text for an incomplete
// profile. Faculty get a fixed reminder; students get the missing
// fields enumerated when there are few, a count otherwise. A complete
// profile produces no message.
func NotificationMessage(missingFields []string, role models.Role) string {
	if len(missingFields) == 0 {
		return ""
	}

	if role == models.RoleFaculty {
		return "Your profile is incomplete. Please complete it."
	}

	base := "Your profile is not complete. Please complete it to find better opportunities and connect with other people."
	if len(missingFields) <= 3 {
		return fmt.Sprintf("%s Missing: %s.", base, strings.Join(missingFields, ", "))
	}
	return fmt.Sprintf("%s You have %d fields to complete.", base, len(missingFields))
}
