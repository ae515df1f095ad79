package models

import (
	"time"

	"github.com/google/uuid"
)

// EligibilityTypeCGPA and EligibilityTypePercentage are the two criteria
// variants a faculty member can attach to a posting. CGPA is the default
// when a stored record carries no type at all.
const (
	EligibilityTypeCGPA       = "cgpa"
	EligibilityTypePercentage = "percentage"
)

// EligibilityCriteria is the optional gate attached to an internship.
// Pointer fields distinguish "not set" from zero, which matters: a
// missing threshold leaves the gate open.
type EligibilityCriteria struct {
	Type          string   `json:"type,omitempty"`
	MinCGPA       *float64 `json:"min_cgpa,omitempty"`
	MinPercentage *float64 `json:"min_percentage,omitempty"`
	AllowedYears  []string `json:"allowed_years,omitempty"`
	Note          string   `json:"note,omitempty"`
}

type Internship struct {
	ID               uuid.UUID            `json:"id"`
	Title            string               `json:"title"`
	CompanyName      string               `json:"company_name"`
	Description      string               `json:"description"` // Sanitized HTML
	Domains          []string             `json:"domains"`
	Departments      []string             `json:"departments"`
	FirstRoundDate   *time.Time           `json:"first_round_date"` // Application deadline; nil = never expires
	TestDate         *time.Time           `json:"test_date"`
	StartDate        *time.Time           `json:"start_date"`
	PostedDate       time.Time            `json:"posted_date"`
	Stipend          int                  `json:"stipend"`
	DurationMonths   int                  `json:"duration_months"`
	Location         string               `json:"location"`
	Responsibilities []string             `json:"responsibilities"`
	Skills           []string             `json:"skills"`
	Eligibility      *EligibilityCriteria `json:"eligibility_criteria,omitempty"`
	FacultyID        uuid.UUID            `json:"faculty_id"`
	FacultyName      string               `json:"faculty_name"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// AnnotatedInternship is what the listing endpoint actually returns: the
// record plus the per-viewer verdicts computed by the rules package.
type AnnotatedInternship struct {
	Internship
	CanApply           bool `json:"can_apply"`
	DepartmentMismatch bool `json:"department_mismatch"`
	IsExpired          bool `json:"is_expired"`
	HasMatchingDomains bool `json:"has_matching_domains"`
}

type Application struct {
	ID           uuid.UUID `json:"id"`
	InternshipID uuid.UUID `json:"internship_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	Status       string    `json:"status"` // pending, accepted, rejected
	AppliedAt    time.Time `json:"applied_at"`
}
