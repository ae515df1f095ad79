package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleAnonymous Role = "anonymous"
)

// User covers both students and faculty; the role discriminates which
// field groups are meaningful. Academic numbers are kept as the raw
// strings the profile form stored — the rules package owns parsing them,
// and a malformed value must degrade to "ineligible", not to a crash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number"`
	Department   string    `json:"department"`

	// Student academics and links
	CurrentYear       string   `json:"current_year"`
	PassingYear       string   `json:"passing_year"`
	CGPA              string   `json:"cgpa"`
	TenthPercentage   string   `json:"tenth_percentage"`
	TwelfthPercentage string   `json:"twelfth_percentage"`
	CocubesScore      string   `json:"cocubes_score"`
	PreviousProjects  string   `json:"previous_projects"`
	GithubLink        string   `json:"github_link"`
	LinkedinLink      string   `json:"linkedin_link"`
	LeetcodeLink      string   `json:"leetcode_link"`
	CodechefLink      string   `json:"codechef_link"`
	InterestedDomains []string `json:"interested_domains"`

	// Faculty fields
	Designation    string `json:"designation"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Qualifications string `json:"qualifications"`
	ContactEmail   string `json:"contact_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentProfile is the projection of a User the eligibility and
// matching rules actually read.
type StudentProfile struct {
	Department        string   `json:"department"`
	CGPA              string   `json:"cgpa"`
	TenthPercentage   string   `json:"tenth_percentage"`
	TwelfthPercentage string   `json:"twelfth_percentage"`
	CurrentYear       string   `json:"current_year"`
	InterestedDomains []string `json:"interested_domains"`
}

// Profile extracts the rules-facing projection. Returns nil for a nil
// user or a non-student, which the rules treat as "no gating".
func (u *User) Profile() *StudentProfile {
	if u == nil || u.Role != RoleStudent {
		return nil
	}
	return &StudentProfile{
		Department:        u.Department,
		CGPA:              u.CGPA,
		TenthPercentage:   u.TenthPercentage,
		TwelfthPercentage: u.TwelfthPercentage,
		CurrentYear:       u.CurrentYear,
		InterestedDomains: u.InterestedDomains,
	}
}
