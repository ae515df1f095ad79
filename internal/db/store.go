package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priya/internlink/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyApplied = errors.New("already applied")
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// internshipCols is the column list shared by every internship query.
// faculty_name is denormalized at read time from the posting user.
const internshipCols = `i.id, i.title, i.company_name, i.description_html, i.domains, i.departments,
	i.first_round_date, i.test_date, i.start_date, i.posted_date,
	i.stipend, i.duration_months, i.location, i.responsibilities, i.skills,
	i.eligibility, i.faculty_id,
	COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), 'Faculty'),
	i.created_at, i.updated_at`

func scanInternship(scan func(dest ...interface{}) error) (models.Internship, error) {
	var in models.Internship
	var eligibilityRaw []byte

	err := scan(
		&in.ID, &in.Title, &in.CompanyName, &in.Description, &in.Domains, &in.Departments,
		&in.FirstRoundDate, &in.TestDate, &in.StartDate, &in.PostedDate,
		&in.Stipend, &in.DurationMonths, &in.Location, &in.Responsibilities, &in.Skills,
		&eligibilityRaw, &in.FacultyID,
		&in.FacultyName,
		&in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return in, err
	}

	// Old records stored domains as a single string or not at all; the
	// rules core always gets a non-nil slice of non-blank entries.
	in.Domains = cleanList(in.Domains)
	in.Departments = cleanList(in.Departments)

	if len(eligibilityRaw) > 0 {
		var crit models.EligibilityCriteria
		if jsonErr := json.Unmarshal(eligibilityRaw, &crit); jsonErr == nil {
			in.Eligibility = &crit
		}
	}

	return in, nil
}

// cleanList trims entries, drops blanks, and guarantees a non-nil slice.
func cleanList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ListInternships returns every internship ordered by posting date,
// newest first. Business-rule filtering happens in memory downstream;
// the query only handles existence and ordering.
func (s *Store) ListInternships(ctx context.Context) ([]models.Internship, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM internships i
		JOIN users u ON u.id = i.faculty_id
		ORDER BY i.posted_date DESC
	`, internshipCols))
	if err != nil {
		return nil, fmt.Errorf("list internships failed: %w", err)
	}
	defer rows.Close()

	return collectInternships(rows)
}

func (s *Store) ListInternshipsByFaculty(ctx context.Context, facultyID uuid.UUID) ([]models.Internship, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM internships i
		JOIN users u ON u.id = i.faculty_id
		WHERE i.faculty_id = $1
		ORDER BY i.posted_date DESC
	`, internshipCols), facultyID)
	if err != nil {
		return nil, fmt.Errorf("list faculty internships failed: %w", err)
	}
	defer rows.Close()

	return collectInternships(rows)
}

func collectInternships(rows pgx.Rows) ([]models.Internship, error) {
	internships := []models.Internship{}
	for rows.Next() {
		in, err := scanInternship(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan internship failed: %w", err)
		}
		internships = append(internships, in)
	}
	return internships, rows.Err()
}

func (s *Store) GetInternship(ctx context.Context, id uuid.UUID) (models.Internship, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM internships i
		JOIN users u ON u.id = i.faculty_id
		WHERE i.id = $1
	`, internshipCols), id)

	in, err := scanInternship(row.Scan)
	if err == pgx.ErrNoRows {
		return in, ErrNotFound
	}
	if err != nil {
		return in, fmt.Errorf("get internship failed: %w", err)
	}
	return in, nil
}

func (s *Store) CreateInternship(ctx context.Context, in models.Internship) (models.Internship, error) {
	var eligibilityRaw []byte
	if in.Eligibility != nil {
		raw, err := json.Marshal(in.Eligibility)
		if err != nil {
			return in, fmt.Errorf("encode eligibility failed: %w", err)
		}
		eligibilityRaw = raw
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO internships (
			title, company_name, description_html, domains, departments,
			first_round_date, test_date, start_date,
			stipend, duration_months, location, responsibilities, skills,
			eligibility, faculty_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, posted_date, created_at, updated_at
	`,
		in.Title, in.CompanyName, in.Description, cleanList(in.Domains), cleanList(in.Departments),
		in.FirstRoundDate, in.TestDate, in.StartDate,
		in.Stipend, in.DurationMonths, in.Location, cleanList(in.Responsibilities), cleanList(in.Skills),
		eligibilityRaw, in.FacultyID,
	).Scan(&in.ID, &in.PostedDate, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return in, fmt.Errorf("insert internship failed: %w", err)
	}
	return in, nil
}

// DeleteInternship removes a posting, but only for the faculty member
// who created it.
func (s *Store) DeleteInternship(ctx context.Context, id, facultyID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM internships WHERE id = $1 AND faculty_id = $2
	`, id, facultyID)
	if err != nil {
		return fmt.Errorf("delete internship failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Applications

// AppliedInternshipIDs returns the set of internships the student has
// already applied to, shaped for ViewingContext lookups.
func (s *Store) AppliedInternshipIDs(ctx context.Context, studentID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT internship_id FROM applications WHERE student_id = $1
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list applied ids failed: %w", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan applied id failed: %w", err)
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (s *Store) CreateApplication(ctx context.Context, internshipID, studentID uuid.UUID) (models.Application, error) {
	app := models.Application{
		InternshipID: internshipID,
		StudentID:    studentID,
		Status:       "pending",
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO applications (internship_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, internship_id) DO NOTHING
		RETURNING id, status, applied_at
	`, internshipID, studentID).Scan(&app.ID, &app.Status, &app.AppliedAt)
	if err == pgx.ErrNoRows {
		return app, ErrAlreadyApplied
	}
	if err != nil {
		return app, fmt.Errorf("insert application failed: %w", err)
	}
	return app, nil
}

func (s *Store) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.internship_id, a.student_id,
		       TRIM(u.first_name || ' ' || u.last_name), u.email,
		       a.status, a.applied_at
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list student applications failed: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (s *Store) ListApplicationsByInternship(ctx context.Context, internshipID uuid.UUID) ([]models.Application, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.internship_id, a.student_id,
		       TRIM(u.first_name || ' ' || u.last_name), u.email,
		       a.status, a.applied_at
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.internship_id = $1
		ORDER BY a.applied_at ASC
	`, internshipID)
	if err != nil {
		return nil, fmt.Errorf("list internship applications failed: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]models.Application, error) {
	apps := []models.Application{}
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.InternshipID, &a.StudentID, &a.StudentName, &a.StudentEmail, &a.Status, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan application failed: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Users

const userCols = `id, email, password_hash, role, first_name, last_name, phone_number, department,
	current_year, passing_year, cgpa, tenth_percentage, twelfth_percentage,
	cocubes_score, previous_projects, github_link, linkedin_link, leetcode_link, codechef_link,
	interested_domains, designation, specialization, experience, qualifications, contact_email,
	created_at, updated_at`

func scanUser(scan func(dest ...interface{}) error) (models.User, error) {
	var u models.User
	err := scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.Department,
		&u.CurrentYear, &u.PassingYear, &u.CGPA, &u.TenthPercentage, &u.TwelfthPercentage,
		&u.CocubesScore, &u.PreviousProjects, &u.GithubLink, &u.LinkedinLink, &u.LeetcodeLink, &u.CodechefLink,
		&u.InterestedDomains, &u.Designation, &u.Specialization, &u.Experience, &u.Qualifications, &u.ContactEmail,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return u, err
	}
	u.InterestedDomains = cleanList(u.InterestedDomains)
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userCols), id)
	u, err := scanUser(row.Scan)
	if err == pgx.ErrNoRows {
		return u, ErrNotFound
	}
	if err != nil {
		return u, fmt.Errorf("get user failed: %w", err)
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM users ORDER BY created_at", userCols))
	if err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) UpdateUserProfile(ctx context.Context, u models.User) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET
			first_name = $2, last_name = $3, phone_number = $4, department = $5,
			current_year = $6, passing_year = $7, cgpa = $8,
			tenth_percentage = $9, twelfth_percentage = $10, cocubes_score = $11,
			previous_projects = $12, github_link = $13, linkedin_link = $14,
			leetcode_link = $15, codechef_link = $16, interested_domains = $17,
			designation = $18, specialization = $19, experience = $20,
			qualifications = $21, contact_email = $22,
			updated_at = NOW()
		WHERE id = $1
	`,
		u.ID, u.FirstName, u.LastName, u.PhoneNumber, u.Department,
		u.CurrentYear, u.PassingYear, u.CGPA,
		u.TenthPercentage, u.TwelfthPercentage, u.CocubesScore,
		u.PreviousProjects, u.GithubLink, u.LinkedinLink,
		u.LeetcodeLink, u.CodechefLink, cleanList(u.InterestedDomains),
		u.Designation, u.Specialization, u.Experience,
		u.Qualifications, u.ContactEmail,
	)
	if err != nil {
		return fmt.Errorf("update profile failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats

type Stats struct {
	TotalInternships   int `json:"total_internships"`
	ActiveInternships  int `json:"active_internships"`
	ExpiredInternships int `json:"expired_internships"`
	TotalApplications  int `json:"total_applications"`
}

// GetStats reports internship totals with the active/expired split the
// listing header renders. The expiry boundary matches the rules core:
// a first_round_date at or before now is expired.
func (s *Store) GetStats(ctx context.Context, now time.Time) (Stats, error) {
	var st Stats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE first_round_date IS NULL OR first_round_date > $1),
			COUNT(*) FILTER (WHERE first_round_date IS NOT NULL AND first_round_date <= $1),
			(SELECT COUNT(*) FROM applications)
		FROM internships
	`, now).Scan(&st.TotalInternships, &st.ActiveInternships, &st.ExpiredInternships, &st.TotalApplications)
	if err != nil {
		return st, fmt.Errorf("stats query failed: %w", err)
	}
	return st, nil
}
