package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/priya/internlink/internal/auth"
	"github.com/priya/internlink/internal/content"
	"github.com/priya/internlink/internal/db"
	"github.com/priya/internlink/internal/models"
	"github.com/priya/internlink/internal/rules"
	"github.com/priya/internlink/internal/taxonomy"
)

// viewer bundles everything the filter pipeline needs about the caller.
// Anonymous requests yield a zero viewer with a nil profile.
type viewer struct {
	userID  uuid.UUID
	role    models.Role
	user    *models.User
	profile *models.StudentProfile
	applied map[uuid.UUID]struct{}
}

func (s *Server) loadViewer(c echo.Context) (viewer, error) {
	v := viewer{role: models.RoleAnonymous}

	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return v, nil
	}
	v.userID = userID
	v.role = auth.GetRoleFromContext(c)

	u, err := s.Store.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return v, err
	}
	v.user = &u
	v.profile = u.Profile()

	if v.role == models.RoleStudent {
		applied, err := s.Store.AppliedInternshipIDs(c.Request().Context(), userID)
		if err != nil {
			return v, err
		}
		v.applied = applied
	}
	return v, nil
}

// excerptLen is the rune budget for a card's description excerpt.
const excerptLen = 280

// listItem is the card shape the listing returns: the annotated record
// with the description replaced by a plain-text excerpt. The full HTML
// is only served by the detail endpoint.
type listItem struct {
	models.AnnotatedInternship
	Excerpt string `json:"excerpt"`
}

type listResponse struct {
	Internships  []listItem `json:"internships"`
	ActiveCount  int        `json:"active_count"`
	ExpiredCount int        `json:"expired_count"`
	ShowAll      bool       `json:"show_all"`
	Department   string     `json:"department,omitempty"`
}

func toListItems(annotated []models.AnnotatedInternship) []listItem {
	items := make([]listItem, 0, len(annotated))
	for _, a := range annotated {
		item := listItem{
			AnnotatedInternship: a,
			Excerpt:             content.Excerpt(a.Description, excerptLen),
		}
		item.Description = ""
		items = append(items, item)
	}
	return items
}

// handleListInternships is the main listing endpoint. The store returns
// everything; which records the caller actually sees is decided by the
// in-memory filter pipeline from their role, department, toggles and
// search term.
func (s *Server) handleListInternships(c echo.Context) error {
	v, err := s.loadViewer(c)
	if err != nil {
		c.Logger().Errorf("load viewer: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	internships, err := s.Store.ListInternships(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list internships: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list internships"})
	}

	vc := models.ViewingContext{
		Role:                 v.role,
		ShowAll:              c.QueryParam("show_all") == "true",
		ShowExpired:          c.QueryParam("show_expired") == "true",
		SearchTerm:           c.QueryParam("q"),
		AppliedInternshipIDs: v.applied,
	}
	// Viewers without a department have no scoped view to fall back to.
	if v.profile == nil || v.profile.Department == "" {
		vc.ShowAll = true
	}

	now := s.now().UTC()
	annotated := rules.FilterAndAnnotate(internships, vc, v.profile, now)

	resp := listResponse{
		Internships: toListItems(annotated),
		ShowAll:     vc.ShowAll,
	}
	if v.profile != nil {
		resp.Department = v.profile.Department
	}
	for _, a := range annotated {
		if a.IsExpired {
			resp.ExpiredCount++
		} else {
			resp.ActiveCount++
		}
	}
	return c.JSON(http.StatusOK, resp)
}

type detailResponse struct {
	models.Internship
	IsExpired          bool                `json:"is_expired"`
	Eligible           bool                `json:"eligible"`
	DepartmentMismatch bool                `json:"department_mismatch"`
	HasApplied         bool                `json:"has_applied"`
	CanApply           bool                `json:"can_apply"`
	TargetDepartments  []string            `json:"target_departments"`
	MoreForYou         []models.Internship `json:"more_for_you"`
}

func (s *Server) handleGetInternship(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship id"})
	}

	v, err := s.loadViewer(c)
	if err != nil {
		c.Logger().Errorf("load viewer: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	in, err := s.Store.GetInternship(c.Request().Context(), id)
	if err == db.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
	}
	if err != nil {
		c.Logger().Errorf("get internship: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load internship"})
	}

	now := s.now().UTC()
	expired := rules.IsExpired(in.FirstRoundDate, now)

	// Students have no business on an expired posting's detail page
	// unless they already applied to it.
	_, hasApplied := v.applied[in.ID]
	if expired && v.role == models.RoleStudent && !hasApplied {
		return c.JSON(http.StatusGone, map[string]string{"error": "This internship has expired"})
	}

	department := ""
	if v.profile != nil {
		department = v.profile.Department
	}
	compatible := rules.DepartmentCompatible(in, department)
	eligible := rules.IsEligible(v.profile, in.Eligibility)

	targets := in.Departments
	if len(targets) == 0 {
		targets = rules.InferDepartments(in.Domains)
	}

	resp := detailResponse{
		Internship:         in,
		IsExpired:          expired,
		Eligible:           eligible,
		DepartmentMismatch: !compatible,
		HasApplied:         hasApplied,
		CanApply:           v.role == models.RoleStudent && compatible && eligible && !expired && !hasApplied,
		TargetDepartments:  targets,
		MoreForYou:         s.moreForYou(c, in, department, v.applied, now),
	}
	return c.JSON(http.StatusOK, resp)
}

// moreForYou picks up to three other active, unapplied internships
// compatible with the viewer's department. Best effort; lookup failures
// just yield an empty list.
func (s *Server) moreForYou(c echo.Context, current models.Internship, department string, applied map[uuid.UUID]struct{}, now time.Time) []models.Internship {
	all, err := s.Store.ListInternships(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("more-for-you lookup: %v", err)
		return []models.Internship{}
	}

	out := []models.Internship{}
	for _, in := range all {
		if in.ID == current.ID {
			continue
		}
		if rules.IsExpired(in.FirstRoundDate, now) {
			continue
		}
		if _, ok := applied[in.ID]; ok {
			continue
		}
		if !rules.DepartmentCompatible(in, department) {
			continue
		}
		out = append(out, in)
		if len(out) == 3 {
			break
		}
	}
	return out
}

type createInternshipRequest struct {
	Title            string                      `json:"title"`
	CompanyName      string                      `json:"company_name"`
	Description      string                      `json:"description"`
	Domains          models.FlexibleStrings      `json:"domains"`
	Departments      models.FlexibleStrings      `json:"departments"`
	FirstRoundDate   *time.Time                  `json:"first_round_date"`
	TestDate         *time.Time                  `json:"test_date"`
	StartDate        *time.Time                  `json:"start_date"`
	Stipend          int                         `json:"stipend"`
	DurationMonths   int                         `json:"duration_months"`
	Location         string                      `json:"location"`
	Responsibilities models.FlexibleStrings      `json:"responsibilities"`
	Skills           models.FlexibleStrings      `json:"skills"`
	Eligibility      *models.EligibilityCriteria `json:"eligibility_criteria"`
}

func (s *Server) handleCreateInternship(c echo.Context) error {
	if auth.GetRoleFromContext(c) != models.RoleFaculty {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Only faculty can post internships"})
	}
	facultyID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req createInternshipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Title == "" || req.CompanyName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and company name are required"})
	}
	for _, d := range req.Departments {
		if !taxonomy.IsKnownDepartment(d) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown department: " + d})
		}
	}

	in := models.Internship{
		Title:            req.Title,
		CompanyName:      req.CompanyName,
		Description:      content.SanitizeHTML(req.Description),
		Domains:          req.Domains,
		Departments:      req.Departments,
		FirstRoundDate:   req.FirstRoundDate,
		TestDate:         req.TestDate,
		StartDate:        req.StartDate,
		Stipend:          req.Stipend,
		DurationMonths:   req.DurationMonths,
		Location:         req.Location,
		Responsibilities: req.Responsibilities,
		Skills:           req.Skills,
		Eligibility:      req.Eligibility,
		FacultyID:        facultyID,
	}

	created, err := s.Store.CreateInternship(c.Request().Context(), in)
	if err != nil {
		c.Logger().Errorf("create internship: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create internship"})
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleDeleteInternship(c echo.Context) error {
	if auth.GetRoleFromContext(c) != models.RoleFaculty {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Only faculty can delete internships"})
	}
	facultyID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship id"})
	}

	if err := s.Store.DeleteInternship(c.Request().Context(), id, facultyID); err != nil {
		if err == db.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
		}
		c.Logger().Errorf("delete internship: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete internship"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListMyInternships(c echo.Context) error {
	if auth.GetRoleFromContext(c) != models.RoleFaculty {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Faculty only"})
	}
	facultyID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	internships, err := s.Store.ListInternshipsByFaculty(c.Request().Context(), facultyID)
	if err != nil {
		c.Logger().Errorf("list faculty internships: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list internships"})
	}
	return c.JSON(http.StatusOK, internships)
}

func (s *Server) handleGetDepartments(c echo.Context) error {
	type dept struct {
		Name    string   `json:"name"`
		Domains []string `json:"domains"`
	}
	out := []dept{}
	for _, name := range taxonomy.Departments() {
		out = append(out, dept{Name: name, Domains: taxonomy.DomainsFor(name)})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetStats(c echo.Context) error {
	stats, err := s.Store.GetStats(c.Request().Context(), s.now().UTC())
	if err != nil {
		c.Logger().Errorf("stats: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load stats"})
	}
	return c.JSON(http.StatusOK, stats)
}
