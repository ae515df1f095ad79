package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/priya/internlink/internal/auth"
	"github.com/priya/internlink/internal/db"
	"github.com/priya/internlink/internal/models"
	"github.com/priya/internlink/internal/rules"
)

// handleApply enforces the full application gate server-side: role,
// deadline, department compatibility and the eligibility criteria are
// all re-checked here, whatever the listing page claimed.
func (s *Server) handleApply(c echo.Context) error {
	if auth.GetRoleFromContext(c) != models.RoleStudent {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Only students can apply"})
	}
	studentID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship id"})
	}

	ctx := c.Request().Context()

	in, err := s.Store.GetInternship(ctx, id)
	if err == db.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
	}
	if err != nil {
		c.Logger().Errorf("get internship: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load internship"})
	}

	if rules.IsExpired(in.FirstRoundDate, s.now().UTC()) {
		return c.JSON(http.StatusGone, map[string]string{"error": "The application deadline has passed"})
	}

	u, err := s.Store.GetUserByID(ctx, studentID)
	if err != nil {
		c.Logger().Errorf("get user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}
	profile := u.Profile()

	department := ""
	if profile != nil {
		department = profile.Department
	}
	if !rules.DepartmentCompatible(in, department) {
		msg := "This internship is not open to your department"
		if department != "" {
			msg = "This internship is not open to the " + department + " department"
		}
		return c.JSON(http.StatusForbidden, map[string]string{"error": msg})
	}

	if !rules.IsEligible(profile, in.Eligibility) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You do not meet the eligibility criteria for this internship"})
	}

	app, err := s.Store.CreateApplication(ctx, id, studentID)
	if err == db.ErrAlreadyApplied {
		return c.JSON(http.StatusConflict, map[string]string{"error": "You have already applied to this internship"})
	}
	if err != nil {
		c.Logger().Errorf("create application: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to apply"})
	}
	return c.JSON(http.StatusCreated, app)
}

func (s *Server) handleListMyApplications(c echo.Context) error {
	if auth.GetRoleFromContext(c) != models.RoleStudent {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Students only"})
	}
	studentID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	apps, err := s.Store.ListApplicationsByStudent(c.Request().Context(), studentID)
	if err != nil {
		c.Logger().Errorf("list applications: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list applications"})
	}
	return c.JSON(http.StatusOK, apps)
}

// handleListInternshipApplications shows a posting's applicants to the
// faculty member who owns it.
func (s *Server) handleListInternshipApplications(c echo.Context) error {
	if auth.GetRoleFromContext(c) != models.RoleFaculty {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Faculty only"})
	}
	facultyID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid internship id"})
	}

	in, err := s.Store.GetInternship(c.Request().Context(), id)
	if err == db.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Internship not found"})
	}
	if err != nil {
		c.Logger().Errorf("get internship: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load internship"})
	}
	if in.FacultyID != facultyID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You can only view applicants for your own postings"})
	}

	apps, err := s.Store.ListApplicationsByInternship(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("list applicants: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list applicants"})
	}
	return c.JSON(http.StatusOK, apps)
}
