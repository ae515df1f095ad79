package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priya/internlink/internal/auth"
	"github.com/priya/internlink/internal/db"
	"github.com/priya/internlink/internal/models"
	"github.com/priya/internlink/internal/profile"
	"github.com/priya/internlink/internal/taxonomy"
)

func (s *Server) handleGetMe(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	u, err := s.Store.GetUserByID(c.Request().Context(), userID)
	if err == db.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}
	if err != nil {
		c.Logger().Errorf("get user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	report := profile.CheckCompletion(u, u.Role)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":       u,
		"completion": report,
	})
}

type updateProfileRequest struct {
	FirstName         string                 `json:"first_name"`
	LastName          string                 `json:"last_name"`
	PhoneNumber       string                 `json:"phone_number"`
	Department        string                 `json:"department"`
	CurrentYear       string                 `json:"current_year"`
	PassingYear       string                 `json:"passing_year"`
	CGPA              string                 `json:"cgpa"`
	TenthPercentage   string                 `json:"tenth_percentage"`
	TwelfthPercentage string                 `json:"twelfth_percentage"`
	CocubesScore      string                 `json:"cocubes_score"`
	PreviousProjects  string                 `json:"previous_projects"`
	GithubLink        string                 `json:"github_link"`
	LinkedinLink      string                 `json:"linkedin_link"`
	LeetcodeLink      string                 `json:"leetcode_link"`
	CodechefLink      string                 `json:"codechef_link"`
	InterestedDomains models.FlexibleStrings `json:"interested_domains"`
	Designation       string                 `json:"designation"`
	Specialization    string                 `json:"specialization"`
	Experience        string                 `json:"experience"`
	Qualifications    string                 `json:"qualifications"`
	ContactEmail      string                 `json:"contact_email"`
}

// handleUpdateMe replaces the caller's editable profile fields wholesale.
// Academic numbers are stored as submitted; validation happens at
// eligibility-evaluation time, where a bad value can only cost the
// student an application, never a save.
func (s *Server) handleUpdateMe(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Department != "" && !taxonomy.IsKnownDepartment(req.Department) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown department: " + req.Department})
	}

	u, err := s.Store.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("get user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.PhoneNumber = req.PhoneNumber
	u.Department = req.Department
	u.CurrentYear = req.CurrentYear
	u.PassingYear = req.PassingYear
	u.CGPA = req.CGPA
	u.TenthPercentage = req.TenthPercentage
	u.TwelfthPercentage = req.TwelfthPercentage
	u.CocubesScore = req.CocubesScore
	u.PreviousProjects = req.PreviousProjects
	u.GithubLink = req.GithubLink
	u.LinkedinLink = req.LinkedinLink
	u.LeetcodeLink = req.LeetcodeLink
	u.CodechefLink = req.CodechefLink
	u.InterestedDomains = req.InterestedDomains
	u.Designation = req.Designation
	u.Specialization = req.Specialization
	u.Experience = req.Experience
	u.Qualifications = req.Qualifications
	u.ContactEmail = req.ContactEmail

	if err := s.Store.UpdateUserProfile(c.Request().Context(), u); err != nil {
		c.Logger().Errorf("update profile: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update profile"})
	}

	report := profile.CheckCompletion(u, u.Role)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":       u,
		"completion": report,
	})
}

type notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// handleGetNotifications currently carries one notification kind: the
// profile-completion nudge. An empty list means nothing to show.
func (s *Server) handleGetNotifications(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	u, err := s.Store.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("get user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	notifications := []notification{}
	report := profile.CheckCompletion(u, u.Role)
	if msg := profile.NotificationMessage(report.MissingFields, u.Role); msg != "" {
		notifications = append(notifications, notification{Type: "profile_incomplete", Message: msg})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"notifications":  notifications,
		"missing_fields": report.MissingFields,
	})
}
