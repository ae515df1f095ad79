package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya/internlink/internal/auth"
	"github.com/priya/internlink/internal/models"
)

// testServer builds a server without a database; only handlers that
// reject before touching the store are exercised this way.
func testServer() *Server {
	return NewServer(nil)
}

func TestHealth(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestGetDepartments_ListsTaxonomy(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Computer Science")
	assert.Contains(t, body, "Artificial Intelligence")
	assert.Contains(t, body, "Machine Learning")
}

func TestCreateInternship_RejectsStudents(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/internships", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := s.Echo.NewContext(req, rec)
	c.Set(string(auth.UserIDKey), uuid.New())
	c.Set(string(auth.RoleKey), models.RoleStudent)

	err := s.handleCreateInternship(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateInternship_RejectsUnknownDepartment(t *testing.T) {
	s := testServer()

	body := `{"title":"X","company_name":"Y","departments":["Basket Weaving"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/internships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := s.Echo.NewContext(req, rec)
	c.Set(string(auth.UserIDKey), uuid.New())
	c.Set(string(auth.RoleKey), models.RoleFaculty)

	err := s.handleCreateInternship(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Basket Weaving")
}

func TestCreateInternship_RequiresTitleAndCompany(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/internships", strings.NewReader(`{"title":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := s.Echo.NewContext(req, rec)
	c.Set(string(auth.UserIDKey), uuid.New())
	c.Set(string(auth.RoleKey), models.RoleFaculty)

	err := s.handleCreateInternship(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApply_RejectsFaculty(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/internships/"+uuid.NewString()+"/apply", nil)
	rec := httptest.NewRecorder()
	c := s.Echo.NewContext(req, rec)
	c.Set(string(auth.UserIDKey), uuid.New())
	c.Set(string(auth.RoleKey), models.RoleFaculty)

	err := s.handleApply(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApply_RejectsBadID(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/internships/not-a-uuid/apply", nil)
	rec := httptest.NewRecorder()
	c := s.Echo.NewContext(req, rec)
	c.Set(string(auth.UserIDKey), uuid.New())
	c.Set(string(auth.RoleKey), models.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := s.handleApply(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToListItems_ReplacesDescriptionWithExcerpt(t *testing.T) {
	long := "<p>" + strings.Repeat("a", 400) + "</p>"
	annotated := []models.AnnotatedInternship{
		{Internship: models.Internship{Title: "Long", Description: long}, CanApply: true},
		{Internship: models.Internship{Title: "Short", Description: "<p>brief</p>"}},
	}

	items := toListItems(annotated)
	require.Len(t, items, 2)

	assert.Empty(t, items[0].Description, "cards must not carry the full HTML")
	assert.True(t, strings.HasSuffix(items[0].Excerpt, "..."))
	assert.Len(t, items[0].Excerpt, excerptLen)
	assert.True(t, items[0].CanApply, "annotations must survive the card mapping")

	assert.Equal(t, "brief", items[1].Excerpt)
	assert.Empty(t, items[1].Description)
}

func TestOptionalAuth_RejectsBadToken(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/internships", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
