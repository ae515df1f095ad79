package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/priya/internlink/internal/auth"
	"github.com/priya/internlink/internal/db"
)

type Server struct {
	Store       *db.Store
	AuthService *auth.Service
	Echo        *echo.Echo
	DB          *pgxpool.Pool

	// now is the clock every expiry comparison uses; tests swap it out.
	now func() time.Time
}

func NewServer(pool *pgxpool.Pool) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	s := &Server{
		DB:          pool,
		Store:       db.NewStore(pool),
		AuthService: auth.NewService(pool),
		Echo:        e,
		now:         time.Now,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")

	// Auth Routes
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Public reference data and stats
	api.GET("/departments", s.handleGetDepartments)
	api.GET("/stats", s.handleGetStats)

	// Listing and detail personalize when a token is present but work
	// for anonymous visitors too.
	api.GET("/internships", s.handleListInternships, auth.OptionalMiddleware)
	api.GET("/internships/:id", s.handleGetInternship, auth.OptionalMiddleware)

	// Protected Routes
	protected := api.Group("", auth.Middleware)
	protected.POST("/internships", s.handleCreateInternship)
	protected.DELETE("/internships/:id", s.handleDeleteInternship)
	protected.GET("/internships/mine", s.handleListMyInternships)
	protected.POST("/internships/:id/apply", s.handleApply)
	protected.GET("/applications", s.handleListMyApplications)
	protected.GET("/internships/:id/applications", s.handleListInternshipApplications)
	protected.GET("/notifications", s.handleGetNotifications)
	protected.GET("/me", s.handleGetMe)
	protected.PATCH("/me", s.handleUpdateMe)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleSignup(c echo.Context) error {
	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Signup(c.Request().Context(), req)
	if err != nil {
		switch err {
		case auth.ErrUserExists:
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case auth.ErrInvalidRole:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		if err == auth.ErrInvalidCreds {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
