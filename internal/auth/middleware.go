package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/priya/internlink/internal/models"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "user_role"
)

// Middleware validates the JWT token and adds the user ID and role to
// the context. Requests without a valid token are rejected.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, role, err := identityFromRequest(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		c.Set(string(UserIDKey), userID)
		c.Set(string(RoleKey), role)
		return next(c)
	}
}

// OptionalMiddleware attaches the viewer's identity when a valid token
// is present but lets anonymous requests through untouched. The listing
// endpoint uses this: the same route serves logged-in students,
// faculty, and visitors.
func OptionalMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		userID, role, err := identityFromRequest(c)
		if err != nil {
			// A token was presented but is bad; reject rather than
			// silently downgrading to anonymous.
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		c.Set(string(UserIDKey), userID)
		c.Set(string(RoleKey), role)
		return next(c)
	}
}

func identityFromRequest(c echo.Context) (uuid.UUID, models.Role, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, models.RoleAnonymous, errors.New("missing Authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, models.RoleAnonymous, errors.New("invalid Authorization header format")
	}

	secretKey, err := jwtSecretFromEnv()
	if err != nil {
		return uuid.Nil, models.RoleAnonymous, errors.New("server auth configuration error")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, models.RoleAnonymous, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, models.RoleAnonymous, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, models.RoleAnonymous, errors.New("invalid token subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, models.RoleAnonymous, errors.New("invalid user ID in token")
	}

	role := models.RoleAnonymous
	if raw, ok := claims["role"].(string); ok {
		switch models.Role(raw) {
		case models.RoleStudent:
			role = models.RoleStudent
		case models.RoleFaculty:
			role = models.RoleFaculty
		}
	}

	return userID, role, nil
}

// GetUserIDFromContext retrieves the authenticated user ID.
func GetUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	val := c.Get(string(UserIDKey))
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return id, nil
}

// GetRoleFromContext retrieves the authenticated role, or RoleAnonymous
// when the request carried no identity.
func GetRoleFromContext(c echo.Context) models.Role {
	if role, ok := c.Get(string(RoleKey)).(models.Role); ok {
		return role
	}
	return models.RoleAnonymous
}
