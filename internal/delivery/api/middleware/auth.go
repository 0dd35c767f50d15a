package middleware

import (
	"strings"

	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keySubject = "auth_subject"
	keyRole    = "auth_role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(keySubject, claims.Subject)
		c.Set(keyRole, claims.Role)

		return next(c)
	}
}

// RequireRole rejects callers whose token was issued for another role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if role != required {
				return domainerrors.ErrForbidden.WithDetails("requires the " + required.String() + " role")
			}

			return next(c)
		}
	}
}

// GetSubject returns the authenticated account id.
func GetSubject(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keySubject).(uuid.UUID)

	return id, ok
}

// GetRole returns the authenticated account role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(keyRole).(entity.Role)

	return role, ok
}
