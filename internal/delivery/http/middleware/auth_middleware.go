// Package middleware contains the HTTP middlewares of the application.
package middleware

import (
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderXAuthToken is the header clients present their token in.
const HeaderXAuthToken = "x-auth-token"

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUserID  = "userID"
	KeyIsAdmin = "isAdmin"
)

// AuthMiddleware provides middleware for token authentication and
// authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the token from the x-auth-token header. A missing
// token is reported as unauthorized, a present but bad token as a client
// error, so the two cases are distinguishable.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get(HeaderXAuthToken)
		if tokenString == "" {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyIsAdmin, claims.IsAdmin)

		return next(c)
	}
}

// RequireAdmin rejects authenticated callers whose token does not carry the
// admin flag. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, ok := c.Get(KeyIsAdmin).(bool)
		if !ok || !isAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
