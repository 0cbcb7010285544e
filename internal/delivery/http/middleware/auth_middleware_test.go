package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/service"
	mockService "vidly/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, token string) (echo.Context, *mockService.MockTokenService) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/genres", nil)
	if token != "" {
		req.Header.Set(HeaderXAuthToken, token)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), mockService.NewMockTokenService(t)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	mw := NewAuthMiddleware(tokenSvc)

	next := func(c echo.Context) error { return nil }

	err := mw.Authenticate(next)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "garbage")
	mw := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		Validate("garbage").
		Return(nil, errors.New("token is malformed"))

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := mw.Authenticate(next)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "valid-token")
	mw := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		Validate("valid-token").
		Return(&service.Claims{UserID: userID, IsAdmin: true}, nil)

	next := func(c echo.Context) error { return nil }

	err := mw.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, userID, c.Get(KeyUserID))
	assert.Equal(t, true, c.Get(KeyIsAdmin))
}

func TestAuthMiddleware_RequireAdmin_Forbidden(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	mw := NewAuthMiddleware(tokenSvc)

	c.Set(KeyIsAdmin, false)

	next := func(c echo.Context) error { return nil }

	err := mw.RequireAdmin(next)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_Admin(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	mw := NewAuthMiddleware(tokenSvc)

	c.Set(KeyIsAdmin, true)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := mw.RequireAdmin(next)(c)
	require.NoError(t, err)
	assert.True(t, nextCalled)
}
