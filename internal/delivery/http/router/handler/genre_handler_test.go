package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidly/internal/delivery/http/middleware"
	"vidly/internal/delivery/http/validator"
	domainerrors "vidly/internal/domain/errors"
	mockUsecase "vidly/internal/mocks/usecase"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an Echo instance with the same validator and error
// handling the real server uses, so the recorded status codes match
// production behavior.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func TestGenreHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.GET("/api/genres", NewGenreHandler(uc).List)

	uc.EXPECT().
		List(mock.Anything).
		Return([]*usecase.GenreOutput{
			{ID: uuid.New(), Name: "Action"},
			{ID: uuid.New(), Name: "Comedy"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Action")
	assert.Contains(t, rec.Body.String(), "Comedy")
}

func TestGenreHandler_Get_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.GET("/api/genres/:id", NewGenreHandler(uc).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/genres/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "GENRE_NOT_FOUND")
}

func TestGenreHandler_Get_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.GET("/api/genres/:id", NewGenreHandler(uc).Get)

	genreID := uuid.New()
	uc.EXPECT().
		Get(mock.Anything, genreID).
		Return(nil, errors.Wrap(domainerrors.ErrGenreNotFound, "genre not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/genres/"+genreID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenreHandler_Create_Success(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.POST("/api/genres", NewGenreHandler(uc).Create)

	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.GenreInput")).
		Return(&usecase.GenreOutput{ID: uuid.New(), Name: "Thriller"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/genres", strings.NewReader(`{"name":"Thriller"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thriller")
}

func TestGenreHandler_Create_NameTooShort(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.POST("/api/genres", NewGenreHandler(uc).Create)

	req := httptest.NewRequest(http.MethodPost, "/api/genres", strings.NewReader(`{"name":"ab"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestGenreHandler_Delete_ReturnsDeletedGenre(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.DELETE("/api/genres/:id", NewGenreHandler(uc).Delete)

	genreID := uuid.New()
	uc.EXPECT().
		Delete(mock.Anything, genreID).
		Return(&usecase.GenreOutput{ID: genreID, Name: "Horror"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/genres/"+genreID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Horror")
}

func TestGenreHandler_Delete_Conflict(t *testing.T) {
	uc := mockUsecase.NewMockGenreUsecase(t)
	e := newTestEcho()
	e.DELETE("/api/genres/:id", NewGenreHandler(uc).Delete)

	genreID := uuid.New()
	uc.EXPECT().
		Delete(mock.Anything, genreID).
		Return(nil, errors.Wrap(domainerrors.ErrDeleteConflict, "failed to delete genre"))

	req := httptest.NewRequest(http.MethodDelete, "/api/genres/"+genreID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "DELETE_CONFLICT")
}
