package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "vidly/internal/domain/errors"
	mockUsecase "vidly/internal/mocks/usecase"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestReturnHandler_Create_Success(t *testing.T) {
	uc := mockUsecase.NewMockRentalUsecase(t)
	e := newTestEcho()
	e.POST("/api/returns", NewReturnHandler(uc).Create)

	customerID := uuid.New()
	movieID := uuid.New()
	returned := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	fee := 14.0

	uc.EXPECT().
		ProcessReturn(mock.Anything, &usecase.RentalInput{
			CustomerID: customerID.String(),
			MovieID:    movieID.String(),
		}).
		Return(&usecase.RentalOutput{
			ID:           uuid.New(),
			DateOut:      returned.AddDate(0, 0, -7),
			DateReturned: &returned,
			RentalFee:    &fee,
		}, nil)

	rec := postJSON(e, "/api/returns",
		`{"customerId":"`+customerID.String()+`","movieId":"`+movieID.String()+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rentalFee":14`)
}

func TestReturnHandler_Create_MissingMovieID(t *testing.T) {
	uc := mockUsecase.NewMockRentalUsecase(t)
	e := newTestEcho()
	e.POST("/api/returns", NewReturnHandler(uc).Create)

	rec := postJSON(e, "/api/returns", `{"customerId":"`+uuid.New().String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReturnHandler_Create_AlreadyProcessed(t *testing.T) {
	uc := mockUsecase.NewMockRentalUsecase(t)
	e := newTestEcho()
	e.POST("/api/returns", NewReturnHandler(uc).Create)

	customerID := uuid.New()
	movieID := uuid.New()

	uc.EXPECT().
		ProcessReturn(mock.Anything, mock.AnythingOfType("*usecase.RentalInput")).
		Return(nil, errors.Wrap(domainerrors.ErrReturnAlreadyProcessed, "return already processed"))

	rec := postJSON(e, "/api/returns",
		`{"customerId":"`+customerID.String()+`","movieId":"`+movieID.String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RETURN_ALREADY_PROCESSED")
}
