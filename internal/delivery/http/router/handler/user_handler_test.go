package handler

import (
	"net/http"
	"testing"

	"vidly/internal/delivery/http/middleware"
	domainerrors "vidly/internal/domain/errors"
	mockUsecase "vidly/internal/mocks/usecase"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Register_SetsTokenHeader(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/api/users", NewUserHandler(uc).Register)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Return(&usecase.RegisterOutput{
			User: &usecase.UserOutput{
				ID:    uuid.New(),
				Name:  "John Smith",
				Email: "john@example.com",
			},
			Token: "signed-token",
		}, nil)

	rec := postJSON(e, "/api/users",
		`{"name":"John Smith","email":"john@example.com","password":"sekret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "signed-token", rec.Header().Get(middleware.HeaderXAuthToken))
	assert.Contains(t, rec.Body.String(), "john@example.com")
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.NotContains(t, rec.Body.String(), "sekret")
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/api/users", NewUserHandler(uc).Register)

	rec := postJSON(e, "/api/users",
		`{"name":"John Smith","email":"john@example.com","password":"1234"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/api/users", NewUserHandler(uc).Register)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered"))

	rec := postJSON(e, "/api/users",
		`{"name":"John Smith","email":"john@example.com","password":"sekret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/api/auth", NewAuthHandler(uc).Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password"))

	rec := postJSON(e, "/api/auth", `{"email":"john@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/api/auth", NewAuthHandler(uc).Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Token: "signed-token"}, nil)

	rec := postJSON(e, "/api/auth", `{"email":"john@example.com","password":"sekret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}
