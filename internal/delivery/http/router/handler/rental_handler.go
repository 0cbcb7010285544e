package handler

import (
	"net/http"

	"vidly/internal/delivery/http/response"
	"vidly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RentalHandler holds dependencies for rental-related handlers.
type RentalHandler struct {
	uc usecase.RentalUsecase
}

// NewRentalHandler is the constructor for RentalHandler, injected by Fx.
func NewRentalHandler(uc usecase.RentalUsecase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// List handles listing all rentals, most recent checkout first.
func (h *RentalHandler) List(c echo.Context) error {
	outputs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Create handles checking a movie out to a customer.
func (h *RentalHandler) Create(c echo.Context) error {
	var input *usecase.RentalInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rental input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Rental created successfully")
}
