package handler

import (
	"net/http"

	"vidly/internal/delivery/http/response"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List handles listing all customers.
func (h *CustomerHandler) List(c echo.Context) error {
	outputs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Get handles fetching a single customer.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles creating a customer.
func (h *CustomerHandler) Create(c echo.Context) error {
	var input *usecase.CustomerInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Customer created successfully")
}

// Update handles replacing a customer's mutable fields.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}

	var input *usecase.CustomerInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customer updated successfully")
}

// Delete handles removing a customer. The response carries the deleted
// customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}

	output, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customer deleted successfully")
}
