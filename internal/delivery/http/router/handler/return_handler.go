package handler

import (
	"net/http"

	"vidly/internal/delivery/http/response"
	"vidly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReturnHandler holds dependencies for return processing.
type ReturnHandler struct {
	uc usecase.RentalUsecase
}

// NewReturnHandler is the constructor for ReturnHandler, injected by Fx.
func NewReturnHandler(uc usecase.RentalUsecase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// Create handles processing a return for a customer/movie pair. The response
// carries the closed rental with its fee set.
func (h *ReturnHandler) Create(c echo.Context) error {
	var input *usecase.RentalInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.ProcessReturn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Return processed successfully")
}
