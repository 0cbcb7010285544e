package handler

import (
	"net/http"

	"vidly/internal/delivery/http/response"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GenreHandler holds dependencies for genre-related handlers.
type GenreHandler struct {
	uc usecase.GenreUsecase
}

// NewGenreHandler is the constructor for GenreHandler, injected by Fx.
func NewGenreHandler(uc usecase.GenreUsecase) *GenreHandler {
	return &GenreHandler{uc: uc}
}

// List handles listing all genres.
func (h *GenreHandler) List(c echo.Context) error {
	outputs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Get handles fetching a single genre.
func (h *GenreHandler) Get(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrGenreNotFound)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles creating a genre.
func (h *GenreHandler) Create(c echo.Context) error {
	var input *usecase.GenreInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid genre input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Genre created successfully")
}

// Update handles renaming a genre.
func (h *GenreHandler) Update(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrGenreNotFound)
	if err != nil {
		return err
	}

	var input *usecase.GenreInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid genre input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Genre updated successfully")
}

// Delete handles removing a genre. The response carries the deleted genre.
func (h *GenreHandler) Delete(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrGenreNotFound)
	if err != nil {
		return err
	}

	output, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Genre deleted successfully")
}
