package handler

import (
	"net/http"

	"vidly/internal/delivery/http/response"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MovieHandler holds dependencies for movie-related handlers.
type MovieHandler struct {
	uc usecase.MovieUsecase
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(uc usecase.MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// List handles listing all movies.
func (h *MovieHandler) List(c echo.Context) error {
	outputs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Get handles fetching a single movie.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrMovieNotFound)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles creating a movie.
func (h *MovieHandler) Create(c echo.Context) error {
	var input *usecase.MovieInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movie input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Movie created successfully")
}

// Update handles replacing a movie's mutable fields.
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrMovieNotFound)
	if err != nil {
		return err
	}

	var input *usecase.MovieInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movie input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Movie updated successfully")
}

// Delete handles removing a movie. The response carries the deleted movie.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c, domainerrors.ErrMovieNotFound)
	if err != nil {
		return err
	}

	output, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Movie deleted successfully")
}
