// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"vidly/internal/domain/entity"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/repository"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// genreService implements the GenreUsecase interface.
type genreService struct {
	genreRepo repository.GenreRepository
	logger    *slog.Logger
}

// NewGenreService is the constructor for genreService.
func NewGenreService(
	genreRepo repository.GenreRepository,
	logger *slog.Logger,
) usecase.GenreUsecase {
	return &genreService{
		genreRepo: genreRepo,
		logger:    logger,
	}
}

// List retrieves every genre.
func (srv *genreService) List(ctx context.Context) ([]*usecase.GenreOutput, error) {
	genres, err := srv.genreRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	return usecase.NewGenreOutputs(genres), nil
}

// Get retrieves a single genre by id.
func (srv *genreService) Get(ctx context.Context, id uuid.UUID) (*usecase.GenreOutput, error) {
	genre, err := srv.findGenre(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewGenreOutput(genre), nil
}

// Create persists a new genre.
func (srv *genreService) Create(ctx context.Context, input *usecase.GenreInput) (*usecase.GenreOutput, error) {
	genre := &entity.Genre{Name: input.Name}

	if err := srv.genreRepo.Create(ctx, genre); err != nil {
		return nil, errors.Wrap(err, "failed to create genre")
	}

	srv.logger.Info("Genre created", "genreID", genre.ID, "name", genre.Name)

	return usecase.NewGenreOutput(genre), nil
}

// Update renames an existing genre.
func (srv *genreService) Update(ctx context.Context, id uuid.UUID, input *usecase.GenreInput) (*usecase.GenreOutput, error) {
	genre, err := srv.findGenre(ctx, id)
	if err != nil {
		return nil, err
	}

	genre.Name = input.Name

	if err := srv.genreRepo.Update(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGenreNotFound, "genre vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update genre")
	}

	return usecase.NewGenreOutput(genre), nil
}

// Delete removes a genre and returns its last state.
func (srv *genreService) Delete(ctx context.Context, id uuid.UUID) (*usecase.GenreOutput, error) {
	genre, err := srv.findGenre(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.genreRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGenreNotFound, "genre vanished during delete")
		}

		return nil, errors.Wrap(domainerrors.ErrDeleteConflict, "failed to delete genre")
	}

	srv.logger.Info("Genre deleted", "genreID", genre.ID, "name", genre.Name)

	return usecase.NewGenreOutput(genre), nil
}

func (srv *genreService) findGenre(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	genre, err := srv.genreRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGenreNotFound, "genre not found")
		}

		return nil, errors.Wrap(err, "failed to find genre")
	}

	return genre, nil
}
