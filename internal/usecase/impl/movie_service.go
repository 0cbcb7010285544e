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

// movieService implements the MovieUsecase interface.
type movieService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
	logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	logger *slog.Logger,
) usecase.MovieUsecase {
	return &movieService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
		logger:    logger,
	}
}

// List retrieves every movie.
func (srv *movieService) List(ctx context.Context) ([]*usecase.MovieOutput, error) {
	movies, err := srv.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	return usecase.NewMovieOutputs(movies), nil
}

// Get retrieves a single movie by id.
func (srv *movieService) Get(ctx context.Context, id uuid.UUID) (*usecase.MovieOutput, error) {
	movie, err := srv.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewMovieOutput(movie), nil
}

// Create persists a new movie with a snapshot of its genre embedded.
func (srv *movieService) Create(ctx context.Context, input *usecase.MovieInput) (*usecase.MovieOutput, error) {
	genre, err := srv.resolveGenre(ctx, input.GenreID)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Title:           input.Title,
		Genre:           genre.Snapshot(),
		NumberInStock:   *input.NumberInStock,
		DailyRentalRate: *input.DailyRentalRate,
	}

	if err := srv.movieRepo.Create(ctx, movie); err != nil {
		return nil, errors.Wrap(err, "failed to create movie")
	}

	srv.logger.Info("Movie created", "movieID", movie.ID, "title", movie.Title)

	return usecase.NewMovieOutput(movie), nil
}

// Update overwrites the mutable fields of an existing movie, re-resolving
// the genre so a renamed genre is re-snapshotted.
func (srv *movieService) Update(ctx context.Context, id uuid.UUID, input *usecase.MovieInput) (*usecase.MovieOutput, error) {
	movie, err := srv.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	genre, err := srv.resolveGenre(ctx, input.GenreID)
	if err != nil {
		return nil, err
	}

	movie.Title = input.Title
	movie.Genre = genre.Snapshot()
	movie.NumberInStock = *input.NumberInStock
	movie.DailyRentalRate = *input.DailyRentalRate

	if err := srv.movieRepo.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "movie vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update movie")
	}

	return usecase.NewMovieOutput(movie), nil
}

// Delete removes a movie and returns its last state.
func (srv *movieService) Delete(ctx context.Context, id uuid.UUID) (*usecase.MovieOutput, error) {
	movie, err := srv.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.movieRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "movie vanished during delete")
		}

		return nil, errors.Wrap(domainerrors.ErrDeleteConflict, "failed to delete movie")
	}

	srv.logger.Info("Movie deleted", "movieID", movie.ID, "title", movie.Title)

	return usecase.NewMovieOutput(movie), nil
}

func (srv *movieService) findMovie(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, err := srv.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "movie not found")
		}

		return nil, errors.Wrap(err, "failed to find movie")
	}

	return movie, nil
}

// resolveGenre looks up the referenced genre. A missing genre is a client
// error, not a 404: the movie payload pointed at a genre that does not exist.
func (srv *movieService) resolveGenre(ctx context.Context, rawID string) (*entity.Genre, error) {
	genreID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidGenre, "malformed genre id")
	}

	genre, err := srv.genreRepo.FindByID(ctx, genreID)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidGenre, "genre not found")
		}

		return nil, errors.Wrap(err, "failed to resolve genre")
	}

	return genre, nil
}
