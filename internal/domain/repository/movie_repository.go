package repository

import (
	"context"
	"errors"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMovieNotFound is returned when no movie exists under the given id.
var ErrMovieNotFound = errors.New("movie not found")

// ErrMovieOutOfStock is returned by DecrementStock when the movie exists but
// has no copies left. The decrement is conditional on stock being positive,
// so stock can never go negative under concurrent rentals.
var ErrMovieOutOfStock = errors.New("movie out of stock")

// MovieRepository defines the standard operations for movie persistence.
type MovieRepository interface {
	// FindAll retrieves every movie, sorted by title.
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// FindByID retrieves a single movie by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// Create persists a new movie.
	Create(ctx context.Context, movie *entity.Movie) error

	// Update modifies an existing movie.
	Update(ctx context.Context, movie *entity.Movie) error

	// Delete removes a movie by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically takes one copy off the shelf. It matches only
	// movies with NumberInStock > 0 and returns ErrMovieOutOfStock when the
	// guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID) error

	// IncrementStock atomically puts one copy back on the shelf.
	IncrementStock(ctx context.Context, id uuid.UUID) error
}
