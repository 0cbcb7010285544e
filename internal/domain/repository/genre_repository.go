// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGenreNotFound is returned when no genre exists under the given id.
var ErrGenreNotFound = errors.New("genre not found")

// GenreRepository defines the standard operations for genre persistence.
type GenreRepository interface {
	// FindAll retrieves every genre, sorted by name.
	FindAll(ctx context.Context) ([]*entity.Genre, error)

	// FindByID retrieves a single genre by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)

	// Create persists a new genre.
	Create(ctx context.Context, genre *entity.Genre) error

	// Update modifies an existing genre.
	Update(ctx context.Context, genre *entity.Genre) error

	// Delete removes a genre by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
