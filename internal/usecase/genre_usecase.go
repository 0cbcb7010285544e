// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GenreInput defines the client-submitted shape of a genre for both
// creation and update.
type GenreInput struct {
	Name string `json:"name" validate:"required,min=3,max=20"`
}

// --- Output DTOs ---

// GenreOutput is the response shape of a genre.
type GenreOutput struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewGenreOutput maps a genre entity to its response shape.
func NewGenreOutput(genre *entity.Genre) *GenreOutput {
	return &GenreOutput{ID: genre.ID, Name: genre.Name}
}

// NewGenreOutputs maps a slice of genre entities to response shapes.
func NewGenreOutputs(genres []*entity.Genre) []*GenreOutput {
	outputs := make([]*GenreOutput, 0, len(genres))
	for _, genre := range genres {
		outputs = append(outputs, NewGenreOutput(genre))
	}

	return outputs
}

// GenreUsecase defines the genre-related business operations the delivery
// layer depends on.
type GenreUsecase interface {
	List(ctx context.Context) ([]*GenreOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*GenreOutput, error)
	Create(ctx context.Context, input *GenreInput) (*GenreOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *GenreInput) (*GenreOutput, error)

	// Delete removes the genre and returns its last state.
	Delete(ctx context.Context, id uuid.UUID) (*GenreOutput, error)
}
