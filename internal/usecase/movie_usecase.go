package usecase

import (
	"context"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// MovieInput defines the client-submitted shape of a movie. The client sends
// only the genre id; the service resolves it and embeds a snapshot. The
// numeric fields are pointers so explicit zeros still satisfy "required".
type MovieInput struct {
	Title           string   `json:"title" validate:"required,min=5,max=255"`
	GenreID         string   `json:"genreId" validate:"required,uuid"`
	NumberInStock   *int     `json:"numberInStock" validate:"required,min=0,max=255"`
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"required,min=0,max=255"`
}

// MovieOutput is the response shape of a movie, genre snapshot included.
type MovieOutput struct {
	ID              uuid.UUID    `json:"id"`
	Title           string       `json:"title"`
	Genre           *GenreOutput `json:"genre"`
	NumberInStock   int          `json:"numberInStock"`
	DailyRentalRate float64      `json:"dailyRentalRate"`
}

// NewMovieOutput maps a movie entity to its response shape.
func NewMovieOutput(movie *entity.Movie) *MovieOutput {
	return &MovieOutput{
		ID:              movie.ID,
		Title:           movie.Title,
		Genre:           &GenreOutput{ID: movie.Genre.ID, Name: movie.Genre.Name},
		NumberInStock:   movie.NumberInStock,
		DailyRentalRate: movie.DailyRentalRate,
	}
}

// NewMovieOutputs maps a slice of movie entities to response shapes.
func NewMovieOutputs(movies []*entity.Movie) []*MovieOutput {
	outputs := make([]*MovieOutput, 0, len(movies))
	for _, movie := range movies {
		outputs = append(outputs, NewMovieOutput(movie))
	}

	return outputs
}

// MovieUsecase defines the movie-related business operations.
type MovieUsecase interface {
	List(ctx context.Context) ([]*MovieOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*MovieOutput, error)
	Create(ctx context.Context, input *MovieInput) (*MovieOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *MovieInput) (*MovieOutput, error)
	Delete(ctx context.Context, id uuid.UUID) (*MovieOutput, error)
}
