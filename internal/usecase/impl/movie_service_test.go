package impl

import (
	"context"
	"testing"

	"vidly/internal/domain/entity"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/repository"
	mockRepo "vidly/internal/mocks/repository"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// movieServiceFixtures holds all test dependencies for movie service tests.
type movieServiceFixtures struct {
	service   usecase.MovieUsecase
	movieRepo *mockRepo.MockMovieRepository
	genreRepo *mockRepo.MockGenreRepository
}

func createTestMovieService(t *testing.T) movieServiceFixtures {
	movieRepo := mockRepo.NewMockMovieRepository(t)
	genreRepo := mockRepo.NewMockGenreRepository(t)
	service := NewMovieService(movieRepo, genreRepo, discardLogger())

	return movieServiceFixtures{
		service:   service,
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestMovieService_Create_SnapshotsGenre(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	genre := &entity.Genre{ID: uuid.New(), Name: "Action"}

	fx.genreRepo.EXPECT().
		FindByID(ctx, genre.ID).
		Return(genre, nil)

	fx.movieRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Movie")).
		Run(func(_ context.Context, movie *entity.Movie) {
			movie.ID = uuid.New()
			assert.Equal(t, genre.ID, movie.Genre.ID)
			assert.Equal(t, "Action", movie.Genre.Name)
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, &usecase.MovieInput{
		Title:           "Terminator",
		GenreID:         genre.ID.String(),
		NumberInStock:   intPtr(10),
		DailyRentalRate: floatPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Terminator", output.Title)
	assert.Equal(t, "Action", output.Genre.Name)
	assert.Equal(t, 10, output.NumberInStock)
}

func TestMovieService_Create_InvalidGenre(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	genreID := uuid.New()

	fx.genreRepo.EXPECT().
		FindByID(ctx, genreID).
		Return(nil, repository.ErrGenreNotFound)

	output, err := fx.service.Create(ctx, &usecase.MovieInput{
		Title:           "Terminator",
		GenreID:         genreID.String(),
		NumberInStock:   intPtr(10),
		DailyRentalRate: floatPtr(2),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGenre)
}

func TestMovieService_Update_ReSnapshotsGenre(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	movieID := uuid.New()
	oldGenre := entity.GenreSnapshot{ID: uuid.New(), Name: "Action"}
	newGenre := &entity.Genre{ID: uuid.New(), Name: "Comedy"}

	fx.movieRepo.EXPECT().
		FindByID(ctx, movieID).
		Return(&entity.Movie{
			ID:              movieID,
			Title:           "Terminator",
			Genre:           oldGenre,
			NumberInStock:   5,
			DailyRentalRate: 2,
		}, nil)

	fx.genreRepo.EXPECT().
		FindByID(ctx, newGenre.ID).
		Return(newGenre, nil)

	fx.movieRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Movie")).
		Return(nil)

	output, err := fx.service.Update(ctx, movieID, &usecase.MovieInput{
		Title:           "Airplane",
		GenreID:         newGenre.ID.String(),
		NumberInStock:   intPtr(3),
		DailyRentalRate: floatPtr(1.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Airplane", output.Title)
	assert.Equal(t, "Comedy", output.Genre.Name)
	assert.Equal(t, newGenre.ID, output.Genre.ID)
	assert.Equal(t, 1.5, output.DailyRentalRate)
}

func TestMovieService_Get_NotFound(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	movieID := uuid.New()

	fx.movieRepo.EXPECT().
		FindByID(ctx, movieID).
		Return(nil, repository.ErrMovieNotFound)

	output, err := fx.service.Get(ctx, movieID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}
