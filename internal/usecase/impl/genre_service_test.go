package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vidly/internal/domain/entity"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/repository"
	mockRepo "vidly/internal/mocks/repository"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// genreServiceFixtures holds all test dependencies for genre service tests.
type genreServiceFixtures struct {
	service   usecase.GenreUsecase
	genreRepo *mockRepo.MockGenreRepository
}

func createTestGenreService(t *testing.T) genreServiceFixtures {
	genreRepo := mockRepo.NewMockGenreRepository(t)
	service := NewGenreService(genreRepo, discardLogger())

	return genreServiceFixtures{
		service:   service,
		genreRepo: genreRepo,
	}
}

func TestGenreService_List(t *testing.T) {
	fx := createTestGenreService(t)

	ctx := context.Background()
	genres := []*entity.Genre{
		{ID: uuid.New(), Name: "Action"},
		{ID: uuid.New(), Name: "Comedy"},
	}

	fx.genreRepo.EXPECT().
		FindAll(ctx).
		Return(genres, nil)

	outputs, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Action", outputs[0].Name)
	assert.Equal(t, genres[1].ID, outputs[1].ID)
}

func TestGenreService_Get_NotFound(t *testing.T) {
	fx := createTestGenreService(t)

	ctx := context.Background()
	genreID := uuid.New()

	fx.genreRepo.EXPECT().
		FindByID(ctx, genreID).
		Return(nil, repository.ErrGenreNotFound)

	output, err := fx.service.Get(ctx, genreID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGenreNotFound)
}

func TestGenreService_Create(t *testing.T) {
	fx := createTestGenreService(t)

	ctx := context.Background()

	fx.genreRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Genre")).
		Run(func(_ context.Context, genre *entity.Genre) {
			genre.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, &usecase.GenreInput{Name: "Thriller"})
	require.NoError(t, err)
	assert.Equal(t, "Thriller", output.Name)
	assert.NotEqual(t, uuid.Nil, output.ID)
}

func TestGenreService_Update(t *testing.T) {
	fx := createTestGenreService(t)

	ctx := context.Background()
	genreID := uuid.New()

	fx.genreRepo.EXPECT().
		FindByID(ctx, genreID).
		Return(&entity.Genre{ID: genreID, Name: "Action"}, nil)

	fx.genreRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Genre")).
		Run(func(_ context.Context, genre *entity.Genre) {
			assert.Equal(t, "Adventure", genre.Name)
		}).
		Return(nil)

	output, err := fx.service.Update(ctx, genreID, &usecase.GenreInput{Name: "Adventure"})
	require.NoError(t, err)
	assert.Equal(t, "Adventure", output.Name)
}

func TestGenreService_Delete_ReturnsLastState(t *testing.T) {
	fx := createTestGenreService(t)

	ctx := context.Background()
	genreID := uuid.New()

	fx.genreRepo.EXPECT().
		FindByID(ctx, genreID).
		Return(&entity.Genre{ID: genreID, Name: "Horror"}, nil)

	fx.genreRepo.EXPECT().
		Delete(ctx, genreID).
		Return(nil)

	output, err := fx.service.Delete(ctx, genreID)
	require.NoError(t, err)
	assert.Equal(t, "Horror", output.Name)
	assert.Equal(t, genreID, output.ID)
}

func TestGenreService_Delete_Conflict(t *testing.T) {
	fx := createTestGenreService(t)

	ctx := context.Background()
	genreID := uuid.New()

	fx.genreRepo.EXPECT().
		FindByID(ctx, genreID).
		Return(&entity.Genre{ID: genreID, Name: "Horror"}, nil)

	fx.genreRepo.EXPECT().
		Delete(ctx, genreID).
		Return(errors.New("write concern failed"))

	output, err := fx.service.Delete(ctx, genreID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDeleteConflict)
}
