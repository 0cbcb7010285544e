package impl

import (
	"context"
	"testing"
	"time"

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

// rentalServiceFixtures holds all test dependencies for rental service tests.
type rentalServiceFixtures struct {
	service      *rentalService
	rentalRepo   *mockRepo.MockRentalRepository
	customerRepo *mockRepo.MockCustomerRepository
	movieRepo    *mockRepo.MockMovieRepository
}

func createTestRentalService(t *testing.T) rentalServiceFixtures {
	rentalRepo := mockRepo.NewMockRentalRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	movieRepo := mockRepo.NewMockMovieRepository(t)
	service := NewRentalService(rentalRepo, customerRepo, movieRepo, discardLogger()).(*rentalService)

	return rentalServiceFixtures{
		service:      service,
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		movieRepo:    movieRepo,
	}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{ID: uuid.New(), Name: "John Smith", IsGold: true, Phone: "12345"}
}

func testMovie() *entity.Movie {
	return &entity.Movie{
		ID:              uuid.New(),
		Title:           "Terminator",
		Genre:           entity.GenreSnapshot{ID: uuid.New(), Name: "Action"},
		NumberInStock:   5,
		DailyRentalRate: 2,
	}
}

func TestRentalService_Create_Success(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customer := testCustomer()
	movie := testMovie()
	checkout := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return checkout }

	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fx.movieRepo.EXPECT().
		FindByID(ctx, movie.ID).
		Return(movie, nil)

	fx.movieRepo.EXPECT().
		DecrementStock(ctx, movie.ID).
		Return(nil)

	fx.rentalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rental")).
		Run(func(_ context.Context, rental *entity.Rental) {
			rental.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, &usecase.RentalInput{
		CustomerID: customer.ID.String(),
		MovieID:    movie.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, output.Customer.ID)
	assert.Equal(t, "Terminator", output.Movie.Title)
	assert.Equal(t, float64(2), output.Movie.DailyRentalRate)
	assert.Equal(t, checkout, output.DateOut)
	assert.Nil(t, output.DateReturned)
	assert.Nil(t, output.RentalFee)
}

func TestRentalService_Create_MovieOutOfStock(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customer := testCustomer()
	movie := testMovie()

	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fx.movieRepo.EXPECT().
		FindByID(ctx, movie.ID).
		Return(movie, nil)

	fx.movieRepo.EXPECT().
		DecrementStock(ctx, movie.ID).
		Return(repository.ErrMovieOutOfStock)

	output, err := fx.service.Create(ctx, &usecase.RentalInput{
		CustomerID: customer.ID.String(),
		MovieID:    movie.ID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMovieOutOfStock)
}

func TestRentalService_Create_CustomerNotFound(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	output, err := fx.service.Create(ctx, &usecase.RentalInput{
		CustomerID: customerID.String(),
		MovieID:    uuid.New().String(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestRentalService_Create_RestoresStockWhenInsertFails(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customer := testCustomer()
	movie := testMovie()

	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fx.movieRepo.EXPECT().
		FindByID(ctx, movie.ID).
		Return(movie, nil)

	fx.movieRepo.EXPECT().
		DecrementStock(ctx, movie.ID).
		Return(nil)

	fx.rentalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rental")).
		Return(assert.AnError)

	fx.movieRepo.EXPECT().
		IncrementStock(ctx, movie.ID).
		Return(nil)

	output, err := fx.service.Create(ctx, &usecase.RentalInput{
		CustomerID: customer.ID.String(),
		MovieID:    movie.ID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestRentalService_ProcessReturn_Success(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customerID := uuid.New()
	movieID := uuid.New()
	dateOut := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	returnedAt := dateOut.AddDate(0, 0, 7)
	fx.service.now = func() time.Time { return returnedAt }

	open := &entity.Rental{
		ID: uuid.New(),
		Customer: entity.CustomerSnapshot{
			ID: customerID, Name: "John Smith", Phone: "12345",
		},
		Movie: entity.MovieSnapshot{
			ID: movieID, Title: "Terminator", DailyRentalRate: 2,
		},
		DateOut: dateOut,
	}

	fee := 14.0
	closed := *open
	closed.DateReturned = &returnedAt
	closed.RentalFee = &fee

	fx.rentalRepo.EXPECT().
		FindByCustomerAndMovie(ctx, customerID, movieID).
		Return(open, nil)

	fx.rentalRepo.EXPECT().
		Close(ctx, open.ID, returnedAt, fee).
		Return(&closed, nil)

	fx.movieRepo.EXPECT().
		IncrementStock(ctx, movieID).
		Return(nil)

	output, err := fx.service.ProcessReturn(ctx, &usecase.RentalInput{
		CustomerID: customerID.String(),
		MovieID:    movieID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, output.RentalFee)
	assert.Equal(t, 14.0, *output.RentalFee)
	require.NotNil(t, output.DateReturned)
	assert.Equal(t, returnedAt, *output.DateReturned)
}

func TestRentalService_ProcessReturn_NoRental(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customerID := uuid.New()
	movieID := uuid.New()

	fx.rentalRepo.EXPECT().
		FindByCustomerAndMovie(ctx, customerID, movieID).
		Return(nil, repository.ErrRentalNotFound)

	output, err := fx.service.ProcessReturn(ctx, &usecase.RentalInput{
		CustomerID: customerID.String(),
		MovieID:    movieID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRentalNotFound)
}

func TestRentalService_ProcessReturn_AlreadyProcessed(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customerID := uuid.New()
	movieID := uuid.New()
	returned := time.Now().UTC()
	fee := 4.0

	fx.rentalRepo.EXPECT().
		FindByCustomerAndMovie(ctx, customerID, movieID).
		Return(&entity.Rental{
			ID:           uuid.New(),
			DateOut:      returned.AddDate(0, 0, -2),
			DateReturned: &returned,
			RentalFee:    &fee,
		}, nil)

	output, err := fx.service.ProcessReturn(ctx, &usecase.RentalInput{
		CustomerID: customerID.String(),
		MovieID:    movieID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrReturnAlreadyProcessed)
}

func TestRentalService_ProcessReturn_LostRace(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	customerID := uuid.New()
	movieID := uuid.New()
	dateOut := time.Now().UTC().AddDate(0, 0, -3)

	open := &entity.Rental{
		ID:      uuid.New(),
		Movie:   entity.MovieSnapshot{ID: movieID, DailyRentalRate: 2},
		DateOut: dateOut,
	}

	fx.rentalRepo.EXPECT().
		FindByCustomerAndMovie(ctx, customerID, movieID).
		Return(open, nil)

	fx.rentalRepo.EXPECT().
		Close(ctx, open.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("float64")).
		Return(nil, repository.ErrRentalAlreadyClosed)

	output, err := fx.service.ProcessReturn(ctx, &usecase.RentalInput{
		CustomerID: customerID.String(),
		MovieID:    movieID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrReturnAlreadyProcessed)
}
