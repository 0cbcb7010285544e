package impl

import (
	"context"
	"log/slog"
	"time"

	"vidly/internal/domain/entity"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/repository"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rentalService implements the RentalUsecase interface.
type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	movieRepo    repository.MovieRepository
	logger       *slog.Logger

	// now is swappable so tests can pin checkout and return times.
	now func() time.Time
}

// NewRentalService is the constructor for rentalService.
func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	movieRepo repository.MovieRepository,
	logger *slog.Logger,
) usecase.RentalUsecase {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		movieRepo:    movieRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// List retrieves every rental, most recent checkout first.
func (srv *rentalService) List(ctx context.Context) ([]*usecase.RentalOutput, error) {
	rentals, err := srv.rentalRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	return usecase.NewRentalOutputs(rentals), nil
}

// Create checks a movie out to a customer. The stock decrement is a
// conditional single-document update, so two concurrent checkouts of the
// last copy cannot both succeed.
func (srv *rentalService) Create(ctx context.Context, input *usecase.RentalInput) (*usecase.RentalOutput, error) {
	customerID, movieID, err := parseRentalIDs(input)
	if err != nil {
		return nil, err
	}

	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	movie, err := srv.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "movie not found")
		}

		return nil, errors.Wrap(err, "failed to find movie")
	}

	if err := srv.movieRepo.DecrementStock(ctx, movieID); err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieOutOfStock):
			return nil, errors.Wrap(domainerrors.ErrMovieOutOfStock, "movie not in stock")
		case errors.Is(err, repository.ErrMovieNotFound):
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "movie vanished during checkout")
		default:
			return nil, errors.Wrap(err, "failed to decrement movie stock")
		}
	}

	rental := &entity.Rental{
		Customer: customer.Snapshot(),
		Movie:    movie.Snapshot(),
		DateOut:  srv.now(),
	}

	if err := srv.rentalRepo.Create(ctx, rental); err != nil {
		// The copy was already taken off the shelf; put it back so the
		// stock count does not drift.
		if incErr := srv.movieRepo.IncrementStock(ctx, movieID); incErr != nil {
			srv.logger.Error("Failed to restore stock after checkout failure",
				"movieID", movieID, "error", incErr)
		}

		return nil, errors.Wrap(err, "failed to create rental")
	}

	srv.logger.Info("Rental created",
		"rentalID", rental.ID, "customerID", customerID, "movieID", movieID)

	return usecase.NewRentalOutput(rental), nil
}

// ProcessReturn closes the open rental for the customer/movie pair. The fee
// is computed from the rate snapshotted at checkout, and the close itself is
// a conditional update: of two concurrent returns only one wins, the other
// is reported as already processed.
func (srv *rentalService) ProcessReturn(ctx context.Context, input *usecase.RentalInput) (*usecase.RentalOutput, error) {
	customerID, movieID, err := parseRentalIDs(input)
	if err != nil {
		return nil, err
	}

	rental, err := srv.rentalRepo.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRentalNotFound, "rental not found")
		}

		return nil, errors.Wrap(err, "failed to find rental")
	}

	if rental.Returned() {
		return nil, errors.Wrap(domainerrors.ErrReturnAlreadyProcessed, "return already processed")
	}

	returnedAt := srv.now()
	fee := entity.CalculateRentalFee(rental.DateOut, returnedAt, rental.Movie.DailyRentalRate)

	closed, err := srv.rentalRepo.Close(ctx, rental.ID, returnedAt, fee)
	if err != nil {
		if errors.Is(err, repository.ErrRentalAlreadyClosed) {
			return nil, errors.Wrap(domainerrors.ErrReturnAlreadyProcessed, "return already processed")
		}

		return nil, errors.Wrap(err, "failed to close rental")
	}

	// The return is recorded either way; a failed restock only warrants a log.
	if err := srv.movieRepo.IncrementStock(ctx, movieID); err != nil {
		srv.logger.Warn("Failed to restore stock after return",
			"movieID", movieID, "error", err)
	}

	srv.logger.Info("Return processed",
		"rentalID", closed.ID, "customerID", customerID, "movieID", movieID, "rentalFee", fee)

	return usecase.NewRentalOutput(closed), nil
}

func parseRentalIDs(input *usecase.RentalInput) (customerID, movieID uuid.UUID, err error) {
	customerID, err = uuid.Parse(input.CustomerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed customer id")
	}

	movieID, err = uuid.Parse(input.MovieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed movie id")
	}

	return customerID, movieID, nil
}
