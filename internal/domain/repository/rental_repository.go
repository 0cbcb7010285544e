package repository

import (
	"context"
	"errors"
	"time"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRentalNotFound is returned when no rental matches the lookup.
var ErrRentalNotFound = errors.New("rental not found")

// ErrRentalAlreadyClosed is returned by Close when the conditional update
// matched no open rental: the fee was already set, either before the lookup
// or by a concurrent return that won the race.
var ErrRentalAlreadyClosed = errors.New("rental already closed")

// RentalRepository defines the standard operations for rental persistence.
// Rentals are never deleted.
type RentalRepository interface {
	// FindAll retrieves every rental, most recent checkout first.
	FindAll(ctx context.Context) ([]*entity.Rental, error)

	// FindByCustomerAndMovie retrieves the most recent rental whose embedded
	// customer and movie ids match the pair.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*entity.Rental, error)

	// Create persists a new rental with its customer and movie snapshots.
	Create(ctx context.Context, rental *entity.Rental) error

	// Close sets DateReturned and RentalFee on the rental in a single
	// conditional update filtered on the fee being unset, and returns the
	// closed rental. The filter makes "find open rental and mark it
	// returned" atomic; losing the race yields ErrRentalAlreadyClosed.
	Close(ctx context.Context, id uuid.UUID, dateReturned time.Time, rentalFee float64) (*entity.Rental, error)
}
