package repository

import (
	"context"
	"errors"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no customer exists under the given id.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// FindAll retrieves every customer, sorted by name.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindByID retrieves a single customer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
