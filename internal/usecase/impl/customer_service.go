package impl

import (
	"context"
	"log/slog"

	"vidly/internal/domain/entity"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/repository"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// List retrieves every customer.
func (srv *customerService) List(ctx context.Context) ([]*usecase.CustomerOutput, error) {
	customers, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return usecase.NewCustomerOutputs(customers), nil
}

// Get retrieves a single customer by id.
func (srv *customerService) Get(ctx context.Context, id uuid.UUID) (*usecase.CustomerOutput, error) {
	customer, err := srv.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewCustomerOutput(customer), nil
}

// Create persists a new customer.
func (srv *customerService) Create(ctx context.Context, input *usecase.CustomerInput) (*usecase.CustomerOutput, error) {
	customer := &entity.Customer{
		Name:   input.Name,
		IsGold: *input.IsGold,
		Phone:  input.Phone,
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.logger.Info("Customer created", "customerID", customer.ID)

	return usecase.NewCustomerOutput(customer), nil
}

// Update overwrites the mutable fields of an existing customer.
func (srv *customerService) Update(ctx context.Context, id uuid.UUID, input *usecase.CustomerInput) (*usecase.CustomerOutput, error) {
	customer, err := srv.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.IsGold = *input.IsGold
	customer.Phone = input.Phone

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return usecase.NewCustomerOutput(customer), nil
}

// Delete removes a customer and returns its last state. Existing rentals
// keep their embedded snapshot of the customer.
func (srv *customerService) Delete(ctx context.Context, id uuid.UUID) (*usecase.CustomerOutput, error) {
	customer, err := srv.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer vanished during delete")
		}

		return nil, errors.Wrap(domainerrors.ErrDeleteConflict, "failed to delete customer")
	}

	srv.logger.Info("Customer deleted", "customerID", customer.ID)

	return usecase.NewCustomerOutput(customer), nil
}

func (srv *customerService) findCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}
