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

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(customerRepo, discardLogger())

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestCustomerService_Create(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = uuid.New()
			assert.True(t, customer.IsGold)
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, &usecase.CustomerInput{
		Name:   "John Smith",
		IsGold: boolPtr(true),
		Phone:  "12345",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", output.Name)
	assert.True(t, output.IsGold)
	assert.NotEqual(t, uuid.Nil, output.ID)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	output, err := fx.service.Update(ctx, customerID, &usecase.CustomerInput{
		Name:   "John Smith",
		IsGold: boolPtr(false),
		Phone:  "12345",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_Delete_ReturnsLastState(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.Customer{ID: customerID, Name: "Jane Doe", Phone: "54321"}, nil)

	fx.customerRepo.EXPECT().
		Delete(ctx, customerID).
		Return(nil)

	output, err := fx.service.Delete(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", output.Name)
}
