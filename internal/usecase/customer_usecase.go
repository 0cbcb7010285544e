package usecase

import (
	"context"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerInput defines the client-submitted shape of a customer.
// IsGold is a pointer so an explicit false still satisfies "required".
type CustomerInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	IsGold *bool  `json:"isGold" validate:"required"`
	Phone  string `json:"phone" validate:"required,max=15"`
}

// CustomerOutput is the response shape of a customer.
type CustomerOutput struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	IsGold bool      `json:"isGold"`
	Phone  string    `json:"phone"`
}

// NewCustomerOutput maps a customer entity to its response shape.
func NewCustomerOutput(customer *entity.Customer) *CustomerOutput {
	return &CustomerOutput{
		ID:     customer.ID,
		Name:   customer.Name,
		IsGold: customer.IsGold,
		Phone:  customer.Phone,
	}
}

// NewCustomerOutputs maps a slice of customer entities to response shapes.
func NewCustomerOutputs(customers []*entity.Customer) []*CustomerOutput {
	outputs := make([]*CustomerOutput, 0, len(customers))
	for _, customer := range customers {
		outputs = append(outputs, NewCustomerOutput(customer))
	}

	return outputs
}

// CustomerUsecase defines the customer-related business operations.
type CustomerUsecase interface {
	List(ctx context.Context) ([]*CustomerOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*CustomerOutput, error)
	Create(ctx context.Context, input *CustomerInput) (*CustomerOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *CustomerInput) (*CustomerOutput, error)
	Delete(ctx context.Context, id uuid.UUID) (*CustomerOutput, error)
}
