package usecase

import (
	"context"
	"time"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// RentalInput identifies the customer/movie pair for a checkout or a return.
type RentalInput struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	MovieID    string `json:"movieId" validate:"required,uuid"`
}

// RentalCustomerOutput is the embedded customer snapshot of a rental response.
type RentalCustomerOutput struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	IsGold bool      `json:"isGold"`
	Phone  string    `json:"phone"`
}

// RentalMovieOutput is the embedded movie snapshot of a rental response.
type RentalMovieOutput struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DailyRentalRate float64   `json:"dailyRentalRate"`
}

// RentalOutput is the response shape of a rental. DateReturned and RentalFee
// stay null until the return is processed.
type RentalOutput struct {
	ID           uuid.UUID            `json:"id"`
	Customer     RentalCustomerOutput `json:"customer"`
	Movie        RentalMovieOutput    `json:"movie"`
	DateOut      time.Time            `json:"dateOut"`
	DateReturned *time.Time           `json:"dateReturned"`
	RentalFee    *float64             `json:"rentalFee"`
}

// NewRentalOutput maps a rental entity to its response shape.
func NewRentalOutput(rental *entity.Rental) *RentalOutput {
	return &RentalOutput{
		ID: rental.ID,
		Customer: RentalCustomerOutput{
			ID:     rental.Customer.ID,
			Name:   rental.Customer.Name,
			IsGold: rental.Customer.IsGold,
			Phone:  rental.Customer.Phone,
		},
		Movie: RentalMovieOutput{
			ID:              rental.Movie.ID,
			Title:           rental.Movie.Title,
			DailyRentalRate: rental.Movie.DailyRentalRate,
		},
		DateOut:      rental.DateOut,
		DateReturned: rental.DateReturned,
		RentalFee:    rental.RentalFee,
	}
}

// NewRentalOutputs maps a slice of rental entities to response shapes.
func NewRentalOutputs(rentals []*entity.Rental) []*RentalOutput {
	outputs := make([]*RentalOutput, 0, len(rentals))
	for _, rental := range rentals {
		outputs = append(outputs, NewRentalOutput(rental))
	}

	return outputs
}

// RentalUsecase defines checkout and return processing.
type RentalUsecase interface {
	List(ctx context.Context) ([]*RentalOutput, error)

	// Create checks a movie out to a customer, decrementing its stock.
	Create(ctx context.Context, input *RentalInput) (*RentalOutput, error)

	// ProcessReturn closes the open rental for the pair, sets the fee and
	// restores the movie's stock.
	ProcessReturn(ctx context.Context, input *RentalInput) (*RentalOutput, error)
}
