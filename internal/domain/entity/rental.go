package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rental records one movie checked out by one customer. The customer and
// movie fields are snapshots copied in at creation time: a rental reflects
// the terms in effect when it was made. DateReturned and RentalFee stay nil
// until return processing sets both together, exactly once.
type Rental struct {
	ID           uuid.UUID
	Customer     CustomerSnapshot
	Movie        MovieSnapshot
	DateOut      time.Time
	DateReturned *time.Time
	RentalFee    *float64
}

// Returned reports whether the rental has been processed by a return.
func (r *Rental) Returned() bool {
	return r.RentalFee != nil
}

// DaysRented counts whole days between checkout and return. The count
// floors: a rental returned hours after checkout is 0 days.
func DaysRented(dateOut, dateReturned time.Time) int {
	if dateReturned.Before(dateOut) {
		return 0
	}

	return int(dateReturned.Sub(dateOut) / (24 * time.Hour))
}

// CalculateRentalFee prices a return from the checkout window and the daily
// rate snapshotted on the rental. A same-day return is free.
func CalculateRentalFee(dateOut, dateReturned time.Time, dailyRentalRate float64) float64 {
	return float64(DaysRented(dateOut, dateReturned)) * dailyRentalRate
}
