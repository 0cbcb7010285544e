package model

import "time"

// RentalCustomerModel is the customer copy embedded in a rental document.
type RentalCustomerModel struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	IsGold bool   `bson:"isGold"`
	Phone  string `bson:"phone"`
}

// RentalMovieModel is the movie copy embedded in a rental document.
type RentalMovieModel struct {
	ID              string  `bson:"_id"`
	Title           string  `bson:"title"`
	DailyRentalRate float64 `bson:"dailyRentalRate"`
}

// RentalModel is the persisted form of a rental. DateReturned and RentalFee
// are absent until return processing sets both; the "fee unset" filter used
// by the conditional close matches the missing field.
type RentalModel struct {
	ID           string              `bson:"_id"`
	Customer     RentalCustomerModel `bson:"customer"`
	Movie        RentalMovieModel    `bson:"movie"`
	DateOut      time.Time           `bson:"dateOut"`
	DateReturned *time.Time          `bson:"dateReturned,omitempty"`
	RentalFee    *float64            `bson:"rentalFee,omitempty"`
}
