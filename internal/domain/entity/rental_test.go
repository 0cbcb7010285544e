package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRented_FloorsPartialDays(t *testing.T) {
	dateOut := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		returned time.Time
		want     int
	}{
		{name: "same moment", returned: dateOut, want: 0},
		{name: "a few hours later", returned: dateOut.Add(6 * time.Hour), want: 0},
		{name: "just under one day", returned: dateOut.Add(24*time.Hour - time.Second), want: 0},
		{name: "exactly one day", returned: dateOut.Add(24 * time.Hour), want: 1},
		{name: "seven days", returned: dateOut.Add(7 * 24 * time.Hour), want: 7},
		{name: "seven and a half days", returned: dateOut.Add(7*24*time.Hour + 12*time.Hour), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRented(dateOut, tt.returned))
		})
	}
}

func TestDaysRented_ReturnBeforeCheckoutClampsToZero(t *testing.T) {
	dateOut := time.Now()
	assert.Equal(t, 0, DaysRented(dateOut, dateOut.Add(-time.Hour)))
}

func TestCalculateRentalFee(t *testing.T) {
	dateOut := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Seven whole days at rate 2 per day.
	fee := CalculateRentalFee(dateOut, dateOut.Add(7*24*time.Hour), 2)
	assert.Equal(t, 14.0, fee)

	// Same-day return is free by design, not an error.
	fee = CalculateRentalFee(dateOut, dateOut.Add(3*time.Hour), 2)
	assert.Equal(t, 0.0, fee)
}

func TestRental_Returned(t *testing.T) {
	r := &Rental{DateOut: time.Now()}
	assert.False(t, r.Returned())

	fee := 14.0
	now := time.Now()
	r.RentalFee = &fee
	r.DateReturned = &now
	assert.True(t, r.Returned())
}

func TestSnapshots_CopyByValue(t *testing.T) {
	movie := &Movie{Title: "The Terminator", DailyRentalRate: 2}
	snap := movie.Snapshot()

	movie.DailyRentalRate = 5
	assert.Equal(t, 2.0, snap.DailyRentalRate, "snapshot must not track later edits")

	customer := &Customer{Name: "John Smith", IsGold: true, Phone: "12345"}
	custSnap := customer.Snapshot()

	customer.Name = "Jane Smith"
	assert.Equal(t, "John Smith", custSnap.Name)
}
