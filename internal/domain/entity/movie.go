package entity

import "github.com/google/uuid"

// Movie is a rentable title. The embedded genre is a snapshot taken when the
// movie was created or last updated, not a live reference to the genre record.
type Movie struct {
	ID              uuid.UUID
	Title           string
	Genre           GenreSnapshot
	NumberInStock   int
	DailyRentalRate float64
}

// MovieSnapshot is the point-in-time copy of a movie embedded into a rental
// at creation time. The daily rate stored here is the rate charged at return,
// regardless of later price changes.
type MovieSnapshot struct {
	ID              uuid.UUID
	Title           string
	DailyRentalRate float64
}

// Snapshot copies the rental-relevant movie fields for embedding.
func (m *Movie) Snapshot() MovieSnapshot {
	return MovieSnapshot{ID: m.ID, Title: m.Title, DailyRentalRate: m.DailyRentalRate}
}

// InStock reports whether at least one copy is available.
func (m *Movie) InStock() bool {
	return m.NumberInStock > 0
}
