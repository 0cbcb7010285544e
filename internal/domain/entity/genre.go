// Package entity contains the core business objects of the rental store,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// Genre classifies movies. Its name is bounded to 3-20 characters by input
// validation before it ever reaches the domain.
type Genre struct {
	ID   uuid.UUID
	Name string
}

// GenreSnapshot is the point-in-time copy of a genre embedded into a movie
// at create/update time. It does not track later edits to the genre.
type GenreSnapshot struct {
	ID   uuid.UUID
	Name string
}

// Snapshot copies the genre's current state for embedding.
func (g *Genre) Snapshot() GenreSnapshot {
	return GenreSnapshot{ID: g.ID, Name: g.Name}
}
