package entity

import "github.com/google/uuid"

// Customer is a person renting movies. Gold members are flagged for
// presentation only; membership does not change pricing in this system.
type Customer struct {
	ID     uuid.UUID
	Name   string
	IsGold bool
	Phone  string
}

// CustomerSnapshot is the point-in-time copy of a customer embedded into a
// rental at creation time.
type CustomerSnapshot struct {
	ID     uuid.UUID
	Name   string
	IsGold bool
	Phone  string
}

// Snapshot copies the customer's current state for embedding into a rental.
func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{ID: c.ID, Name: c.Name, IsGold: c.IsGold, Phone: c.Phone}
}
