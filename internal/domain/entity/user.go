package entity

import "github.com/google/uuid"

// User is a registered account. PasswordHash stores only the bcrypt hash;
// the plaintext password never reaches the domain layer. Accounts are
// read-only after registration.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
}
