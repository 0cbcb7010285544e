package service

import "github.com/google/uuid"

// Claims is the decoded payload of an authentication token: who the bearer
// is and whether they may perform destructive operations. Tokens carry no
// expiry in this design.
type Claims struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// TokenService defines the interface for generating and validating the
// signed tokens issued at registration and login.
type TokenService interface {
	// Generate creates a signed token encoding the user's id and admin flag.
	Generate(userID uuid.UUID, isAdmin bool) (string, error)

	// Validate checks the token's signature and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
