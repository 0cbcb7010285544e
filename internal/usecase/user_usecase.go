package usecase

import (
	"context"

	"vidly/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the registration payload.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// LoginInput defines the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserOutput is the response shape of a user. It never carries the
// password hash.
type UserOutput struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

// NewUserOutput maps a user entity to its response shape.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

// NewUserOutputs maps a slice of user entities to response shapes.
func NewUserOutputs(users []*entity.User) []*UserOutput {
	outputs := make([]*UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, NewUserOutput(user))
	}

	return outputs
}

// RegisterOutput carries the new account and a freshly issued token.
type RegisterOutput struct {
	User  *UserOutput
	Token string
}

// LoginOutput carries the token issued for a successful login.
type LoginOutput struct {
	Token string
}

// UserUsecase defines account registration, login and lookup.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	List(ctx context.Context) ([]*UserOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserOutput, error)
}
