package usecase

import (
	"context"

	"editais/internal/domain/entity"
)

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput bundles the authenticated user with its token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account use cases
type UserUsecase interface {
	// Register creates a new account and returns it logged in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates an existing account.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
