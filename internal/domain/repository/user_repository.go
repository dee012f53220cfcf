package repository

import (
	"context"

	"editais/internal/domain/entity"
	"editais/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines user persistence operations
type UserRepository interface {
	// CreateUser stores a new user, or returns ErrDuplicateEmail.
	CreateUser(ctx context.Context, user *entity.User) error
	// FindUserByID returns the user with the given id, or ErrUserNotFound.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindUserByEmail returns the user with the given email, or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
