package repository

import (
	"context"
	"time"

	"editais/internal/domain/entity"
	"editais/internal/errors"

	"github.com/google/uuid"
)

// ErrFilterNotFound is returned when no filter matches the given id.
var ErrFilterNotFound = errors.New("filter not found")

// FilterRepository defines saved-filter persistence operations
type FilterRepository interface {
	// CreateFilter stores a new filter.
	CreateFilter(ctx context.Context, filter *entity.Filter) error
	// FindFilterByID returns the filter with the given id, or ErrFilterNotFound.
	FindFilterByID(ctx context.Context, id uuid.UUID) (*entity.Filter, error)
	// FindFiltersByUser returns all filters owned by the user, newest first.
	FindFiltersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Filter, error)
	// FindActiveFilterByUser returns the user's active filter, or
	// ErrFilterNotFound when none is active.
	FindActiveFilterByUser(ctx context.Context, userID uuid.UUID) (*entity.Filter, error)
	// DeactivateFiltersByUser marks every filter of the user inactive,
	// stamping updatedAt with the given time.
	DeactivateFiltersByUser(ctx context.Context, userID uuid.UUID, at time.Time) error
	// UpdateFilter replaces the stored filter, or returns ErrFilterNotFound.
	UpdateFilter(ctx context.Context, filter *entity.Filter) error
	// DeleteFilter removes the filter, or returns ErrFilterNotFound.
	DeleteFilter(ctx context.Context, id uuid.UUID) error
}
