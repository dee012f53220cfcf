package usecase

import (
	"context"

	"editais/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFilterInput carries the fields for a new saved filter.
type CreateFilterInput struct {
	Keywords    string
	States      string
	TenderTypes string
	MinValue    *int64
	MaxValue    *int64
	IsActive    bool
}

// UpdateFilterInput carries the replacement fields for an existing filter.
type UpdateFilterInput struct {
	Keywords    string
	States      string
	TenderTypes string
	MinValue    *int64
	MaxValue    *int64
	IsActive    bool
}

// FilterUsecase defines the interface for saved-filter management use cases
type FilterUsecase interface {
	// CreateFilter stores a new filter. When the filter is active, every
	// other filter of the user is deactivated in the same transaction.
	CreateFilter(ctx context.Context, userID uuid.UUID, input CreateFilterInput) (*entity.Filter, error)

	// GetFilters returns all filters of the user, newest first.
	GetFilters(ctx context.Context, userID uuid.UUID) ([]*entity.Filter, error)

	// GetActiveFilter returns the user's single active filter.
	GetActiveFilter(ctx context.Context, userID uuid.UUID) (*entity.Filter, error)

	// UpdateFilter replaces the filter's fields. Activating a filter
	// deactivates the user's other filters atomically.
	UpdateFilter(ctx context.Context, userID, filterID uuid.UUID, input UpdateFilterInput) (*entity.Filter, error)

	// DeleteFilter removes a filter owned by the user.
	DeleteFilter(ctx context.Context, userID, filterID uuid.UUID) error
}
