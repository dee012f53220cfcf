package impl

import (
	"context"
	"time"

	"editais/internal/domain/entity"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/domain/repository"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type filterService struct {
	filterRepo repository.FilterRepository
	txManager  repository.TransactionManager
	now        func() time.Time
}

// FilterServiceParams holds dependencies for FilterService, injected by Fx.
type FilterServiceParams struct {
	fx.In

	FilterRepo repository.FilterRepository
	TxManager  repository.TransactionManager
}

// NewFilterService creates a new filter service instance
func NewFilterService(params FilterServiceParams) usecase.FilterUsecase {
	return &filterService{
		filterRepo: params.FilterRepo,
		txManager:  params.TxManager,
		now:        time.Now,
	}
}

// CreateFilter stores a new filter. Every other filter of the user is
// deactivated first, inside the same transaction, so the newest creation
// always wins and at most one filter is active at any point.
func (s *filterService) CreateFilter(ctx context.Context, userID uuid.UUID, input usecase.CreateFilterInput) (*entity.Filter, error) {
	if err := validateValueRange(input.MinValue, input.MaxValue); err != nil {
		return nil, err
	}

	now := s.now()
	filter := &entity.Filter{
		ID:          uuid.New(),
		UserID:      userID,
		Keywords:    input.Keywords,
		States:      input.States,
		TenderTypes: input.TenderTypes,
		MinValue:    input.MinValue,
		MaxValue:    input.MaxValue,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewFilterRepository()
		if err := repo.DeactivateFiltersByUser(ctx, userID, now); err != nil {
			return errors.Wrap(err, "failed to deactivate previous filters")
		}

		return repo.CreateFilter(ctx, filter)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filter")
	}

	return filter, nil
}

// GetFilters returns all filters of the user, newest first.
func (s *filterService) GetFilters(ctx context.Context, userID uuid.UUID) ([]*entity.Filter, error) {
	filters, err := s.filterRepo.FindFiltersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find filters")
	}

	return filters, nil
}

// GetActiveFilter returns the user's single active filter.
func (s *filterService) GetActiveFilter(ctx context.Context, userID uuid.UUID) (*entity.Filter, error) {
	filter, err := s.filterRepo.FindActiveFilterByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, domainerrors.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find active filter")
	}

	return filter, nil
}

// UpdateFilter replaces the filter's fields, enforcing ownership and the
// single-active invariant.
func (s *filterService) UpdateFilter(ctx context.Context, userID, filterID uuid.UUID, input usecase.UpdateFilterInput) (*entity.Filter, error) {
	if err := validateValueRange(input.MinValue, input.MaxValue); err != nil {
		return nil, err
	}

	existing, err := s.findOwnedFilter(ctx, userID, filterID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := &entity.Filter{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Keywords:    input.Keywords,
		States:      input.States,
		TenderTypes: input.TenderTypes,
		MinValue:    input.MinValue,
		MaxValue:    input.MaxValue,
		IsActive:    input.IsActive,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewFilterRepository()
		if updated.IsActive {
			if err := repo.DeactivateFiltersByUser(ctx, userID, now); err != nil {
				return errors.Wrap(err, "failed to deactivate previous filters")
			}
		}

		return repo.UpdateFilter(ctx, updated)
	})
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, domainerrors.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to update filter")
	}

	return updated, nil
}

// DeleteFilter removes a filter owned by the user.
func (s *filterService) DeleteFilter(ctx context.Context, userID, filterID uuid.UUID) error {
	if _, err := s.findOwnedFilter(ctx, userID, filterID); err != nil {
		return err
	}

	if err := s.filterRepo.DeleteFilter(ctx, filterID); err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return domainerrors.ErrFilterNotFound
		}

		return errors.Wrap(err, "failed to delete filter")
	}

	return nil
}

func (s *filterService) findOwnedFilter(ctx context.Context, userID, filterID uuid.UUID) (*entity.Filter, error) {
	filter, err := s.filterRepo.FindFilterByID(ctx, filterID)
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, domainerrors.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find filter")
	}
	if filter.UserID != userID {
		return nil, domainerrors.ErrFilterOwnershipViolation
	}

	return filter, nil
}

func validateValueRange(minValue, maxValue *int64) error {
	if minValue != nil && maxValue != nil && *minValue > *maxValue {
		return domainerrors.ErrInvalidValueRange
	}

	return nil
}
