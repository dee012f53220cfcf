package postgres

import (
	"context"
	"time"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"
	"editais/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// filterRepository implements the repository.FilterRepository interface.
type filterRepository struct {
	db *gorm.DB
}

// NewFilterRepository is the constructor for filterRepository.
func NewFilterRepository(db *gorm.DB) repository.FilterRepository {
	return &filterRepository{
		db: db,
	}
}

// CreateFilter persists a new saved filter.
func (repo *filterRepository) CreateFilter(ctx context.Context, filter *entity.Filter) error {
	filterM := fromFilterDomain(filter)

	if err := repo.db.WithContext(ctx).Create(filterM).Error; err != nil {
		return errors.Wrap(err, "failed to create filter")
	}

	return nil
}

// FindFilterByID retrieves a filter by its unique ID.
func (repo *filterRepository) FindFilterByID(ctx context.Context, id uuid.UUID) (*entity.Filter, error) {
	var filterM model.FilterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&filterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find filter by ID")
	}

	return toFilterDomain(&filterM), nil
}

// FindFiltersByUser retrieves all filters for a specific user, newest first.
func (repo *filterRepository) FindFiltersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Filter, error) {
	var filterModels []*model.FilterModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&filterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find filters by user")
	}

	filters := make([]*entity.Filter, 0, len(filterModels))
	for _, filterM := range filterModels {
		filters = append(filters, toFilterDomain(filterM))
	}

	return filters, nil
}

// FindActiveFilterByUser retrieves the single active filter of a user.
func (repo *filterRepository) FindActiveFilterByUser(ctx context.Context, userID uuid.UUID) (*entity.Filter, error) {
	var filterM model.FilterModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&filterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find active filter by user")
	}

	return toFilterDomain(&filterM), nil
}

// DeactivateFiltersByUser marks every active filter of the user inactive.
func (repo *filterRepository) DeactivateFiltersByUser(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.FilterModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]any{"is_active": false, "updated_at": at}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate filters by user")
	}

	return nil
}

// UpdateFilter replaces a stored filter.
func (repo *filterRepository) UpdateFilter(ctx context.Context, filter *entity.Filter) error {
	filterM := fromFilterDomain(filter)

	result := repo.db.WithContext(ctx).
		Model(&model.FilterModel{}).
		Where("id = ?", filter.ID).
		Select("*").
		Updates(filterM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update filter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFilterNotFound
	}

	return nil
}

// DeleteFilter removes a filter by id.
func (repo *filterRepository) DeleteFilter(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FilterModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete filter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFilterNotFound
	}

	return nil
}

func fromFilterDomain(filter *entity.Filter) *model.FilterModel {
	return &model.FilterModel{
		ID:          filter.ID,
		UserID:      filter.UserID,
		Keywords:    filter.Keywords,
		States:      filter.States,
		TenderTypes: filter.TenderTypes,
		MinValue:    filter.MinValue,
		MaxValue:    filter.MaxValue,
		IsActive:    filter.IsActive,
		CreatedAt:   filter.CreatedAt,
		UpdatedAt:   filter.UpdatedAt,
	}
}

func toFilterDomain(filterM *model.FilterModel) *entity.Filter {
	return &entity.Filter{
		ID:          filterM.ID,
		UserID:      filterM.UserID,
		Keywords:    filterM.Keywords,
		States:      filterM.States,
		TenderTypes: filterM.TenderTypes,
		MinValue:    filterM.MinValue,
		MaxValue:    filterM.MaxValue,
		IsActive:    filterM.IsActive,
		CreatedAt:   filterM.CreatedAt,
		UpdatedAt:   filterM.UpdatedAt,
	}
}
