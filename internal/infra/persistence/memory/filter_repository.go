package memory

import (
	"context"
	"sort"
	"time"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"

	"github.com/google/uuid"
)

type filterRepository struct {
	store *Store
	inTx  bool
}

// NewFilterRepository creates a filter repository backed by the store.
func NewFilterRepository(store *Store) repository.FilterRepository {
	return &filterRepository{store: store}
}

func (r *filterRepository) CreateFilter(_ context.Context, filter *entity.Filter) error {
	defer r.store.lock(r.inTx)()

	r.store.filters[filter.ID] = cloneFilter(filter)

	return nil
}

func (r *filterRepository) FindFilterByID(_ context.Context, id uuid.UUID) (*entity.Filter, error) {
	defer r.store.lock(r.inTx)()

	filter, ok := r.store.filters[id]
	if !ok {
		return nil, repository.ErrFilterNotFound
	}

	return cloneFilter(filter), nil
}

func (r *filterRepository) FindFiltersByUser(_ context.Context, userID uuid.UUID) ([]*entity.Filter, error) {
	defer r.store.lock(r.inTx)()

	var filters []*entity.Filter
	for _, filter := range r.store.filters {
		if filter.UserID == userID {
			filters = append(filters, cloneFilter(filter))
		}
	}
	sort.Slice(filters, func(i, j int) bool {
		return filters[i].CreatedAt.After(filters[j].CreatedAt)
	})

	return filters, nil
}

func (r *filterRepository) FindActiveFilterByUser(_ context.Context, userID uuid.UUID) (*entity.Filter, error) {
	defer r.store.lock(r.inTx)()

	for _, filter := range r.store.filters {
		if filter.UserID == userID && filter.IsActive {
			return cloneFilter(filter), nil
		}
	}

	return nil, repository.ErrFilterNotFound
}

func (r *filterRepository) DeactivateFiltersByUser(_ context.Context, userID uuid.UUID, at time.Time) error {
	defer r.store.lock(r.inTx)()

	for _, filter := range r.store.filters {
		if filter.UserID == userID && filter.IsActive {
			filter.IsActive = false
			filter.UpdatedAt = at
		}
	}

	return nil
}

func (r *filterRepository) UpdateFilter(_ context.Context, filter *entity.Filter) error {
	defer r.store.lock(r.inTx)()

	if _, ok := r.store.filters[filter.ID]; !ok {
		return repository.ErrFilterNotFound
	}
	r.store.filters[filter.ID] = cloneFilter(filter)

	return nil
}

func (r *filterRepository) DeleteFilter(_ context.Context, id uuid.UUID) error {
	defer r.store.lock(r.inTx)()

	if _, ok := r.store.filters[id]; !ok {
		return repository.ErrFilterNotFound
	}
	delete(r.store.filters, id)

	return nil
}
