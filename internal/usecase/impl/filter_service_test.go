package impl

import (
	"context"
	"testing"

	domainerrors "editais/internal/domain/errors"
	"editais/internal/infra/persistence/memory"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilterService(store *memory.Store) usecase.FilterUsecase {
	return NewFilterService(FilterServiceParams{
		FilterRepo: memory.NewFilterRepository(store),
		TxManager:  memory.NewTransactionManager(store),
	})
}

func TestCreateFilter_SingleActiveInvariant(t *testing.T) {
	svc := newFilterService(memory.NewStore())
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{
		Keywords: "obras", IsActive: true,
	})
	require.NoError(t, err)

	second, err := svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{
		Keywords: "saúde", IsActive: true,
	})
	require.NoError(t, err)

	active, err := svc.GetActiveFilter(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	filters, err := svc.GetFilters(ctx, userID)
	require.NoError(t, err)
	require.Len(t, filters, 2)
	for _, filter := range filters {
		if filter.ID == first.ID {
			assert.False(t, filter.IsActive)
		}
	}
}

func TestCreateFilter_DeactivatesPriorFiltersUnconditionally(t *testing.T) {
	svc := newFilterService(memory.NewStore())
	ctx := context.Background()
	userID := uuid.New()

	prior, err := svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{
		Keywords: "obras", IsActive: true,
	})
	require.NoError(t, err)

	// Deactivation happens before the insert, even for an inactive filter.
	_, err = svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{
		Keywords: "saúde", IsActive: false,
	})
	require.NoError(t, err)

	_, err = svc.GetActiveFilter(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrFilterNotFound)

	filters, err := svc.GetFilters(ctx, userID)
	require.NoError(t, err)
	for _, filter := range filters {
		if filter.ID == prior.ID {
			assert.False(t, filter.IsActive)
		}
	}
}

func TestCreateFilter_RejectsInvertedValueRange(t *testing.T) {
	svc := newFilterService(memory.NewStore())

	_, err := svc.CreateFilter(context.Background(), uuid.New(), usecase.CreateFilterInput{
		MinValue: int64Ptr(500),
		MaxValue: int64Ptr(100),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidValueRange)
}

func TestUpdateFilter_ActivationDeactivatesOthers(t *testing.T) {
	svc := newFilterService(memory.NewStore())
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{
		Keywords: "obras", IsActive: true,
	})
	require.NoError(t, err)

	second, err := svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{
		Keywords: "saúde", IsActive: false,
	})
	require.NoError(t, err)

	_, err = svc.UpdateFilter(ctx, userID, second.ID, usecase.UpdateFilterInput{
		Keywords: "saúde", IsActive: true,
	})
	require.NoError(t, err)

	active, err := svc.GetActiveFilter(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	filters, err := svc.GetFilters(ctx, userID)
	require.NoError(t, err)
	for _, filter := range filters {
		if filter.ID == first.ID {
			assert.False(t, filter.IsActive)
		}
	}
}

func TestUpdateFilter_OwnershipEnforced(t *testing.T) {
	svc := newFilterService(memory.NewStore())
	ctx := context.Background()

	owner := uuid.New()
	filter, err := svc.CreateFilter(ctx, owner, usecase.CreateFilterInput{Keywords: "obras"})
	require.NoError(t, err)

	_, err = svc.UpdateFilter(ctx, uuid.New(), filter.ID, usecase.UpdateFilterInput{Keywords: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrFilterOwnershipViolation)

	err = svc.DeleteFilter(ctx, uuid.New(), filter.ID)
	assert.ErrorIs(t, err, domainerrors.ErrFilterOwnershipViolation)
}

func TestDeleteFilter_RemovesFilter(t *testing.T) {
	svc := newFilterService(memory.NewStore())
	ctx := context.Background()
	userID := uuid.New()

	filter, err := svc.CreateFilter(ctx, userID, usecase.CreateFilterInput{Keywords: "obras"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFilter(ctx, userID, filter.ID))

	err = svc.DeleteFilter(ctx, userID, filter.ID)
	assert.ErrorIs(t, err, domainerrors.ErrFilterNotFound)
}

func TestGetActiveFilter_NoneActive(t *testing.T) {
	svc := newFilterService(memory.NewStore())

	_, err := svc.GetActiveFilter(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrFilterNotFound)
}
