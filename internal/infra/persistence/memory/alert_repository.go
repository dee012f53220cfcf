package memory

import (
	"context"
	"sort"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"

	"github.com/google/uuid"
)

type alertHistoryRepository struct {
	store *Store
	inTx  bool
}

// NewAlertHistoryRepository creates an alert-history repository backed by the store.
func NewAlertHistoryRepository(store *Store) repository.AlertHistoryRepository {
	return &alertHistoryRepository{store: store}
}

func (r *alertHistoryRepository) CreateAlertHistory(_ context.Context, history *entity.AlertHistory) error {
	defer r.store.lock(r.inTx)()

	r.store.alerts = append(r.store.alerts, cloneAlertHistory(history))

	return nil
}

func (r *alertHistoryRepository) FindAlertHistoryByUser(_ context.Context, userID uuid.UUID) ([]*entity.AlertHistory, error) {
	defer r.store.lock(r.inTx)()

	var histories []*entity.AlertHistory
	for _, history := range r.store.alerts {
		if history.UserID == userID {
			histories = append(histories, cloneAlertHistory(history))
		}
	}
	sort.Slice(histories, func(i, j int) bool {
		return histories[i].SentAt.After(histories[j].SentAt)
	})

	return histories, nil
}

func (r *alertHistoryRepository) CountAlertHistories(_ context.Context) (int64, error) {
	defer r.store.lock(r.inTx)()

	return int64(len(r.store.alerts)), nil
}
