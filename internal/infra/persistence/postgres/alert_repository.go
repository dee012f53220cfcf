package postgres

import (
	"context"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"
	"editais/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertHistoryRepository implements the repository.AlertHistoryRepository interface.
type alertHistoryRepository struct {
	db *gorm.DB
}

// NewAlertHistoryRepository is the constructor for alertHistoryRepository.
func NewAlertHistoryRepository(db *gorm.DB) repository.AlertHistoryRepository {
	return &alertHistoryRepository{
		db: db,
	}
}

// CreateAlertHistory appends one send-attempt record.
func (repo *alertHistoryRepository) CreateAlertHistory(ctx context.Context, history *entity.AlertHistory) error {
	historyM := fromAlertHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return errors.Wrap(err, "failed to create alert history")
	}

	return nil
}

// FindAlertHistoryByUser retrieves all records for a user, most recent first.
func (repo *alertHistoryRepository) FindAlertHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AlertHistory, error) {
	var historyModels []*model.AlertHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alert history by user")
	}

	histories := make([]*entity.AlertHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, toAlertHistoryDomain(historyM))
	}

	return histories, nil
}

// CountAlertHistories returns the total number of recorded send attempts.
func (repo *alertHistoryRepository) CountAlertHistories(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertHistoryModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count alert histories")
	}

	return count, nil
}

func fromAlertHistoryDomain(history *entity.AlertHistory) *model.AlertHistoryModel {
	return &model.AlertHistoryModel{
		ID:          history.ID,
		UserID:      history.UserID,
		TenderCount: history.TenderCount,
		Status:      history.Status,
		SentAt:      history.SentAt,
	}
}

func toAlertHistoryDomain(historyM *model.AlertHistoryModel) *entity.AlertHistory {
	return &entity.AlertHistory{
		ID:          historyM.ID,
		UserID:      historyM.UserID,
		TenderCount: historyM.TenderCount,
		Status:      historyM.Status,
		SentAt:      historyM.SentAt,
	}
}
