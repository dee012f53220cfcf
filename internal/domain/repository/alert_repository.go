package repository

import (
	"context"

	"editais/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertHistoryRepository defines alert-history persistence operations
type AlertHistoryRepository interface {
	// CreateAlertHistory appends one send-attempt record.
	CreateAlertHistory(ctx context.Context, history *entity.AlertHistory) error
	// FindAlertHistoryByUser returns the user's records, most recent first.
	FindAlertHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AlertHistory, error)
	// CountAlertHistories returns the total number of recorded send attempts.
	CountAlertHistories(ctx context.Context) (int64, error)
}
