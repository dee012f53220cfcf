package usecase

import (
	"context"

	"editais/internal/domain/entity"

	"github.com/google/uuid"
)

// SendAlertInput identifies the tenders to deliver.
type SendAlertInput struct {
	TenderIDs []string
}

// AlertUsecase defines the interface for alert use cases
type AlertUsecase interface {
	// SendAlert resolves the tender ids, delivers them to the user and
	// records exactly one history row per attempt. A batch where no id
	// resolves is rejected without a history row.
	SendAlert(ctx context.Context, userID uuid.UUID, input SendAlertInput) (*entity.AlertHistory, error)

	// GetHistory returns the user's send attempts, most recent first.
	GetHistory(ctx context.Context, userID uuid.UUID) ([]*entity.AlertHistory, error)
}
