package service

import (
	"context"

	"editais/internal/domain/entity"
)

// AlertSender delivers a batch of tenders to a user through an
// out-of-band channel such as a webhook.
type AlertSender interface {
	SendAlert(ctx context.Context, userEmail string, tenders []*entity.Tender) error
}
