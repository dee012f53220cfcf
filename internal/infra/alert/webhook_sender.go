// Package alert implements outbound alert delivery channels.
package alert

import (
	"context"
	"log/slog"
	"time"

	"editais/internal/domain/entity"
	"editais/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// webhookPayload is the JSON body posted to the configured endpoint.
type webhookPayload struct {
	Recipient string           `json:"recipient"`
	Subject   string           `json:"subject"`
	SentAt    string           `json:"sentAt"`
	Tenders   []*entity.Tender `json:"tenders"`
}

// webhookSender delivers alerts by posting the tender batch to an HTTP endpoint.
type webhookSender struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// NewWebhookSender creates an AlertSender that posts to the given endpoint.
func NewWebhookSender(endpoint string, logger *slog.Logger) service.AlertSender {
	return &webhookSender{
		endpoint: endpoint,
		client:   resty.New().SetTimeout(30 * time.Second),
		logger:   logger,
	}
}

// SendAlert posts the batch to the webhook endpoint.
func (s *webhookSender) SendAlert(ctx context.Context, userEmail string, tenders []*entity.Tender) error {
	payload := webhookPayload{
		Recipient: userEmail,
		Subject:   "Novos editais encontrados",
		SentAt:    time.Now().UTC().Format(time.RFC3339),
		Tenders:   tenders,
	}

	s.logger.Info("[Alert] Publishing alert",
		slog.String("endpoint", s.endpoint),
		slog.String("recipient", userEmail),
		slog.Int("tender_count", len(tenders)),
	)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.endpoint)
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.IsError() {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode())
	}

	s.logger.Info("[Alert] Alert published successfully",
		slog.String("recipient", userEmail),
	)

	return nil
}
