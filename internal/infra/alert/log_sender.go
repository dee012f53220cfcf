package alert

import (
	"context"
	"log/slog"

	"editais/internal/domain/entity"
	"editais/internal/domain/service"
)

// logSender writes alerts to the log only. Default channel for local
// development where no webhook endpoint exists.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a log-only AlertSender.
func NewLogSender(logger *slog.Logger) service.AlertSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendAlert(ctx context.Context, userEmail string, tenders []*entity.Tender) error {
	s.logger.InfoContext(ctx, "[Alert] Delivering alert via log",
		slog.String("recipient", userEmail),
		slog.Int("tender_count", len(tenders)),
	)
	for _, tender := range tenders {
		s.logger.InfoContext(ctx, "[Alert] Tender",
			slog.String("id", tender.ID),
			slog.String("title", tender.Title),
			slog.String("uf", tender.UF),
		)
	}

	return nil
}
