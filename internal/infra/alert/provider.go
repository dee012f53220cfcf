package alert

import (
	"log/slog"

	"editais/config"
	"editais/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerWebhook = "webhook"
	providerLog     = "log"
)

// SenderParams holds dependencies for the AlertSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAlertSender creates an AlertSender based on configuration
func NewAlertSender(params SenderParams) (service.AlertSender, error) {
	cfg := params.Config.Alert
	logger := params.Logger

	// If alert delivery is not configured, fall back to log output
	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerLog {
		logger.Info("Alert delivery not configured, using log sender")

		return NewLogSender(logger), nil
	}

	switch cfg.Provider {
	case providerWebhook:
		if cfg.WebhookEndpoint == "" {
			return nil, errors.New("webhook endpoint is required for webhook provider")
		}
		logger.Info("Using webhook alert sender",
			slog.String("endpoint", cfg.WebhookEndpoint),
		)

		return NewWebhookSender(cfg.WebhookEndpoint, logger), nil

	default:
		return nil, errors.Errorf("unknown alert provider: %s", cfg.Provider)
	}
}

// Module provides the alert FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlertSender),
)
