// Package worker contains the background deliveries of the service.
package worker

import (
	"context"
	"log/slog"
	"time"

	"editais/config"
	"editais/internal/delivery"
	"editais/internal/usecase"

	"go.uber.org/fx"
)

const defaultRefreshHour = 8

// SchedulerParams holds dependencies for the refresh scheduler
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config        *config.Config
	Logger        *slog.Logger
	TenderUsecase usecase.TenderUsecase
}

// scheduler runs the tender refresh once a day at a configured local hour.
type scheduler struct {
	cfg           *config.Config
	logger        *slog.Logger
	tenderUsecase usecase.TenderUsecase
	done          chan struct{}
}

// NewScheduler creates the daily refresh delivery
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cfg:           params.Config,
		logger:        params.Logger,
		tenderUsecase: params.TenderUsecase,
		done:          make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve blocks running the daily refresh loop until shutdown.
func (s *scheduler) Serve(ctx context.Context) error {
	if s.cfg.Scheduler == nil || !s.cfg.Scheduler.Enabled {
		s.logger.Info("Refresh scheduler disabled")

		return nil
	}

	hour := s.cfg.Scheduler.Hour
	if hour < 0 || hour > 23 {
		hour = defaultRefreshHour
	}

	s.logger.Info("Starting refresh scheduler", slog.Int("hour", hour))

	timer := time.NewTimer(time.Until(nextRun(time.Now(), hour)))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.runRefresh(ctx)
			timer.Reset(time.Until(nextRun(time.Now(), hour)))
		case <-s.done:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *scheduler) runRefresh(ctx context.Context) {
	out, err := s.tenderUsecase.Refresh(ctx, usecase.RefreshInput{})
	if err != nil {
		s.logger.Error("Scheduled refresh failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Scheduled refresh finished",
		slog.Int("count", out.Count),
		slog.Bool("fallback", out.Fallback),
	)
}

func (s *scheduler) stop(ctx context.Context) error {
	close(s.done)

	return nil
}

// nextRun returns the next occurrence of hour o'clock strictly after now,
// in now's location.
func nextRun(now time.Time, hour int) time.Time {
	run := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !run.After(now) {
		run = run.AddDate(0, 0, 1)
	}

	return run
}
