package impl

import (
	"context"
	"log/slog"
	"time"

	"editais/config"
	"editais/internal/domain/entity"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/domain/repository"
	"editais/internal/domain/service"
	"editais/internal/infra/demo"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultFallbackCount = 15

type tenderService struct {
	tenderRepo repository.TenderRepository
	filterRepo repository.FilterRepository
	alertRepo  repository.AlertHistoryRepository
	source     service.TenderSource
	config     *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// TenderServiceParams holds dependencies for TenderService, injected by Fx.
type TenderServiceParams struct {
	fx.In

	TenderRepo repository.TenderRepository
	FilterRepo repository.FilterRepository
	AlertRepo  repository.AlertHistoryRepository
	Source     service.TenderSource
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTenderService creates a new tender service instance
func NewTenderService(params TenderServiceParams) usecase.TenderUsecase {
	return &tenderService{
		tenderRepo: params.TenderRepo,
		filterRepo: params.FilterRepo,
		alertRepo:  params.AlertRepo,
		source:     params.Source,
		config:     params.Config,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// SearchTenders returns the tenders matching every populated criterion.
func (s *tenderService) SearchTenders(ctx context.Context, input usecase.SearchTendersInput) ([]*entity.Tender, error) {
	if input.MinValue != nil && input.MaxValue != nil && *input.MinValue > *input.MaxValue {
		return nil, domainerrors.ErrInvalidValueRange
	}
	if input.StartDate != nil && input.EndDate != nil && input.StartDate.After(*input.EndDate) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	tenders, err := s.tenderRepo.SearchTenders(ctx, repository.SearchCriteria{
		Keywords:    input.Keywords,
		States:      input.States,
		TenderTypes: input.TenderTypes,
		MinValue:    input.MinValue,
		MaxValue:    input.MaxValue,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search tenders")
	}

	return tenders, nil
}

// GetTender returns one tender by id.
func (s *tenderService) GetTender(ctx context.Context, id string) (*entity.Tender, error) {
	tender, err := s.tenderRepo.FindTenderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenderNotFound) {
			return nil, domainerrors.ErrTenderNotFound
		}

		return nil, errors.Wrap(err, "failed to find tender")
	}

	return tender, nil
}

// Refresh fetches the yesterday-to-today window from the upstream source,
// falls back to synthetic tenders when the fetch fails or comes back empty,
// and commits the batch in one upsert. Only the store write can fail.
func (s *tenderService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	now := s.now()
	start, end := refreshWindow(now)

	tenders, err := s.source.FetchTenders(ctx, service.FetchQuery{
		StartDate: start,
		EndDate:   end,
		UF:        input.UF,
		Keywords:  input.Keywords,
		Status:    input.Status,
	})

	fallback := false
	if err != nil || len(tenders) == 0 {
		if err != nil {
			s.logger.WarnContext(ctx, "upstream fetch failed, using synthetic fallback",
				slog.String("error", err.Error()))
		} else {
			s.logger.InfoContext(ctx, "upstream returned no tenders, using synthetic fallback")
		}
		tenders = demo.GenerateTenders(s.fallbackCount(), now)
		fallback = true
	}

	// One shared ingestion instant for the whole batch.
	fetchedAt := s.now()
	for _, tender := range tenders {
		tender.FetchedAt = fetchedAt
	}

	count, err := s.tenderRepo.UpsertTenders(ctx, tenders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to commit refreshed tenders")
	}

	s.logger.InfoContext(ctx, "refresh completed",
		slog.Int("count", count),
		slog.Bool("fallback", fallback))

	return &usecase.RefreshOutput{
		Tenders:  tenders,
		Count:    count,
		Fallback: fallback,
	}, nil
}

// GetStats returns the dashboard counters.
func (s *tenderService) GetStats(ctx context.Context, userID uuid.UUID) (*usecase.StatsOutput, error) {
	totalTenders, err := s.tenderRepo.CountTenders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tenders")
	}

	totalValue, err := s.tenderRepo.SumEstimatedValue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum estimated values")
	}

	histories, err := s.alertRepo.FindAlertHistoryByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alert history")
	}

	activeFilters := 0
	if _, err := s.filterRepo.FindActiveFilterByUser(ctx, userID); err == nil {
		activeFilters = 1
	} else if !errors.Is(err, repository.ErrFilterNotFound) {
		return nil, errors.Wrap(err, "failed to find active filter")
	}

	return &usecase.StatsOutput{
		TotalTenders:  totalTenders,
		TotalValue:    totalValue,
		AlertsSent:    int64(len(histories)),
		ActiveFilters: activeFilters,
	}, nil
}

func (s *tenderService) fallbackCount() int {
	if s.config.Mock != nil && s.config.Mock.FallbackCount > 0 {
		return s.config.Mock.FallbackCount
	}

	return defaultFallbackCount
}

// refreshWindow computes the default fetch window: yesterday 00:00 to today
// 00:00, calendar-day granularity in the process's local clock.
func refreshWindow(now time.Time) (start, end time.Time) {
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = end.AddDate(0, 0, -1)

	return start, end
}
