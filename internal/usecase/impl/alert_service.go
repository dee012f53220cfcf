package impl

import (
	"context"
	"log/slog"
	"time"

	"editais/internal/domain/entity"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/domain/repository"
	"editais/internal/domain/service"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type alertService struct {
	tenderRepo repository.TenderRepository
	alertRepo  repository.AlertHistoryRepository
	userRepo   repository.UserRepository
	sender     service.AlertSender
	logger     *slog.Logger
	now        func() time.Time
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	TenderRepo repository.TenderRepository
	AlertRepo  repository.AlertHistoryRepository
	UserRepo   repository.UserRepository
	Sender     service.AlertSender
	Logger     *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		tenderRepo: params.TenderRepo,
		alertRepo:  params.AlertRepo,
		userRepo:   params.UserRepo,
		sender:     params.Sender,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// SendAlert resolves the requested tenders and delivers them to the user.
// Every attempt that reaches the sender leaves exactly one history row;
// a batch where no id resolves is rejected before any row is written.
func (s *alertService) SendAlert(ctx context.Context, userID uuid.UUID, input usecase.SendAlertInput) (*entity.AlertHistory, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	tenders := make([]*entity.Tender, 0, len(input.TenderIDs))
	for _, id := range input.TenderIDs {
		tender, err := s.tenderRepo.FindTenderByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrTenderNotFound) {
				s.logger.WarnContext(ctx, "skipping unknown tender in alert",
					slog.String("tenderId", id))

				continue
			}

			return nil, errors.Wrap(err, "failed to resolve tender")
		}
		tenders = append(tenders, tender)
	}

	if len(tenders) == 0 {
		return nil, domainerrors.ErrNoValidTenders
	}

	if err := s.sender.SendAlert(ctx, user.Email, tenders); err != nil {
		history := &entity.AlertHistory{
			ID:          uuid.New(),
			UserID:      userID,
			TenderCount: 0,
			Status:      entity.AlertStatusFailed,
			SentAt:      s.now(),
		}
		if recordErr := s.alertRepo.CreateAlertHistory(ctx, history); recordErr != nil {
			return nil, errors.Wrap(recordErr, "failed to record failed alert")
		}

		s.logger.ErrorContext(ctx, "alert delivery failed",
			slog.String("recipient", user.Email),
			slog.String("error", err.Error()))

		return history, domainerrors.ErrAlertSendFailed
	}

	history := &entity.AlertHistory{
		ID:          uuid.New(),
		UserID:      userID,
		TenderCount: len(tenders),
		Status:      entity.AlertStatusSuccess,
		SentAt:      s.now(),
	}
	if err := s.alertRepo.CreateAlertHistory(ctx, history); err != nil {
		return nil, errors.Wrap(err, "failed to record alert history")
	}

	return history, nil
}

// GetHistory returns the user's send attempts, most recent first.
func (s *alertService) GetHistory(ctx context.Context, userID uuid.UUID) ([]*entity.AlertHistory, error) {
	histories, err := s.alertRepo.FindAlertHistoryByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alert history")
	}

	return histories, nil
}
