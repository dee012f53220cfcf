package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"editais/internal/domain/entity"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/infra/persistence/memory"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAlertSender records the last delivery and optionally fails.
type stubAlertSender struct {
	err          error
	gotEmail     string
	gotTenderIDs []string
}

func (s *stubAlertSender) SendAlert(_ context.Context, userEmail string, tenders []*entity.Tender) error {
	s.gotEmail = userEmail
	s.gotTenderIDs = s.gotTenderIDs[:0]
	for _, tender := range tenders {
		s.gotTenderIDs = append(s.gotTenderIDs, tender.ID)
	}

	return s.err
}

func newAlertFixture(t *testing.T, sender *stubAlertSender) (*alertService, *memory.Store, uuid.UUID) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, memory.NewUserRepository(store).CreateUser(ctx, user))
	require.NoError(t, memory.NewTenderRepository(store).UpsertTender(ctx, sampleTender("2025-1-a")))

	svc := NewAlertService(AlertServiceParams{
		TenderRepo: memory.NewTenderRepository(store),
		AlertRepo:  memory.NewAlertHistoryRepository(store),
		UserRepo:   memory.NewUserRepository(store),
		Sender:     sender,
		Logger:     slog.New(slog.DiscardHandler),
	})

	return svc.(*alertService), store, user.ID
}

func TestSendAlert_Success(t *testing.T) {
	sender := &stubAlertSender{}
	svc, store, userID := newAlertFixture(t, sender)

	history, err := svc.SendAlert(context.Background(), userID, usecase.SendAlertInput{
		TenderIDs: []string{"2025-1-a"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusSuccess, history.Status)
	assert.Equal(t, 1, history.TenderCount)
	assert.Equal(t, "ana@example.com", sender.gotEmail)
	assert.Equal(t, []string{"2025-1-a"}, sender.gotTenderIDs)

	histories, err := memory.NewAlertHistoryRepository(store).FindAlertHistoryByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
}

func TestSendAlert_UnknownIDsAreSkipped(t *testing.T) {
	sender := &stubAlertSender{}
	svc, _, userID := newAlertFixture(t, sender)

	history, err := svc.SendAlert(context.Background(), userID, usecase.SendAlertInput{
		TenderIDs: []string{"nonexistent-1", "2025-1-a"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, history.TenderCount)
	assert.Equal(t, []string{"2025-1-a"}, sender.gotTenderIDs)
}

func TestSendAlert_NoResolvedTendersRejectedWithoutHistory(t *testing.T) {
	sender := &stubAlertSender{}
	svc, store, userID := newAlertFixture(t, sender)

	_, err := svc.SendAlert(context.Background(), userID, usecase.SendAlertInput{
		TenderIDs: []string{"nonexistent-1"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoValidTenders)

	histories, err := memory.NewAlertHistoryRepository(store).FindAlertHistoryByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestSendAlert_SenderFailureRecordsFailedRow(t *testing.T) {
	sender := &stubAlertSender{err: errors.New("webhook down")}
	svc, store, userID := newAlertFixture(t, sender)

	history, err := svc.SendAlert(context.Background(), userID, usecase.SendAlertInput{
		TenderIDs: []string{"2025-1-a"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlertSendFailed)
	require.NotNil(t, history)
	assert.Equal(t, entity.AlertStatusFailed, history.Status)
	assert.Equal(t, 0, history.TenderCount)

	histories, err := memory.NewAlertHistoryRepository(store).FindAlertHistoryByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, entity.AlertStatusFailed, histories[0].Status)
}

func TestGetHistory_NewestFirst(t *testing.T) {
	svc, store, userID := newAlertFixture(t, &stubAlertSender{})
	ctx := context.Background()

	repo := memory.NewAlertHistoryRepository(store)
	base := time.Now()
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.CreateAlertHistory(ctx, &entity.AlertHistory{
			ID: uuid.New(), UserID: userID, TenderCount: i,
			Status: entity.AlertStatusSuccess, SentAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	histories, err := svc.GetHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.Equal(t, 1, histories[0].TenderCount)
}
