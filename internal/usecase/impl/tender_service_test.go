package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"editais/config"
	"editais/internal/domain/entity"
	domainerrors "editais/internal/domain/errors"
	"editais/internal/domain/service"
	"editais/internal/infra/persistence/memory"
	"editais/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTenderSource returns canned tenders or a canned error.
type stubTenderSource struct {
	tenders []*entity.Tender
	err     error
	gotQuery service.FetchQuery
}

func (s *stubTenderSource) FetchTenders(_ context.Context, query service.FetchQuery) ([]*entity.Tender, error) {
	s.gotQuery = query

	return s.tenders, s.err
}

func int64Ptr(v int64) *int64 { return &v }

func newTenderService(store *memory.Store, source service.TenderSource) *tenderService {
	svc := NewTenderService(TenderServiceParams{
		TenderRepo: memory.NewTenderRepository(store),
		FilterRepo: memory.NewFilterRepository(store),
		AlertRepo:  memory.NewAlertHistoryRepository(store),
		Source:     source,
		Config:     &config.Config{Mock: &config.MockConfig{FallbackCount: 15}},
		Logger:     slog.New(slog.DiscardHandler),
	})

	return svc.(*tenderService)
}

func sampleTender(id string) *entity.Tender {
	return &entity.Tender{
		ID:              id,
		Title:           "Construção de escola",
		Agency:          "Prefeitura",
		UF:              "GO",
		Modality:        "Pregão Eletrônico",
		PublicationDate: time.Now().AddDate(0, 0, -1),
		Link:            "https://pncp.gov.br/app/editais/" + id,
	}
}

func TestRefresh_CommitsUpstreamBatch(t *testing.T) {
	store := memory.NewStore()
	source := &stubTenderSource{tenders: []*entity.Tender{
		sampleTender("2025-1-a"),
		sampleTender("2025-2-b"),
	}}
	svc := newTenderService(store, source)

	out, err := svc.Refresh(context.Background(), usecase.RefreshInput{UF: "GO"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.False(t, out.Fallback)
	assert.Equal(t, "GO", source.gotQuery.UF)

	count, err := memory.NewTenderRepository(store).CountTenders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Every committed tender carries the same ingestion instant.
	assert.Equal(t, out.Tenders[0].FetchedAt, out.Tenders[1].FetchedAt)
}

func TestRefresh_FallsBackOnEmptyResult(t *testing.T) {
	store := memory.NewStore()
	svc := newTenderService(store, &stubTenderSource{})

	out, err := svc.Refresh(context.Background(), usecase.RefreshInput{})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, 15, out.Count)

	for _, tender := range out.Tenders {
		assert.True(t, strings.HasPrefix(tender.ID, entity.MockIDPrefix))
	}

	count, err := memory.NewTenderRepository(store).CountTenders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(15), count)
}

func TestRefresh_FallsBackOnFetchError(t *testing.T) {
	store := memory.NewStore()
	svc := newTenderService(store, &stubTenderSource{err: errors.New("upstream unavailable")})

	out, err := svc.Refresh(context.Background(), usecase.RefreshInput{})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, 15, out.Count)
}

func TestRefresh_WindowIsYesterdayToToday(t *testing.T) {
	source := &stubTenderSource{tenders: []*entity.Tender{sampleTender("2025-1-a")}}
	svc := newTenderService(memory.NewStore(), source)
	fixed := time.Date(2025, 8, 29, 14, 45, 0, 0, time.Local)
	svc.now = func() time.Time { return fixed }

	_, err := svc.Refresh(context.Background(), usecase.RefreshInput{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 8, 28, 0, 0, 0, 0, time.Local), source.gotQuery.StartDate)
	assert.Equal(t, time.Date(2025, 8, 29, 0, 0, 0, 0, time.Local), source.gotQuery.EndDate)
}

func TestSearchTenders_RejectsInvertedValueRange(t *testing.T) {
	svc := newTenderService(memory.NewStore(), &stubTenderSource{})

	_, err := svc.SearchTenders(context.Background(), usecase.SearchTendersInput{
		MinValue: int64Ptr(1000),
		MaxValue: int64Ptr(100),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidValueRange)
}

func TestSearchTenders_RejectsInvertedDateRange(t *testing.T) {
	svc := newTenderService(memory.NewStore(), &stubTenderSource{})

	later := time.Now()
	earlier := later.AddDate(0, 0, -3)
	_, err := svc.SearchTenders(context.Background(), usecase.SearchTendersInput{
		StartDate: &later,
		EndDate:   &earlier,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestGetTender_NotFound(t *testing.T) {
	svc := newTenderService(memory.NewStore(), &stubTenderSource{})

	_, err := svc.GetTender(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrTenderNotFound)
}

func TestGetStats_Counters(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userID := uuid.New()

	tenderRepo := memory.NewTenderRepository(store)
	valued := sampleTender("2025-1-a")
	valued.EstimatedValue = int64Ptr(1000)
	require.NoError(t, tenderRepo.UpsertTender(ctx, valued))
	require.NoError(t, tenderRepo.UpsertTender(ctx, sampleTender("2025-2-b")))

	alertRepo := memory.NewAlertHistoryRepository(store)
	require.NoError(t, alertRepo.CreateAlertHistory(ctx, &entity.AlertHistory{
		ID: uuid.New(), UserID: userID, TenderCount: 1,
		Status: entity.AlertStatusSuccess, SentAt: time.Now(),
	}))

	filterRepo := memory.NewFilterRepository(store)
	require.NoError(t, filterRepo.CreateFilter(ctx, &entity.Filter{
		ID: uuid.New(), UserID: userID, IsActive: true,
	}))

	svc := newTenderService(store, &stubTenderSource{})
	stats, err := svc.GetStats(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalTenders)
	assert.Equal(t, int64(1000), stats.TotalValue)
	assert.Equal(t, int64(1), stats.AlertsSent)
	assert.Equal(t, 1, stats.ActiveFilters)
}
