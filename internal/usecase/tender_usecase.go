package usecase

import (
	"context"
	"time"

	"editais/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchTendersInput carries the search criteria from the delivery layer.
type SearchTendersInput struct {
	Keywords    string
	States      []string
	TenderTypes []string
	MinValue    *int64
	MaxValue    *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// RefreshInput optionally narrows the upstream fetch. The date window is
// always the default yesterday-to-today range.
type RefreshInput struct {
	UF       string
	Keywords string
	Status   string
}

// RefreshOutput reports the outcome of one refresh run.
type RefreshOutput struct {
	Tenders []*entity.Tender
	Count   int
	// Fallback is true when the synthetic dataset replaced an empty or
	// failed upstream fetch.
	Fallback bool
}

// StatsOutput aggregates the dashboard counters.
type StatsOutput struct {
	TotalTenders  int64
	TotalValue    int64
	AlertsSent    int64
	ActiveFilters int
}

// TenderUsecase defines the interface for tender management use cases
type TenderUsecase interface {
	// SearchTenders returns the tenders matching every populated criterion.
	SearchTenders(ctx context.Context, input SearchTendersInput) ([]*entity.Tender, error)

	// GetTender returns one tender by id.
	GetTender(ctx context.Context, id string) (*entity.Tender, error)

	// Refresh fetches the latest published tenders and commits them to the
	// store. Upstream failure or an empty result triggers the synthetic
	// fallback; only the store write can fail.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// GetStats returns the dashboard counters, scoped to the user where
	// the counter is user-owned (alerts, filters).
	GetStats(ctx context.Context, userID uuid.UUID) (*StatsOutput, error)
}
