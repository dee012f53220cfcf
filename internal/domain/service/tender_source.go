package service

import (
	"context"
	"time"

	"editais/internal/domain/entity"
)

// FetchQuery describes one upstream fetch window.
type FetchQuery struct {
	StartDate time.Time
	EndDate   time.Time
	UF        string // Optional two-letter state code.
	Keywords  string // Optional free-text search forwarded upstream.
	Status    string // Optional upstream status filter.
}

// TenderSource fetches published tenders from an upstream provider,
// already normalized into domain entities.
type TenderSource interface {
	FetchTenders(ctx context.Context, query FetchQuery) ([]*entity.Tender, error)
}
