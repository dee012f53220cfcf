package repository

import (
	"context"
	"strings"
	"time"

	"editais/internal/domain/entity"
	"editais/internal/errors"
)

// ErrTenderNotFound is returned when no tender matches the given id.
var ErrTenderNotFound = errors.New("tender not found")

// SearchCriteria narrows a tender listing. Zero-valued fields do not
// constrain; all populated fields must match for a tender to be included.
type SearchCriteria struct {
	// Keywords is a comma-separated list of terms. A tender matches when any
	// term appears in its title, description or agency, case-insensitively.
	Keywords string
	// States restricts to tenders whose UF is in the set.
	States []string
	// TenderTypes restricts to tenders whose modality contains any of the
	// given type names, case-insensitively.
	TenderTypes []string
	// MinValue and MaxValue bound the estimated value in whole reais. Tenders
	// without an estimated value never satisfy a bound.
	MinValue *int64
	MaxValue *int64
	// StartDate and EndDate bound the publication date, inclusive.
	StartDate *time.Time
	EndDate   *time.Time
}

// KeywordTerms splits the comma-separated keyword list into trimmed,
// non-empty terms.
func (c SearchCriteria) KeywordTerms() []string {
	if c.Keywords == "" {
		return nil
	}
	parts := strings.Split(c.Keywords, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// TenderRepository defines tender persistence operations
type TenderRepository interface {
	// FindTenderByID returns the tender with the given id, or ErrTenderNotFound.
	FindTenderByID(ctx context.Context, id string) (*entity.Tender, error)
	// ListTenders returns all stored tenders.
	ListTenders(ctx context.Context) ([]*entity.Tender, error)
	// UpsertTender inserts the tender or replaces the stored one with the same id.
	UpsertTender(ctx context.Context, tender *entity.Tender) error
	// UpsertTenders inserts or replaces the given tenders in one batch and
	// returns the number persisted. Tenders with an empty id are skipped.
	UpsertTenders(ctx context.Context, tenders []*entity.Tender) (int, error)
	// SearchTenders returns the tenders matching all populated criteria fields.
	SearchTenders(ctx context.Context, criteria SearchCriteria) ([]*entity.Tender, error)
	// CountTenders returns the number of stored tenders.
	CountTenders(ctx context.Context) (int64, error)
	// SumEstimatedValue returns the total of all known estimated values in reais.
	SumEstimatedValue(ctx context.Context) (int64, error)
}
