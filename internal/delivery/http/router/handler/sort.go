package handler

import (
	"sort"

	"editais/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sortable fields for the tender listing.
const (
	sortByPublicationDate = "publicationDate"
	sortByEstimatedValue  = "estimatedValue"
	sortByAgency          = "agency"
	sortByUF              = "uf"
)

// sortTenders orders the listing in place. Sorting is presentation-layer
// post-processing: publication date by instant, estimated value numerically
// with absent values compared as zero, agency and UF with Brazilian
// Portuguese collation. Default order is newest publication first.
func sortTenders(tenders []*entity.Tender, sortBy, sortDir string) {
	if sortBy == "" {
		sortBy = sortByPublicationDate
	}
	desc := sortDir == "desc" || (sortDir == "" && sortBy == sortByPublicationDate)

	var less func(a, b *entity.Tender) bool
	switch sortBy {
	case sortByEstimatedValue:
		less = func(a, b *entity.Tender) bool {
			return valueOrZero(a) < valueOrZero(b)
		}
	case sortByAgency:
		collator := collate.New(language.BrazilianPortuguese)
		less = func(a, b *entity.Tender) bool {
			return collator.CompareString(a.Agency, b.Agency) < 0
		}
	case sortByUF:
		collator := collate.New(language.BrazilianPortuguese)
		less = func(a, b *entity.Tender) bool {
			return collator.CompareString(a.UF, b.UF) < 0
		}
	default:
		less = func(a, b *entity.Tender) bool {
			return a.PublicationDate.Before(b.PublicationDate)
		}
	}

	sort.SliceStable(tenders, func(i, j int) bool {
		if desc {
			return less(tenders[j], tenders[i])
		}

		return less(tenders[i], tenders[j])
	})
}

func valueOrZero(t *entity.Tender) int64 {
	if t.EstimatedValue == nil {
		return 0
	}

	return *t.EstimatedValue
}
