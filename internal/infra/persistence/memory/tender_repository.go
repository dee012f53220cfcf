package memory

import (
	"context"
	"strings"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"
)

type tenderRepository struct {
	store *Store
	inTx  bool
}

// NewTenderRepository creates a tender repository backed by the store.
func NewTenderRepository(store *Store) repository.TenderRepository {
	return &tenderRepository{store: store}
}

func (r *tenderRepository) FindTenderByID(_ context.Context, id string) (*entity.Tender, error) {
	defer r.store.lock(r.inTx)()

	tender, ok := r.store.tenders[id]
	if !ok {
		return nil, repository.ErrTenderNotFound
	}

	return cloneTender(tender), nil
}

func (r *tenderRepository) ListTenders(_ context.Context) ([]*entity.Tender, error) {
	defer r.store.lock(r.inTx)()

	tenders := make([]*entity.Tender, 0, len(r.store.tenders))
	for _, tender := range r.store.tenders {
		tenders = append(tenders, cloneTender(tender))
	}

	return tenders, nil
}

func (r *tenderRepository) UpsertTender(_ context.Context, tender *entity.Tender) error {
	defer r.store.lock(r.inTx)()

	r.store.tenders[tender.ID] = cloneTender(tender)

	return nil
}

func (r *tenderRepository) UpsertTenders(_ context.Context, tenders []*entity.Tender) (int, error) {
	defer r.store.lock(r.inTx)()

	count := 0
	for _, tender := range tenders {
		if tender.ID == "" {
			continue
		}
		r.store.tenders[tender.ID] = cloneTender(tender)
		count++
	}

	return count, nil
}

func (r *tenderRepository) SearchTenders(_ context.Context, criteria repository.SearchCriteria) ([]*entity.Tender, error) {
	defer r.store.lock(r.inTx)()

	var matches []*entity.Tender
	for _, tender := range r.store.tenders {
		if matchesCriteria(tender, criteria) {
			matches = append(matches, cloneTender(tender))
		}
	}

	return matches, nil
}

func (r *tenderRepository) CountTenders(_ context.Context) (int64, error) {
	defer r.store.lock(r.inTx)()

	return int64(len(r.store.tenders)), nil
}

func (r *tenderRepository) SumEstimatedValue(_ context.Context) (int64, error) {
	defer r.store.lock(r.inTx)()

	var total int64
	for _, tender := range r.store.tenders {
		if tender.EstimatedValue != nil {
			total += *tender.EstimatedValue
		}
	}

	return total, nil
}

// matchesCriteria applies the populated predicates in a fixed order:
// keywords, states, tender types, value bounds, then date bounds.
func matchesCriteria(tender *entity.Tender, criteria repository.SearchCriteria) bool {
	if terms := criteria.KeywordTerms(); len(terms) > 0 && !matchesKeywords(tender, terms) {
		return false
	}

	if len(criteria.States) > 0 && !containsState(criteria.States, tender.UF) {
		return false
	}

	if len(criteria.TenderTypes) > 0 && !matchesTenderTypes(tender.Modality, criteria.TenderTypes) {
		return false
	}

	// Tenders without a value never satisfy a value bound, on either side.
	if criteria.MinValue != nil && (tender.EstimatedValue == nil || *tender.EstimatedValue < *criteria.MinValue) {
		return false
	}
	if criteria.MaxValue != nil && (tender.EstimatedValue == nil || *tender.EstimatedValue > *criteria.MaxValue) {
		return false
	}

	if criteria.StartDate != nil && tender.PublicationDate.Before(*criteria.StartDate) {
		return false
	}
	if criteria.EndDate != nil && tender.PublicationDate.After(*criteria.EndDate) {
		return false
	}

	return true
}

// matchesKeywords reports whether any term occurs in the title, description
// or agency, case-insensitively.
func matchesKeywords(tender *entity.Tender, terms []string) bool {
	title := strings.ToLower(tender.Title)
	agency := strings.ToLower(tender.Agency)
	description := ""
	if tender.Description != nil {
		description = strings.ToLower(*tender.Description)
	}

	for _, term := range terms {
		needle := strings.ToLower(term)
		if strings.Contains(title, needle) ||
			strings.Contains(description, needle) ||
			strings.Contains(agency, needle) {
			return true
		}
	}

	return false
}

func matchesTenderTypes(modality string, types []string) bool {
	haystack := strings.ToLower(modality)
	for _, tenderType := range types {
		if strings.Contains(haystack, strings.ToLower(tenderType)) {
			return true
		}
	}

	return false
}

// UF codes match exactly; the vocabulary is fixed two-letter uppercase.
func containsState(states []string, uf string) bool {
	for _, state := range states {
		if state == uf {
			return true
		}
	}

	return false
}
