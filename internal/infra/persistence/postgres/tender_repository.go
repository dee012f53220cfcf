package postgres

import (
	"context"
	"strings"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"
	"editais/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tenderRepository implements the repository.TenderRepository interface.
type tenderRepository struct {
	db *gorm.DB
}

// NewTenderRepository is the constructor for tenderRepository.
func NewTenderRepository(db *gorm.DB) repository.TenderRepository {
	return &tenderRepository{
		db: db,
	}
}

// FindTenderByID retrieves a tender by its composite upstream id.
func (repo *tenderRepository) FindTenderByID(ctx context.Context, id string) (*entity.Tender, error) {
	var tenderM model.TenderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenderNotFound
		}

		return nil, errors.Wrap(err, "failed to find tender by ID")
	}

	return toTenderDomain(&tenderM), nil
}

// ListTenders retrieves every stored tender.
func (repo *tenderRepository) ListTenders(ctx context.Context) ([]*entity.Tender, error) {
	var tenderModels []*model.TenderModel

	if err := repo.db.WithContext(ctx).
		Find(&tenderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenders")
	}

	return toTenderDomainSlice(tenderModels), nil
}

// UpsertTender inserts the tender or replaces the row with the same id.
func (repo *tenderRepository) UpsertTender(ctx context.Context, tender *entity.Tender) error {
	tenderM := fromTenderDomain(tender)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(tenderM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert tender")
	}

	return nil
}

// UpsertTenders inserts or replaces the given tenders in one statement.
func (repo *tenderRepository) UpsertTenders(ctx context.Context, tenders []*entity.Tender) (int, error) {
	tenderModels := make([]*model.TenderModel, 0, len(tenders))
	for _, tender := range tenders {
		if tender.ID == "" {
			continue
		}
		tenderModels = append(tenderModels, fromTenderDomain(tender))
	}
	if len(tenderModels) == 0 {
		return 0, nil
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&tenderModels).Error; err != nil {
		return 0, errors.Wrap(err, "failed to upsert tenders")
	}

	return len(tenderModels), nil
}

// SearchTenders applies the populated criteria fields as SQL predicates.
func (repo *tenderRepository) SearchTenders(ctx context.Context, criteria repository.SearchCriteria) ([]*entity.Tender, error) {
	query := repo.db.WithContext(ctx).Model(&model.TenderModel{})

	if terms := criteria.KeywordTerms(); len(terms) > 0 {
		conditions := make([]string, 0, len(terms))
		args := make([]any, 0, len(terms)*3)
		for _, term := range terms {
			pattern := "%" + term + "%"
			conditions = append(conditions, "(title ILIKE ? OR description ILIKE ? OR agency ILIKE ?)")
			args = append(args, pattern, pattern, pattern)
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	if len(criteria.States) > 0 {
		query = query.Where("uf IN ?", criteria.States)
	}

	if len(criteria.TenderTypes) > 0 {
		conditions := make([]string, 0, len(criteria.TenderTypes))
		args := make([]any, 0, len(criteria.TenderTypes))
		for _, tenderType := range criteria.TenderTypes {
			conditions = append(conditions, "modality ILIKE ?")
			args = append(args, "%"+tenderType+"%")
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	// Tenders without a value never satisfy a value bound, on either side.
	if criteria.MinValue != nil {
		query = query.Where("estimated_value IS NOT NULL AND estimated_value >= ?", *criteria.MinValue)
	}
	if criteria.MaxValue != nil {
		query = query.Where("estimated_value IS NOT NULL AND estimated_value <= ?", *criteria.MaxValue)
	}

	if criteria.StartDate != nil {
		query = query.Where("publication_date >= ?", *criteria.StartDate)
	}
	if criteria.EndDate != nil {
		query = query.Where("publication_date <= ?", *criteria.EndDate)
	}

	var tenderModels []*model.TenderModel
	if err := query.Find(&tenderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search tenders")
	}

	return toTenderDomainSlice(tenderModels), nil
}

// CountTenders returns the number of stored tenders.
func (repo *tenderRepository) CountTenders(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TenderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tenders")
	}

	return count, nil
}

// SumEstimatedValue totals every known estimated value.
func (repo *tenderRepository) SumEstimatedValue(ctx context.Context) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TenderModel{}).
		Select("COALESCE(SUM(estimated_value), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum estimated values")
	}

	return total, nil
}

func fromTenderDomain(tender *entity.Tender) *model.TenderModel {
	return &model.TenderModel{
		ID:              tender.ID,
		Title:           tender.Title,
		Agency:          tender.Agency,
		UF:              tender.UF,
		Modality:        tender.Modality,
		PublicationDate: tender.PublicationDate,
		EstimatedValue:  tender.EstimatedValue,
		Link:            tender.Link,
		Description:     tender.Description,
		FetchedAt:       tender.FetchedAt,
	}
}

func toTenderDomain(tenderM *model.TenderModel) *entity.Tender {
	return &entity.Tender{
		ID:              tenderM.ID,
		Title:           tenderM.Title,
		Agency:          tenderM.Agency,
		UF:              tenderM.UF,
		Modality:        tenderM.Modality,
		PublicationDate: tenderM.PublicationDate,
		EstimatedValue:  tenderM.EstimatedValue,
		Link:            tenderM.Link,
		Description:     tenderM.Description,
		FetchedAt:       tenderM.FetchedAt,
	}
}

func toTenderDomainSlice(tenderModels []*model.TenderModel) []*entity.Tender {
	tenders := make([]*entity.Tender, 0, len(tenderModels))
	for _, tenderM := range tenderModels {
		tenders = append(tenders, toTenderDomain(tenderM))
	}

	return tenders
}
