package handler

import (
	"testing"
	"time"

	"editais/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortableTenders() []*entity.Tender {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	value := func(v int64) *int64 { return &v }

	return []*entity.Tender{
		{ID: "a", Agency: "Prefeitura de Águas Claras", UF: "SP", PublicationDate: day(10), EstimatedValue: value(300_000_00)},
		{ID: "b", Agency: "Prefeitura de Abadia", UF: "CE", PublicationDate: day(12), EstimatedValue: nil},
		{ID: "c", Agency: "Secretaria de Educação", UF: "BA", PublicationDate: day(11), EstimatedValue: value(100_000_00)},
	}
}

func sortedIDs(tenders []*entity.Tender) []string {
	ids := make([]string, len(tenders))
	for i, t := range tenders {
		ids[i] = t.ID
	}

	return ids
}

func TestSortTenders_DefaultNewestFirst(t *testing.T) {
	tenders := sortableTenders()
	sortTenders(tenders, "", "")

	assert.Equal(t, []string{"b", "c", "a"}, sortedIDs(tenders))
}

func TestSortTenders_PublicationDateAscending(t *testing.T) {
	tenders := sortableTenders()
	sortTenders(tenders, "publicationDate", "asc")

	assert.Equal(t, []string{"a", "c", "b"}, sortedIDs(tenders))
}

func TestSortTenders_EstimatedValueTreatsNilAsZero(t *testing.T) {
	tenders := sortableTenders()
	sortTenders(tenders, "estimatedValue", "asc")

	require.Equal(t, []string{"b", "c", "a"}, sortedIDs(tenders))

	sortTenders(tenders, "estimatedValue", "desc")
	assert.Equal(t, []string{"a", "c", "b"}, sortedIDs(tenders))
}

func TestSortTenders_AgencyUsesPortugueseCollation(t *testing.T) {
	tenders := sortableTenders()
	sortTenders(tenders, "agency", "asc")

	// "Águas" collates with "A"; naive byte order would push it past "Secretaria".
	assert.Equal(t, []string{"b", "a", "c"}, sortedIDs(tenders))
}

func TestSortTenders_UF(t *testing.T) {
	tenders := sortableTenders()
	sortTenders(tenders, "uf", "asc")

	assert.Equal(t, []string{"c", "b", "a"}, sortedIDs(tenders))
}
