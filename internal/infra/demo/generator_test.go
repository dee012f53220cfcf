package demo

import (
	"strings"
	"testing"
	"time"

	"editais/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTenders_CountAndShape(t *testing.T) {
	now := time.Date(2025, 8, 29, 14, 30, 0, 0, time.Local)

	tenders := GenerateTenders(15, now)
	require.Len(t, tenders, 15)

	wantDate := time.Date(2025, 8, 28, 0, 0, 0, 0, time.Local)
	seen := make(map[string]bool)
	for _, tender := range tenders {
		assert.True(t, strings.HasPrefix(tender.ID, entity.MockIDPrefix))
		assert.True(t, tender.IsMock())
		assert.False(t, seen[tender.ID], "duplicate id %s", tender.ID)
		seen[tender.ID] = true

		assert.NotEmpty(t, tender.Title)
		assert.NotEmpty(t, tender.Agency)
		assert.Len(t, tender.UF, 2)
		assert.Contains(t, entity.TenderModalities, tender.Modality)
		assert.Equal(t, wantDate, tender.PublicationDate)
		require.NotNil(t, tender.EstimatedValue)
		assert.GreaterOrEqual(t, *tender.EstimatedValue, int64(minValueReais))
		assert.Less(t, *tender.EstimatedValue, int64(maxValueReais))
		require.NotNil(t, tender.Description)
		assert.Equal(t, now, tender.FetchedAt)
	}
}

func TestGenerateTenders_UniqueAcrossInvocations(t *testing.T) {
	first := GenerateTenders(5, time.Now())
	second := GenerateTenders(5, time.Now())

	ids := make(map[string]bool)
	for _, tender := range append(first, second...) {
		assert.False(t, ids[tender.ID], "duplicate id %s", tender.ID)
		ids[tender.ID] = true
	}
}

func TestGenerateTenders_ZeroCount(t *testing.T) {
	assert.Empty(t, GenerateTenders(0, time.Now()))
}
