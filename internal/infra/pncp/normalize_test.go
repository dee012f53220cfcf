package pncp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FullRecord(t *testing.T) {
	value := 150000.50
	rec := &record{
		NumeroControlePNCP: "00038174000143-1-000123/2025",
		AnoCompra:          2025,
		SequencialCompra:   123,
		UFSigla:            "GO",
		ModalidadeNome:     "Pregão Eletrônico",
		DataPublicacaoPncp: "2025-08-28T10:30:00",
		ValorEstimadoTotal: &value,
		ObjetoCompra:       "Contratação de serviços de topografia",
		LinkSistemaOrigem:  "https://example.gov.br/edital/123",
	}
	rec.OrgaoEntidade.RazaoSocial = "Prefeitura de Goiânia"

	fetchedAt := time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC)
	tender := normalize(rec, fetchedAt)

	assert.Equal(t, "2025-123-00038174000143-1-000123/2025", tender.ID)
	assert.Equal(t, "Contratação de serviços de topografia", tender.Title)
	assert.Equal(t, "Prefeitura de Goiânia", tender.Agency)
	assert.Equal(t, "GO", tender.UF)
	assert.Equal(t, "Pregão Eletrônico", tender.Modality)
	assert.Equal(t, time.Date(2025, 8, 28, 10, 30, 0, 0, time.UTC), tender.PublicationDate)
	require.NotNil(t, tender.EstimatedValue)
	// Rounded to whole reais.
	assert.Equal(t, int64(150001), *tender.EstimatedValue)
	assert.Equal(t, "https://example.gov.br/edital/123", tender.Link)
	require.NotNil(t, tender.Description)
	assert.Equal(t, "Contratação de serviços de topografia", *tender.Description)
	assert.Equal(t, fetchedAt, tender.FetchedAt)
}

func TestNormalize_EmptyRecordGetsPlaceholders(t *testing.T) {
	rec := &record{AnoCompra: 2025, SequencialCompra: 7, NumeroControlePNCP: "x"}
	fetchedAt := time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC)

	tender := normalize(rec, fetchedAt)

	assert.Equal(t, "Sem título", tender.Title)
	assert.Equal(t, "Órgão não especificado", tender.Agency)
	assert.Equal(t, "BR", tender.UF)
	assert.Equal(t, "Não especificada", tender.Modality)
	assert.Nil(t, tender.EstimatedValue)
	assert.Equal(t, "https://pncp.gov.br/app/editais/2025-7-x", tender.Link)
	require.NotNil(t, tender.Description)
	assert.Equal(t, "Sem descrição disponível", *tender.Description)
	// Unparseable date falls back to the previous day.
	assert.Equal(t, fetchedAt.AddDate(0, 0, -1), tender.PublicationDate)
}

func TestNormalize_TruncatesLongDescriptions(t *testing.T) {
	rec := &record{
		AnoCompra:          2025,
		SequencialCompra:   1,
		NumeroControlePNCP: "n",
		ObjetoCompra:       strings.Repeat("ção", 100),
	}

	tender := normalize(rec, time.Now())

	require.NotNil(t, tender.Description)
	assert.Equal(t, 200, len([]rune(*tender.Description)))
	// Title stays untruncated.
	assert.Equal(t, 300, len([]rune(tender.Title)))
}

func TestNormalize_ZeroValueIsKept(t *testing.T) {
	zero := 0.0
	rec := &record{
		AnoCompra:          2025,
		SequencialCompra:   2,
		NumeroControlePNCP: "n",
		ValorEstimadoTotal: &zero,
	}

	tender := normalize(rec, time.Now())

	require.NotNil(t, tender.EstimatedValue)
	assert.Equal(t, int64(0), *tender.EstimatedValue)
}

func TestParsePublicationDate_PlainDate(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)

	got := parsePublicationDate("2025-08-15", now)
	assert.Equal(t, time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), got)
}
