package pncp

import (
	"fmt"
	"math"
	"time"

	"editais/internal/domain/entity"
)

const descriptionLimit = 200

// normalize converts one PNCP record into a canonical tender. Missing or
// blank upstream fields are replaced with fixed placeholders so that
// downstream consumers never see empty strings.
func normalize(rec *record, fetchedAt time.Time) *entity.Tender {
	id := fmt.Sprintf("%d-%d-%s", rec.AnoCompra, rec.SequencialCompra, rec.NumeroControlePNCP)

	title := rec.ObjetoCompra
	if title == "" {
		title = "Sem título"
	}

	agency := rec.OrgaoEntidade.RazaoSocial
	if agency == "" {
		agency = "Órgão não especificado"
	}

	uf := rec.UFSigla
	if uf == "" {
		uf = "BR"
	}

	modality := rec.ModalidadeNome
	if modality == "" {
		modality = "Não especificada"
	}

	link := rec.LinkSistemaOrigem
	if link == "" {
		link = "https://pncp.gov.br/app/editais/" + id
	}

	description := truncateRunes(rec.ObjetoCompra, descriptionLimit)
	if description == "" {
		description = "Sem descrição disponível"
	}

	return &entity.Tender{
		ID:              id,
		Title:           title,
		Agency:          agency,
		UF:              uf,
		Modality:        modality,
		PublicationDate: parsePublicationDate(rec.DataPublicacaoPncp, fetchedAt),
		EstimatedValue:  toWholeReais(rec.ValorEstimadoTotal),
		Link:            link,
		Description:     &description,
		FetchedAt:       fetchedAt,
	}
}

// parsePublicationDate accepts both the plain date and the timestamped
// variants PNCP emits. Unparseable dates fall back to the previous day so
// the tender still lands inside the daily refresh window.
func parsePublicationDate(raw string, now time.Time) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		dateLayout,
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return now.AddDate(0, 0, -1)
}

// toWholeReais rounds an upstream value to integer reais. Absent values
// stay absent rather than becoming zero.
func toWholeReais(reais *float64) *int64 {
	if reais == nil {
		return nil
	}
	rounded := int64(math.Round(*reais))

	return &rounded
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
