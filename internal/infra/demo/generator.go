// Package demo generates synthetic tenders used as a fallback dataset when
// the upstream source yields nothing. Generated data is structurally
// identical to real tenders but lives in a reserved id namespace.
package demo

import (
	"fmt"
	"math/rand/v2"
	"time"

	"editais/internal/domain/entity"
)

var (
	topics = []string{
		"Construção de escola municipal",
		"Aquisição de medicamentos para rede pública",
		"Reforma de hospital regional",
		"Contratação de serviços de limpeza urbana",
		"Pavimentação asfáltica de vias públicas",
		"Aquisição de equipamentos de informática",
		"Fornecimento de merenda escolar",
		"Manutenção de iluminação pública",
		"Aquisição de veículos para frota municipal",
		"Contratação de serviços de vigilância patrimonial",
		"Construção de unidade básica de saúde",
		"Serviços de engenharia para drenagem pluvial",
	}

	agencies = []string{
		"Prefeitura Municipal de Goiânia",
		"Secretaria de Estado da Saúde",
		"Secretaria Municipal de Educação",
		"Departamento Estadual de Infraestrutura",
		"Universidade Federal de Minas Gerais",
		"Tribunal de Justiça do Estado",
		"Secretaria de Administração Penitenciária",
		"Instituto Federal de Educação",
	}

	states = []string{"GO", "SP", "RJ", "MG", "BA", "RS", "PR", "PE", "CE", "DF"}
)

// Estimated values are whole reais, like the normalized upstream data.
const (
	minValueReais = 50_000
	maxValueReais = 5_000_000
)

// GenerateTenders produces count synthetic tenders dated to the previous
// calendar day. Ids carry the reserved mock prefix plus a timestamp so they
// never collide with normalized upstream ids, within or across invocations.
func GenerateTenders(count int, now time.Time) []*entity.Tender {
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -1)
	stamp := now.UnixNano()

	tenders := make([]*entity.Tender, 0, count)
	for i := 0; i < count; i++ {
		topic := topics[rand.IntN(len(topics))]
		value := minValueReais + rand.Int64N(maxValueReais-minValueReais)
		description := topic + " conforme especificações do edital."
		id := fmt.Sprintf("%s%d-%d", entity.MockIDPrefix, stamp, i)

		tenders = append(tenders, &entity.Tender{
			ID:              id,
			Title:           topic,
			Agency:          agencies[rand.IntN(len(agencies))],
			UF:              states[rand.IntN(len(states))],
			Modality:        entity.TenderModalities[rand.IntN(len(entity.TenderModalities))],
			PublicationDate: yesterday,
			EstimatedValue:  &value,
			Link:            "https://pncp.gov.br/app/editais/" + id,
			Description:     &description,
			FetchedAt:       now,
		})
	}

	return tenders
}
