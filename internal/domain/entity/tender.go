// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// MockIDPrefix is the reserved id namespace for tenders produced by the demo
// generator. Real PNCP ids are composed from upstream keys and never carry it.
const MockIDPrefix = "mock-"

// Tender represents a public procurement notice in canonical form.
// Instances are created only by the PNCP normalizer or the demo generator and
// are immutable afterwards, except for FetchedAt which is refreshed by the
// store on every re-ingestion.
type Tender struct {
	ID              string    `json:"id"`              // Composite upstream key "<year>-<seq>-<control>", or a reserved mock id.
	Title           string    `json:"title"`           // Object of the procurement.
	Agency          string    `json:"agency"`          // Publishing government body (órgão).
	UF              string    `json:"uf"`              // Two-letter state code; "BR" when the source omits it.
	Modality        string    `json:"modality"`        // Procurement modality (Pregão Eletrônico, Concorrência, ...).
	PublicationDate time.Time `json:"publicationDate"` // Upstream publication instant.
	EstimatedValue  *int64    `json:"estimatedValue"`  // Estimated value; nil means unknown, zero is a valid estimate.
	Link            string    `json:"link"`            // Link to the tender details page.
	Description     *string   `json:"description"`     // Free text from the source object, truncated to 200 characters.
	FetchedAt       time.Time `json:"fetchedAt"`       // Ingestion instant, shared by every tender of one fetch batch.
}

// IsMock reports whether the tender was produced by the demo generator.
func (t *Tender) IsMock() bool {
	return strings.HasPrefix(t.ID, MockIDPrefix)
}

// BrazilianStates lists the 27 federative unit codes accepted in filters.
var BrazilianStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// TenderModalities is the fixed modality vocabulary used across the system.
var TenderModalities = []string{
	"Pregão Eletrônico",
	"Pregão Presencial",
	"Concorrência",
	"Tomada de Preços",
	"Convite",
	"Dispensa de Licitação",
	"Inexigibilidade",
	"Concurso",
	"Leilão",
}
