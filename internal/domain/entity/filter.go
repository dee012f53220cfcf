package entity

import (
	"time"

	"github.com/google/uuid"
)

// Filter is a named search configuration owned by one user. List-valued
// criteria are stored comma-joined, mirroring how the dashboard submits them.
//
// Invariant: at most one filter per user has IsActive set. Creating a new
// active filter deactivates every other filter of that user in the same
// transaction.
type Filter struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Keywords    string    `json:"keywords"`    // Comma-joined search terms.
	States      string    `json:"states"`      // Comma-joined UF codes.
	TenderTypes string    `json:"tenderTypes"` // Comma-joined modality strings.
	MinValue    *int64    `json:"minValue"`    // Lower estimated-value bound; nil means unbounded.
	MaxValue    *int64    `json:"maxValue"`    // Upper estimated-value bound; nil means unbounded.
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
