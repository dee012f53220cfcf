package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert send outcomes recorded in the history.
const (
	AlertStatusSuccess = "success"
	AlertStatusFailed  = "failed"
)

// AlertHistory is an append-only record of one alert-send attempt. Exactly one
// row is written per attempt, success or failure; rows are never mutated.
type AlertHistory struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	TenderCount int       `json:"tenderCount"` // Number of tenders delivered; zero for failed sends.
	Status      string    `json:"status"`      // AlertStatusSuccess or AlertStatusFailed.
	SentAt      time.Time `json:"sentAt"`
}
