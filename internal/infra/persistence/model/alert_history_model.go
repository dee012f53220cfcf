package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertHistoryModel mirrors the 'alert_histories' table. Rows are append-only.
type AlertHistoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TenderCount int       `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	SentAt      time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AlertHistoryModel) TableName() string {
	return "alert_histories"
}
