package model

import (
	"time"

	"github.com/google/uuid"
)

// FilterModel mirrors the 'filters' table. Ids are generated by the
// application so the same filter round-trips through any backend.
type FilterModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Keywords    string    `gorm:"type:text"`
	States      string    `gorm:"type:text"`
	TenderTypes string    `gorm:"type:text"`
	MinValue    *int64
	MaxValue    *int64
	IsActive    bool `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FilterModel) TableName() string {
	return "filters"
}
