// Package model holds the GORM table mappings for the persistence layer.
package model

import "time"

// TenderModel mirrors the 'tenders' table. The primary key is the composite
// id derived from the upstream record, so re-ingesting the same notice
// upserts in place.
type TenderModel struct {
	ID              string `gorm:"type:varchar(255);primaryKey"`
	Title           string `gorm:"type:text;not null"`
	Agency          string `gorm:"type:varchar(255);not null"`
	UF              string `gorm:"column:uf;type:varchar(2);not null;index"`
	Modality        string `gorm:"type:varchar(100);not null;index"`
	PublicationDate time.Time `gorm:"not null;index"`
	EstimatedValue  *int64
	Link            string  `gorm:"type:text;not null"`
	Description     *string `gorm:"type:varchar(200)"`
	FetchedAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TenderModel) TableName() string {
	return "tenders"
}
