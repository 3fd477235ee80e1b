package model

import (
	"time"

	"github.com/google/uuid"
)

// RawPropertyModel mirrors the 'raw_properties' table. Rows are append-only.
// RawJSON is text rather than jsonb so the archived payload stays byte-for-byte
// identical to what the provider returned.
type RawPropertyModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	HomeID    *uuid.UUID `gorm:"type:uuid;index"`
	Source    string     `gorm:"type:varchar(50);not null"`
	RawJSON   string     `gorm:"column:raw_json;type:text;not null"`
	CreatedAt time.Time

	Home *HomeModel `gorm:"foreignKey:HomeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RawPropertyModel) TableName() string {
	return "raw_properties"
}
