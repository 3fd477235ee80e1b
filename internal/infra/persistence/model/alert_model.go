package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel mirrors the 'alerts' table. The composite unique index on
// (home_id, external_ref) makes repeated polling of an unchanged alert a no-op.
type AlertModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	HomeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_alerts_home_ref"`
	Source      string    `gorm:"type:varchar(50);not null"`
	ExternalRef string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_alerts_home_ref"`
	Event       string    `gorm:"type:varchar(255)"`
	Severity    string    `gorm:"type:varchar(50)"`
	Headline    string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Effective   *time.Time
	Expires     *time.Time
	CreatedAt   time.Time

	Home *HomeModel `gorm:"foreignKey:HomeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
