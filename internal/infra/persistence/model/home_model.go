package model

import "github.com/google/uuid"

// HomeModel mirrors the 'homes' table. The composite unique index on
// (user_id, address_text) is the dedup key for re-ingestion.
//
// CreatedAt/UpdatedAt are text, not timestamps: they carry the provider's
// vintage publication date, which may be an unparsable verbatim string.
// GORM's automatic time tracking is disabled for them.
type HomeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_homes_user_address"`
	AddressText  string    `gorm:"type:text;not null;uniqueIndex:idx_homes_user_address"`
	Latitude     *float64  `gorm:"type:double precision"`
	Longitude    *float64  `gorm:"type:double precision"`
	BuildingType string    `gorm:"type:varchar(20);not null"`
	YearBuilt    *int
	Bedrooms     *int
	Bathrooms    *float64 `gorm:"type:double precision"`
	CreatedAt    string   `gorm:"type:text;autoCreateTime:false"`
	UpdatedAt    string   `gorm:"type:text;autoUpdateTime:false"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (HomeModel) TableName() string {
	return "homes"
}
