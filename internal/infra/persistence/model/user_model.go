// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated application-side.
// The partial uniqueness on phone (at most one user per non-null phone) maps
// to a plain unique index because PostgreSQL treats NULLs as distinct.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	PhoneE164   *string   `gorm:"type:varchar(20);uniqueIndex"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
