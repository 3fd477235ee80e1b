package repository

import (
	"context"
	"errors"

	"housekeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertExists is returned when an alert with the same external reference
// has already been recorded for the home.
var ErrAlertExists = errors.New("alert already recorded")

// AlertRepository defines the operations for weather-alert persistence.
type AlertRepository interface {
	// Create inserts a new alert. Returns ErrAlertExists when the same
	// (homeID, externalRef) pair has been recorded before.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByHome retrieves all alerts recorded for a home, newest first.
	FindByHome(ctx context.Context, homeID uuid.UUID) ([]*entity.Alert, error)
}
