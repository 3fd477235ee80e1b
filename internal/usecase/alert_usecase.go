package usecase

import (
	"context"

	"housekeep/internal/domain/entity"
	"housekeep/internal/domain/service"

	"github.com/google/uuid"
)

// AlertUsecase defines the interface for weather-alert operations.
type AlertUsecase interface {
	// RecordAlert attaches a provider alert to a home. Recording the same
	// alert twice is a no-op; the boolean reports whether a new row was written.
	RecordAlert(ctx context.Context, homeID uuid.UUID, source string, alert *service.ProviderAlert) (bool, error)

	// ListHomeAlerts returns all alerts recorded for a home, newest first.
	ListHomeAlerts(ctx context.Context, homeID uuid.UUID) ([]*entity.Alert, error)
}
