package impl

import (
	"context"
	"log/slog"

	"housekeep/internal/domain/entity"
	domainerrors "housekeep/internal/domain/errors"
	"housekeep/internal/domain/repository"
	"housekeep/internal/domain/service"
	"housekeep/internal/observability"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// alertService implements the AlertUsecase interface.
// Alerts live outside the ingestion transaction scope, so the service works
// against plain repositories instead of the transaction manager.
type alertService struct {
	alertRepo repository.AlertRepository
	homeRepo  repository.HomeRepository
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(
	alertRepo repository.AlertRepository,
	homeRepo repository.HomeRepository,
	metrics *observability.Metrics,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
		homeRepo:  homeRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// RecordAlert attaches a provider alert to a home. The same alert seen on a
// later poll cycle is silently skipped.
func (srv *alertService) RecordAlert(ctx context.Context, homeID uuid.UUID, source string, alert *service.ProviderAlert) (bool, error) {
	if alert == nil {
		return false, nil
	}

	record := &entity.Alert{
		ID:          uuid.New(),
		HomeID:      homeID,
		Source:      source,
		ExternalRef: alert.ExternalRef,
		Event:       alert.Event,
		Severity:    alert.Severity,
		Headline:    alert.Headline,
		Description: alert.Description,
		Effective:   alert.Effective,
		Expires:     alert.Expires,
	}

	if err := srv.alertRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrAlertExists) {
			return false, nil
		}

		srv.logger.Error("failed to record alert", "error", err, "homeID", homeID)

		return false, errors.Wrap(err, "failed to record alert")
	}

	srv.metrics.AlertsRecorded.Inc()
	srv.logger.Info("alert recorded", "homeID", homeID, "event", record.Event, "severity", record.Severity)

	return true, nil
}

// ListHomeAlerts returns all alerts recorded for a home, newest first.
func (srv *alertService) ListHomeAlerts(ctx context.Context, homeID uuid.UUID) ([]*entity.Alert, error) {
	if _, err := srv.homeRepo.FindByID(ctx, homeID); err != nil {
		if errors.Is(err, repository.ErrHomeNotFound) {
			return nil, domainerrors.ErrHomeNotFound
		}

		return nil, errors.Wrap(err, "failed to find home")
	}

	alerts, err := srv.alertRepo.FindByHome(ctx, homeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}
