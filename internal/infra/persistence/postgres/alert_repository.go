package postgres

import (
	"context"

	"housekeep/internal/domain/entity"
	domainerrors "housekeep/internal/domain/errors"
	"housekeep/internal/domain/repository"
	"housekeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the domain.AlertRepository interface using GORM.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// Create inserts a new alert. The unique index on (home_id, external_ref)
// converts re-inserts of the same alert into repository.ErrAlertExists.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlertExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("alerted home does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindByHome retrieves all alerts recorded for a home, newest first.
func (repo *alertRepository) FindByHome(ctx context.Context, homeID uuid.UUID) ([]*entity.Alert, error) {
	var alertMs []model.AlertModel
	if err := repo.db.WithContext(ctx).
		Where("home_id = ?", homeID).
		Order("created_at DESC").
		Find(&alertMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by home")
	}

	alerts := make([]*entity.Alert, 0, len(alertMs))
	for i := range alertMs {
		alerts = append(alerts, toAlertDomain(&alertMs[i]))
	}

	return alerts, nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:          data.ID,
		HomeID:      data.HomeID,
		Source:      data.Source,
		ExternalRef: data.ExternalRef,
		Event:       data.Event,
		Severity:    data.Severity,
		Headline:    data.Headline,
		Description: data.Description,
		Effective:   data.Effective,
		Expires:     data.Expires,
		CreatedAt:   data.CreatedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:          data.ID,
		HomeID:      data.HomeID,
		Source:      data.Source,
		ExternalRef: data.ExternalRef,
		Event:       data.Event,
		Severity:    data.Severity,
		Headline:    data.Headline,
		Description: data.Description,
		Effective:   data.Effective,
		Expires:     data.Expires,
		CreatedAt:   data.CreatedAt,
	}
}
