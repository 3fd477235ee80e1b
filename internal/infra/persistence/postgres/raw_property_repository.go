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

// rawPropertyRepository implements the domain.RawPropertyRepository interface using GORM.
// The archive is append-only; no update or delete paths exist.
type rawPropertyRepository struct {
	db *gorm.DB
}

// NewRawPropertyRepository is the constructor for rawPropertyRepository.
func NewRawPropertyRepository(db *gorm.DB) repository.RawPropertyRepository {
	return &rawPropertyRepository{db: db}
}

// Archive inserts an immutable raw payload record.
func (repo *rawPropertyRepository) Archive(ctx context.Context, raw *entity.RawProperty) error {
	rawM := fromRawPropertyDomain(raw)

	if err := repo.db.WithContext(ctx).Create(rawM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("linked home does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payload information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to archive raw payload")
	}

	raw.CreatedAt = rawM.CreatedAt

	return nil
}

// FindByHome retrieves all archived payloads linked to a home, oldest first.
func (repo *rawPropertyRepository) FindByHome(ctx context.Context, homeID uuid.UUID) ([]*entity.RawProperty, error) {
	var rawMs []model.RawPropertyModel
	if err := repo.db.WithContext(ctx).
		Where("home_id = ?", homeID).
		Order("created_at ASC").
		Find(&rawMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find raw payloads by home")
	}

	raws := make([]*entity.RawProperty, 0, len(rawMs))
	for i := range rawMs {
		raws = append(raws, toRawPropertyDomain(&rawMs[i]))
	}

	return raws, nil
}

// --- Mapper Functions ---

// toRawPropertyDomain converts a GORM RawPropertyModel to a domain RawProperty entity.
func toRawPropertyDomain(data *model.RawPropertyModel) *entity.RawProperty {
	if data == nil {
		return nil
	}

	return &entity.RawProperty{
		ID:        data.ID,
		HomeID:    data.HomeID,
		Source:    data.Source,
		RawJSON:   []byte(data.RawJSON),
		CreatedAt: data.CreatedAt,
	}
}

// fromRawPropertyDomain converts a domain RawProperty entity to a GORM RawPropertyModel.
func fromRawPropertyDomain(data *entity.RawProperty) *model.RawPropertyModel {
	if data == nil {
		return nil
	}

	return &model.RawPropertyModel{
		ID:        data.ID,
		HomeID:    data.HomeID,
		Source:    data.Source,
		RawJSON:   string(data.RawJSON),
		CreatedAt: data.CreatedAt,
	}
}
