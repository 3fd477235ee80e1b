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

// homeRepository implements the domain.HomeRepository interface using GORM.
type homeRepository struct {
	db *gorm.DB
}

// NewHomeRepository is the constructor for homeRepository.
func NewHomeRepository(db *gorm.DB) repository.HomeRepository {
	return &homeRepository{db: db}
}

// FindByID retrieves a single home by its unique ID.
func (repo *homeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Home, error) {
	var homeM model.HomeModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&homeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHomeNotFound
		}

		return nil, errors.Wrap(err, "failed to find home by id")
	}

	return toHomeDomain(&homeM), nil
}

// FindByUserAndAddress retrieves the home for an exact (userID, addressText) pair.
func (repo *homeRepository) FindByUserAndAddress(ctx context.Context, userID uuid.UUID, addressText string) (*entity.Home, error) {
	var homeM model.HomeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND address_text = ?", userID, addressText).
		First(&homeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHomeNotFound
		}

		return nil, errors.Wrap(err, "failed to find home by user and address")
	}

	return toHomeDomain(&homeM), nil
}

// FindByUser retrieves all homes owned by a user, oldest first.
func (repo *homeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Home, error) {
	var homeMs []model.HomeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&homeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find homes by user")
	}

	homes := make([]*entity.Home, 0, len(homeMs))
	for i := range homeMs {
		homes = append(homes, toHomeDomain(&homeMs[i]))
	}

	return homes, nil
}

// FindWithCoordinates retrieves all homes that have both coordinates set.
func (repo *homeRepository) FindWithCoordinates(ctx context.Context) ([]*entity.Home, error) {
	var homeMs []model.HomeModel
	if err := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&homeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find homes with coordinates")
	}

	homes := make([]*entity.Home, 0, len(homeMs))
	for i := range homeMs {
		homes = append(homes, toHomeDomain(&homeMs[i]))
	}

	return homes, nil
}

// Create persists a new home entity to the database.
func (repo *homeRepository) Create(ctx context.Context, home *entity.Home) error {
	homeM := fromHomeDomain(home)

	if err := repo.db.WithContext(ctx).Create(homeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("home already exists for this user and address")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("owning user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required home information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create home")
	}

	return nil
}

// --- Mapper Functions ---

// toHomeDomain converts a GORM HomeModel to a domain Home entity.
func toHomeDomain(data *model.HomeModel) *entity.Home {
	if data == nil {
		return nil
	}

	return &entity.Home{
		ID:           data.ID,
		UserID:       data.UserID,
		AddressText:  data.AddressText,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		BuildingType: entity.BuildingType(data.BuildingType),
		YearBuilt:    data.YearBuilt,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromHomeDomain converts a domain Home entity to a GORM HomeModel for persistence.
func fromHomeDomain(data *entity.Home) *model.HomeModel {
	if data == nil {
		return nil
	}

	return &model.HomeModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AddressText:  data.AddressText,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		BuildingType: string(data.BuildingType),
		YearBuilt:    data.YearBuilt,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
