package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"housekeep/internal/domain/entity"
	domainerrors "housekeep/internal/domain/errors"
	"housekeep/internal/domain/property"
	"housekeep/internal/domain/repository"
	"housekeep/internal/domain/service"
	"housekeep/internal/observability"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	txManager repository.TransactionManager
	provider  service.PropertyProvider
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(
	txManager repository.TransactionManager,
	provider service.PropertyProvider,
	metrics *observability.Metrics,
	logger *slog.Logger,
) usecase.IngestionUsecase {
	return &ingestionService{
		txManager: txManager,
		provider:  provider,
		metrics:   metrics,
		logger:    logger,
	}
}

// IngestPayload normalizes a raw provider payload into a home and archives the
// payload verbatim. Home resolution and archival happen in one transaction so
// a failed archive never leaves an orphaned home.
func (srv *ingestionService) IngestPayload(ctx context.Context, input *usecase.IngestPayloadInput) (*usecase.IngestOutput, error) {
	var payload property.Payload
	if err := json.Unmarshal(input.Raw, &payload); err != nil {
		srv.metrics.IngestionsTotal.WithLabelValues(input.Source, "no_data").Inc()

		return nil, domainerrors.ErrNoPropertyData.WrapMessage("payload is not valid JSON")
	}

	if len(payload.Property) == 0 {
		srv.metrics.IngestionsTotal.WithLabelValues(input.Source, "no_data").Inc()

		return nil, domainerrors.ErrNoPropertyData
	}

	// Only the first document is mapped; providers return one document for a
	// single-address detail lookup.
	fields := property.MapHomeFields(payload.Property[0])
	for _, field := range fields.Degraded {
		srv.metrics.MappingDegradations.WithLabelValues(field).Inc()
		srv.logger.Warn("field degraded during mapping", "field", field, "userID", input.UserID)
	}

	var output usecase.IngestOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		homeRepo := repoFactory.Homes()

		// 1. Resolve the home by the (user, address) dedup key
		existing, err := homeRepo.FindByUserAndAddress(ctx, input.UserID, fields.AddressText)
		switch {
		case err == nil:
			// Re-ingestion never rewrites stored home fields.
			output.HomeID = existing.ID
			output.Created = false
		case errors.Is(err, repository.ErrHomeNotFound):
			home := &entity.Home{
				ID:           uuid.New(),
				UserID:       input.UserID,
				AddressText:  fields.AddressText,
				Latitude:     fields.Latitude,
				Longitude:    fields.Longitude,
				BuildingType: fields.BuildingType,
				YearBuilt:    fields.YearBuilt,
				Bedrooms:     fields.Bedrooms,
				Bathrooms:    fields.Bathrooms,
				CreatedAt:    fields.CreatedAt,
				UpdatedAt:    fields.CreatedAt,
			}
			if err := homeRepo.Create(ctx, home); err != nil {
				return errors.Wrap(err, "failed to create home")
			}
			output.HomeID = home.ID
			output.Created = true
		default:
			return errors.Wrap(err, "failed to resolve home")
		}

		// 2. Archive the raw payload, one row per ingestion call
		if input.StoreRaw {
			homeID := output.HomeID
			raw := &entity.RawProperty{
				ID:      uuid.New(),
				HomeID:  &homeID,
				Source:  input.Source,
				RawJSON: input.Raw,
			}
			if err := repoFactory.RawProperties().Archive(ctx, raw); err != nil {
				return errors.Wrap(err, "failed to archive raw payload")
			}
		}

		return nil
	})

	if err != nil {
		srv.metrics.IngestionsTotal.WithLabelValues(input.Source, "error").Inc()
		srv.logger.Error("ingestion failed", "error", err, "userID", input.UserID)

		return nil, err
	}

	outcome := "reused"
	if output.Created {
		outcome = "created"
	}
	srv.metrics.IngestionsTotal.WithLabelValues(input.Source, outcome).Inc()
	if input.StoreRaw {
		srv.metrics.RawPayloadsArchived.Inc()
	}
	srv.logger.Info("payload ingested", "userID", input.UserID, "homeID", output.HomeID, "created", output.Created)

	return &output, nil
}

// IngestAddress fetches the property payload for an address and ingests it.
// Provider failures surface as "no data": the caller asked about an address
// the provider could not answer for.
func (srv *ingestionService) IngestAddress(ctx context.Context, input *usecase.IngestAddressInput) (*usecase.IngestOutput, error) {
	raw, err := srv.provider.FetchByAddress(ctx, input.Address1, input.Address2)
	if err != nil {
		srv.metrics.IngestionsTotal.WithLabelValues(srv.provider.Source(), "no_data").Inc()
		srv.logger.Warn("property fetch failed", "error", err, "userID", input.UserID)

		return nil, domainerrors.ErrNoPropertyData.WrapMessage("provider fetch failed")
	}

	return srv.IngestPayload(ctx, &usecase.IngestPayloadInput{
		UserID:   input.UserID,
		Source:   srv.provider.Source(),
		Raw:      raw,
		StoreRaw: input.StoreRaw,
	})
}

// ListHomes returns all homes owned by a user.
func (srv *ingestionService) ListHomes(ctx context.Context, userID uuid.UUID) ([]*entity.Home, error) {
	var homes []*entity.Home

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.Users().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		found, err := repoFactory.Homes().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list homes")
		}
		homes = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return homes, nil
}
