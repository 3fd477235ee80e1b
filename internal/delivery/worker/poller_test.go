package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"housekeep/config"
	"housekeep/internal/domain/entity"
	"housekeep/internal/domain/service"
	mockRepo "housekeep/internal/mocks/repository"
	mockService "housekeep/internal/mocks/service"
	mockUsecase "housekeep/internal/mocks/usecase"
	"housekeep/internal/observability"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// pollerFixtures holds all test dependencies for poller tests.
type pollerFixtures struct {
	poller   *Poller
	homeRepo *mockRepo.MockHomeRepository
	provider *mockService.MockAlertProvider
	alertUC  *mockUsecase.MockAlertUsecase
}

func createTestPoller(t *testing.T) pollerFixtures {
	homeRepo := mockRepo.NewMockHomeRepository(t)
	provider := mockService.NewMockAlertProvider(t)
	alertUC := mockUsecase.NewMockAlertUsecase(t)

	cfg := &config.Config{}
	cfg.AlertPoller = &config.AlertPollerConfig{Enabled: true}

	poller := &Poller{
		cfg:           cfg,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:         clockwork.NewFakeClock(),
		homeRepo:      homeRepo,
		alertProvider: provider,
		alertUC:       alertUC,
		metrics:       observability.NewMetricsForTesting(),
		stop:          make(chan struct{}),
	}

	return pollerFixtures{
		poller:   poller,
		homeRepo: homeRepo,
		provider: provider,
		alertUC:  alertUC,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestPoller_RunCycle_RecordsAlerts(t *testing.T) {
	fx := createTestPoller(t)

	ctx := context.Background()
	homeWithAlert := &entity.Home{ID: uuid.New(), Latitude: floatPtr(39.77), Longitude: floatPtr(-105.04)}
	quietHome := &entity.Home{ID: uuid.New(), Latitude: floatPtr(40.0), Longitude: floatPtr(-75.2)}
	alert := &service.ProviderAlert{ExternalRef: "urn:ref-1", Event: "Tornado Warning"}

	fx.homeRepo.EXPECT().
		FindWithCoordinates(ctx).
		Return([]*entity.Home{homeWithAlert, quietHome}, nil)

	fx.provider.EXPECT().LatestAlert(ctx, 39.77, -105.04).Return(alert, nil)
	fx.provider.EXPECT().LatestAlert(ctx, 40.0, -75.2).Return(nil, nil)
	fx.provider.EXPECT().Source().Return("noaa")

	fx.alertUC.EXPECT().RecordAlert(ctx, homeWithAlert.ID, "noaa", alert).Return(true, nil)
	fx.alertUC.EXPECT().RecordAlert(ctx, quietHome.ID, "noaa", (*service.ProviderAlert)(nil)).Return(false, nil)

	fx.poller.runCycle(ctx)
}

func TestPoller_RunCycle_ProviderFailureSkipsHome(t *testing.T) {
	fx := createTestPoller(t)

	ctx := context.Background()
	failingHome := &entity.Home{ID: uuid.New(), Latitude: floatPtr(39.77), Longitude: floatPtr(-105.04)}
	workingHome := &entity.Home{ID: uuid.New(), Latitude: floatPtr(40.0), Longitude: floatPtr(-75.2)}
	alert := &service.ProviderAlert{ExternalRef: "urn:ref-2", Event: "Flood Watch"}

	fx.homeRepo.EXPECT().
		FindWithCoordinates(ctx).
		Return([]*entity.Home{failingHome, workingHome}, nil)

	// First home fails; the cycle continues with the second.
	fx.provider.EXPECT().LatestAlert(ctx, 39.77, -105.04).Return(nil, errors.New("rate limited"))
	fx.provider.EXPECT().LatestAlert(ctx, 40.0, -75.2).Return(alert, nil)
	fx.provider.EXPECT().Source().Return("noaa")

	fx.alertUC.EXPECT().RecordAlert(ctx, workingHome.ID, "noaa", alert).Return(true, nil)

	fx.poller.runCycle(ctx)
}

func TestPoller_RunCycle_RepositoryFailureAborts(t *testing.T) {
	fx := createTestPoller(t)

	ctx := context.Background()

	fx.homeRepo.EXPECT().
		FindWithCoordinates(ctx).
		Return(nil, errors.New("connection lost"))

	// No provider or usecase calls expected.
	fx.poller.runCycle(ctx)
}

func TestPoller_Serve_DisabledReturnsImmediately(t *testing.T) {
	fx := createTestPoller(t)
	fx.poller.cfg.AlertPoller.Enabled = false

	require.NoError(t, fx.poller.Serve(context.Background()))
}
