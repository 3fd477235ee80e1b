package main

import (
	"context"
	"log/slog"
	"os"

	"housekeep/config"
	"housekeep/internal/delivery"
	"housekeep/internal/delivery/http"
	"housekeep/internal/delivery/http/router/handler"
	"housekeep/internal/delivery/worker"
	"housekeep/internal/domain/service"
	logs "housekeep/internal/infra/log"
	"housekeep/internal/infra/persistence/postgres"
	"housekeep/internal/infra/provider/attom"
	"housekeep/internal/infra/provider/noaa"
	"housekeep/internal/observability"
	"housekeep/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			applySchema,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		observability.NewMetrics,
		newClock,
	)
}

func newClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewHomeRepository,
			postgres.NewRawPropertyRepository,
			postgres.NewAlertRepository,
			postgres.NewTransactionManager,
			postgres.NewSchemaStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPropertyProvider,
			newAlertProvider,
		),
	)
}

// newPropertyProvider creates the ATTOM property provider from config.
func newPropertyProvider(cfg *config.Config) service.PropertyProvider {
	return attom.New(cfg.Attom)
}

// newAlertProvider creates the NOAA alert provider from config.
func newAlertProvider(cfg *config.Config) service.AlertProvider {
	return noaa.New(cfg.NOAA)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewIngestionService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPropertyHandler,
			handler.NewAlertHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewPoller,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// applySchema brings the database schema up to date before any delivery starts.
func applySchema(ctx context.Context, store *postgres.SchemaStore) error {
	return store.Apply(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
