// Package worker contains the background alert polling entrypoint.
package worker

import (
	"context"
	"log/slog"

	"housekeep/config"
	"housekeep/internal/delivery"
	"housekeep/internal/domain/repository"
	"housekeep/internal/domain/service"
	"housekeep/internal/observability"
	"housekeep/internal/usecase"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// PollerParams holds dependencies for the alert poller
type PollerParams struct {
	fx.In
	fx.Lifecycle

	Config        *config.Config
	Logger        *slog.Logger
	Clock         clockwork.Clock
	HomeRepo      repository.HomeRepository
	AlertProvider service.AlertProvider
	AlertUC       usecase.AlertUsecase
	Metrics       *observability.Metrics
}

// Poller periodically checks every home with coordinates for active weather
// alerts and records new ones. The clock is injected so cycles can be driven
// deterministically in tests.
type Poller struct {
	cfg           *config.Config
	logger        *slog.Logger
	clock         clockwork.Clock
	homeRepo      repository.HomeRepository
	alertProvider service.AlertProvider
	alertUC       usecase.AlertUsecase
	metrics       *observability.Metrics

	stop chan struct{}
}

// NewPoller creates the alert poller as a delivery entrypoint.
func NewPoller(params PollerParams) delivery.Delivery {
	poller := &Poller{
		cfg:           params.Config,
		logger:        params.Logger,
		clock:         params.Clock,
		homeRepo:      params.HomeRepo,
		alertProvider: params.AlertProvider,
		alertUC:       params.AlertUC,
		metrics:       params.Metrics,
		stop:          make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(poller.stop)

			return nil
		},
	})

	return poller
}

// Serve runs the polling loop until shutdown.
func (p *Poller) Serve(ctx context.Context) error {
	if p.cfg.AlertPoller == nil || !p.cfg.AlertPoller.Enabled {
		p.logger.Info("Alert poller disabled")

		return nil
	}

	interval := p.cfg.AlertPoller.Interval
	p.logger.Info("Starting alert poller", slog.Duration("interval", interval))
	p.metrics.AlertPollerRunning.Set(1)
	defer p.metrics.AlertPollerRunning.Set(0)

	ticker := p.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stop:
			p.logger.Info("Alert poller stopped")

			return nil
		case <-ticker.Chan():
			p.runCycle(ctx)
		}
	}
}

// runCycle polls the alert provider once for every home with coordinates.
// Provider failures for one home never block the rest of the cycle.
func (p *Poller) runCycle(ctx context.Context) {
	start := p.clock.Now()

	homes, err := p.homeRepo.FindWithCoordinates(ctx)
	if err != nil {
		p.logger.Error("failed to load homes for polling", "error", err)

		return
	}

	recorded := 0
	for _, home := range homes {
		if home.Latitude == nil || home.Longitude == nil {
			continue
		}

		alert, err := p.alertProvider.LatestAlert(ctx, *home.Latitude, *home.Longitude)
		if err != nil {
			p.logger.Warn("alert lookup failed", "error", err, "homeID", home.ID)

			continue
		}

		isNew, err := p.alertUC.RecordAlert(ctx, home.ID, p.alertProvider.Source(), alert)
		if err != nil {
			p.logger.Warn("failed to record alert", "error", err, "homeID", home.ID)

			continue
		}
		if isNew {
			recorded++
		}
	}

	p.metrics.AlertPollDuration.Observe(p.clock.Since(start).Seconds())
	p.logger.Debug("alert poll cycle finished", "homes", len(homes), "recorded", recorded)
}
