package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSpec refreshes the fleet gauges every ten seconds.
const DefaultStatsSpec = "*/10 * * * * *"

// FleetObserver receives each fleet snapshot; metrics.Metrics implements it.
type FleetObserver interface {
	ObserveFleet(stats services.Stats)
}

// FleetStatsJob samples the coordinator and publishes the snapshot.
type FleetStatsJob struct {
	handler  queries.GetFleetStatusQueryHandler
	observer FleetObserver
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewFleetStatsJob(
	handler queries.GetFleetStatusQueryHandler,
	observer FleetObserver,
	spec string,
	logger *slog.Logger,
) *FleetStatsJob {
	if spec == "" {
		spec = DefaultStatsSpec
	}
	return &FleetStatsJob{
		handler:  handler,
		observer: observer,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fleet_stats_job"),
	}
}

func (j *FleetStatsJob) Run(ctx context.Context) {
	response, err := j.handler.Handle(ctx, queries.NewGetFleetStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet stats job failed", "error", err)
		return
	}

	stats := response.Stats
	if j.observer != nil {
		j.observer.ObserveFleet(stats)
	}
	j.logger.DebugContext(ctx, "Fleet stats",
		"queued", stats.Queued,
		"vehicles_free", stats.VehiclesFree,
		"vehicles_in_use", stats.VehiclesInUse,
		"active_leases", stats.ActiveLeases,
		"orders_placed", stats.OrdersPlaced,
	)
}

func (j *FleetStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet stats job started", "spec", j.spec)
	return nil
}

func (j *FleetStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fleet stats job stopped")
}
