package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultStaleSweepSpec runs the sweep every five seconds.
const DefaultStaleSweepSpec = "*/5 * * * * *"

// StaleDeliveryJob abandons explicitly confirmed deliveries whose courier
// never confirmed within the estimate plus grace period, returning their
// vehicles to the pool.
type StaleDeliveryJob struct {
	handler commands.AbandonStaleDeliveriesCommandHandler
	spec    string
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewStaleDeliveryJob(
	handler commands.AbandonStaleDeliveriesCommandHandler,
	spec string,
	now func() time.Time,
	logger *slog.Logger,
) *StaleDeliveryJob {
	if spec == "" {
		spec = DefaultStaleSweepSpec
	}
	if now == nil {
		now = time.Now
	}
	return &StaleDeliveryJob{
		handler: handler,
		spec:    spec,
		now:     now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_delivery_job"),
	}
}

// Run performs one sweep and returns how many deliveries were abandoned.
func (j *StaleDeliveryJob) Run(ctx context.Context) int {
	cmd, err := commands.NewAbandonStaleDeliveriesCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale delivery sweep failed", "error", err)
		return 0
	}

	abandoned, err := j.handler.Handle(ctx, cmd)
	for _, a := range abandoned {
		j.logger.WarnContext(ctx, "Stale delivery abandoned",
			"order_id", a.OrderID, "vehicle_id", a.VehicleID, "reason", a.Reason)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale delivery sweep failed", "error", err)
	}
	return len(abandoned)
}

func (j *StaleDeliveryJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery job started", "spec", j.spec)
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *StaleDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale delivery job stopped")
}
