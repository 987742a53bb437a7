package cmd

import (
	"context"
	"log/slog"
	"time"

	grpcadapter "restaurant/internal/adapters/in/grpc"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/adapters/out/postgres/journalrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"
	"restaurant/internal/metrics"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived objects of the server and builds
// handlers, adapters and jobs on top of them.
type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	journal     ports.DeliveryJournal
	coordinator ports.DeliveryCoordinator
}

// NewCompositionRoot wires the coordinator and the journal. A nil gormDB keeps
// the journal in memory; otherwise its table is migrated first.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	m := metrics.New()

	var journal ports.DeliveryJournal = memory.NewJournal()
	if gormDB != nil {
		if err := journalrepo.Migrate(gormDB); err != nil {
			return nil, err
		}
		journal = journalrepo.NewGormJournalRepository(gormDB)
	}
	journal = m.InstrumentJournal(journal)

	coordinator, err := services.NewDeliveryCoordinator(services.CoordinatorConfig{
		QueueCapacity:   cfg.QueueCapacity,
		VehicleCapacity: cfg.VehicleCapacity,
		TimeUnit:        cfg.DeliveryTimeUnit,
		LeaseGrace:      cfg.LeaseGrace,
		OnAutoDelivered: commands.NewTimedDeliveryRecorder(journal, logger),
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:      cfg,
		logger:      logger,
		metrics:     m,
		journal:     journal,
		coordinator: coordinator,
	}, nil
}

func (c *CompositionRoot) Coordinator() ports.DeliveryCoordinator {
	return c.coordinator
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateClaimVehicleCommandHandler() commands.ClaimVehicleCommandHandler {
	return commands.NewClaimVehicleCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateClaimNextDeliveryCommandHandler() commands.ClaimNextDeliveryCommandHandler {
	return commands.NewClaimNextDeliveryCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateAbandonDeliveryCommandHandler() commands.AbandonDeliveryCommandHandler {
	return commands.NewAbandonDeliveryCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateAbandonStaleDeliveriesCommandHandler() commands.AbandonStaleDeliveriesCommandHandler {
	return commands.NewAbandonStaleDeliveriesCommandHandler(c.coordinator, c.journal, c.logger)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.coordinator)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.coordinator)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.coordinator, c.journal)
}

func (c *CompositionRoot) CreateGetFleetStatusQueryHandler() queries.GetFleetStatusQueryHandler {
	return queries.NewGetFleetStatusQueryHandler(c.coordinator)
}

// CreateGRPCServer builds the gRPC server with request metrics.
func (c *CompositionRoot) CreateGRPCServer() *grpc.Server {
	server := grpcadapter.NewServer(grpcadapter.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		ClaimOrder:        c.CreateClaimOrderCommandHandler(),
		ClaimVehicle:      c.CreateClaimVehicleCommandHandler(),
		ConfirmDelivery:   c.CreateConfirmDeliveryCommandHandler(),
		ClaimNextDelivery: c.CreateClaimNextDeliveryCommandHandler(),
		AbandonDelivery:   c.CreateAbandonDeliveryCommandHandler(),
		GetOrderStatus:    c.CreateGetOrderStatusQueryHandler(),
		GetOrderItems:     c.CreateGetOrderItemsQueryHandler(),
	}, c.logger)

	return server.Register(grpc.ChainUnaryInterceptor(c.metrics.UnaryServerInterceptor()))
}

// CreateHTTPServer builds the echo instance of the JSON API.
func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		ClaimOrder:        c.CreateClaimOrderCommandHandler(),
		ClaimVehicle:      c.CreateClaimVehicleCommandHandler(),
		ConfirmDelivery:   c.CreateConfirmDeliveryCommandHandler(),
		ClaimNextDelivery: c.CreateClaimNextDeliveryCommandHandler(),
		AbandonDelivery:   c.CreateAbandonDeliveryCommandHandler(),
		GetOrderStatus:    c.CreateGetOrderStatusQueryHandler(),
		GetOrderItems:     c.CreateGetOrderItemsQueryHandler(),
		GetOrderHistory:   c.CreateGetOrderHistoryQueryHandler(),
		GetFleetStatus:    c.CreateGetFleetStatusQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		IntakeRate: c.config.IntakeRate,
		Metrics:    c.metrics,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStaleDeliveryJob(c.CreateAbandonStaleDeliveriesCommandHandler(), c.config.StaleSweepSpec, time.Now, c.logger),
		jobs.NewFleetStatsJob(c.CreateGetFleetStatusQueryHandler(), c.metrics, c.config.StatsSpec, c.logger),
	)
}

// Close stops the coordinator: pending claims fail, timed deliveries finish.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return c.coordinator.Close(ctx)
}
