// Package metrics owns the Prometheus registry of the service and the small
// adapters that feed it: an echo middleware, a gRPC unary interceptor, a
// journal decorator and the fleet gauges.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics groups every collector on a dedicated registry.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	RPCRequests  *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec

	JournalEvents   *prometheus.CounterVec
	JournalFailures prometheus.Counter

	QueueDepth    prometheus.Gauge
	VehiclesInUse prometheus.Gauge
	VehiclesFree  prometheus.Gauge
	ActiveLeases  prometheus.Gauge
	OrdersPlaced  prometheus.Gauge
}

// New builds the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "path", "status"},
		),
		RPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "rpc_requests_total", Help: "Total gRPC requests by method and status code."},
			[]string{"method", "code"},
		),
		RPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "rpc_request_duration_seconds", Help: "gRPC request duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "code"},
		),
		JournalEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "delivery_events_total", Help: "Delivery events appended to the journal by kind."},
			[]string{"kind"},
		),
		JournalFailures: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "delivery_journal_failures_total", Help: "Journal appends that failed."},
		),
		QueueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "order_queue_depth", Help: "Orders waiting in the queue."},
		),
		VehiclesInUse: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "vehicles_in_use", Help: "Vehicles currently lent out."},
		),
		VehiclesFree: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "vehicles_free", Help: "Vehicles available in the pool."},
		),
		ActiveLeases: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "delivery_leases_active", Help: "Orders claimed but not yet delivered or abandoned."},
		),
		OrdersPlaced: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "orders_placed", Help: "Orders accepted since start."},
		),
	}

	m.Registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.RPCRequests,
		m.RPCDuration,
		m.JournalEvents,
		m.JournalFailures,
		m.QueueDepth,
		m.VehiclesInUse,
		m.VehiclesFree,
		m.ActiveLeases,
		m.OrdersPlaced,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveFleet copies a coordinator snapshot into the gauges.
func (m *Metrics) ObserveFleet(stats services.Stats) {
	m.QueueDepth.Set(float64(stats.Queued))
	m.VehiclesInUse.Set(float64(stats.VehiclesInUse))
	m.VehiclesFree.Set(float64(stats.VehiclesFree))
	m.ActiveLeases.Set(float64(stats.ActiveLeases))
	m.OrdersPlaced.Set(float64(stats.OrdersPlaced))
}

// EchoMiddleware records count and latency of every HTTP request. The route
// template is used as the path label to keep cardinality bounded.
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := prometheus.Labels{
				"method": c.Request().Method,
				"path":   path,
				"status": strconv.Itoa(c.Response().Status),
			}
			m.HTTPRequests.With(labels).Inc()
			m.HTTPDuration.With(labels).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// UnaryServerInterceptor records count and latency of every unary call.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		labels := prometheus.Labels{
			"method": info.FullMethod,
			"code":   status.Code(err).String(),
		}
		m.RPCRequests.With(labels).Inc()
		m.RPCDuration.With(labels).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// InstrumentJournal wraps next so that every append is counted.
func (m *Metrics) InstrumentJournal(next ports.DeliveryJournal) ports.DeliveryJournal {
	return &instrumentedJournal{next: next, metrics: m}
}

type instrumentedJournal struct {
	next    ports.DeliveryJournal
	metrics *Metrics
}

func (j *instrumentedJournal) Append(ctx context.Context, event delivery.Event) error {
	if err := j.next.Append(ctx, event); err != nil {
		j.metrics.JournalFailures.Inc()
		return err
	}
	j.metrics.JournalEvents.WithLabelValues(event.Kind().String()).Inc()
	return nil
}

func (j *instrumentedJournal) AppendAll(ctx context.Context, events []delivery.Event) error {
	if err := j.next.AppendAll(ctx, events); err != nil {
		j.metrics.JournalFailures.Add(float64(len(events)))
		return err
	}
	for _, event := range events {
		j.metrics.JournalEvents.WithLabelValues(event.Kind().String()).Inc()
	}
	return nil
}

func (j *instrumentedJournal) History(ctx context.Context, orderID order.ID) ([]delivery.Event, error) {
	return j.next.History(ctx, orderID)
}
