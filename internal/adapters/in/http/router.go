package http

import (
	"net/http"

	"restaurant/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RouterConfig tunes the echo instance built by NewRouter.
type RouterConfig struct {
	// IntakeRate is the sustained number of orders per second accepted from
	// one client address. Zero disables the limit.
	IntakeRate float64

	// Metrics, when set, instruments every request and serves GET /metrics.
	Metrics *metrics.Metrics
}

// NewRouter builds the echo instance with every route of the API.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.EchoMiddleware())
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	var intake []echo.MiddlewareFunc
	if cfg.IntakeRate > 0 {
		intake = append(intake, intakeLimiter(cfg.IntakeRate))
	}
	api.POST("/orders", s.PlaceOrder, intake...)
	api.POST("/orders/claim", s.ClaimOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/items", s.GetOrderItems)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.POST("/orders/:id/vehicle", s.ClaimVehicle)
	api.POST("/orders/:id/confirm", s.ConfirmDelivery)
	api.POST("/orders/:id/abandon", s.AbandonDelivery)
	api.POST("/deliveries/next", s.ClaimNextDelivery)
	api.GET("/fleet", s.GetFleet)

	return e
}

// intakeLimiter allows perSecond orders per client IP with an equal burst.
func intakeLimiter(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(perSecond),
			Burst: burst,
		}),
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return ctx.JSON(http.StatusTooManyRequests, Error{
				Code:    http.StatusTooManyRequests,
				Message: "Too many orders, slow down",
			})
		},
	})
}
