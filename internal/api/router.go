package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/venuepass/ticketing-api/docs"
	"github.com/venuepass/ticketing-api/internal/api/handler"
	"github.com/venuepass/ticketing-api/internal/api/middleware"
	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Dispatcher ports.Dispatcher
	Sessions   ports.SessionStore
	DB         handler.RolePinger
	// Redis is the session backend client, nil for the in-memory backend.
	Redis *redis.Client

	StaticDir      string
	AnalyticsVenue string
	Logger         zerolog.Logger

	// Registerer and Gatherer back the HTTP metrics and /metrics. Nil means
	// the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The route table is fixed here; nothing is added after startup.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Pre(middleware.CORS())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "ticketing",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	static := handler.NewStaticHandler(d.StaticDir)
	auth := handler.NewAuthHandler(d.Dispatcher)
	booking := handler.NewBookingHandler(d.Dispatcher)
	data := handler.NewDataHandler(d.Dispatcher, d.AnalyticsVenue)
	health := handler.NewHealthHandler()
	ready := handler.NewReadinessHandler(d.DB, d.Redis)

	// --- Front end ---
	e.GET("/", static.Index)
	e.GET("/index.html", static.Index)

	// --- Operational endpoints ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", ready.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API: every route resolves the caller's role first ---
	api := e.Group("/api", middleware.Session(d.Sessions, d.Logger))

	api.GET("/data*", data.BulkRead)
	api.GET("/analytics", data.Analytics, middleware.RBAC(domain.RoleAdmin))

	api.POST("/login", auth.Login)
	api.POST("/users", auth.Register)
	api.POST("/book_ticket", booking.BookTicket)
	api.POST("/cancel_event", booking.CancelEvent)
	api.POST("/add_stall", booking.AddStall)
	api.POST("/my_profile", booking.MyProfile)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
