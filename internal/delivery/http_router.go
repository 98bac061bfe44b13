package delivery

import (
	"time"

	"roicalc/internal/delivery/middleware"
	"roicalc/pkg/config"
	"roicalc/pkg/logger"
	"roicalc/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HTTPRouter struct {
	handlers *HTTPHandlers
	cfg      *config.Config
	logger   *logger.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func NewHTTPRouter(handlers *HTTPHandlers, cfg *config.Config, logger *logger.Logger, metrics *metrics.Metrics, gatherer prometheus.Gatherer) *HTTPRouter {
	return &HTTPRouter{
		handlers: handlers,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		gatherer: gatherer,
	}
}

func (r *HTTPRouter) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.Timeout(r.timeout()))

	corsConfig := cors.DefaultConfig()
	if len(r.cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = r.cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}

	router.Use(cors.New(corsConfig))

	// Health endpoint
	router.GET("/health", r.handlers.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(r.cfg.RateLimit.PerSecond, r.cfg.RateLimit.Burst, r.metrics))
	{
		v1.GET("/", r.handlers.GetAPIInfo)
		v1.GET("", r.handlers.GetAPIInfo)

		roi := v1.Group("/roi")
		{
			roi.GET("/defaults", r.handlers.GetDefaults)
			roi.POST("/calculate", r.handlers.Calculate)
		}

		pricing := v1.Group("/pricing")
		{
			pricing.GET("/quote", r.handlers.GetQuote)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler(r.gatherer))

	return router
}

func (r *HTTPRouter) timeout() time.Duration {
	if r.cfg.Server.RequestTimeout > 0 {
		return r.cfg.Server.RequestTimeout
	}
	return 10 * time.Second
}
