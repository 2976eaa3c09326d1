package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/GoBigTech/braintree/platform/health/http"
	platformobservability "github.com/shestoi/GoBigTech/braintree/platform/observability"
)

// RouterConfig содержит параметры роутера
type RouterConfig struct {
	ServiceName     string
	AllowedOrigins  []string
	ReportRateLimit int
	HealthTimeout   time.Duration
	HealthChecks    []platformhealth.Check
	// Metrics отдаётся на /metrics, если задан
	Metrics http.Handler
}

// NewRouter создаёт HTTP роутер сервиса
func NewRouter(handler *Handler, cfg RouterConfig, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)

	if logger != nil {
		router.Use(platformobservability.HTTPMiddleware(cfg.ServiceName, logger))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Post("/payments/{id}/paypal-details", handler.AttachPayPalDetails)

	router.Route("/reports", func(r chi.Router) {
		if cfg.ReportRateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.ReportRateLimit, time.Second))
		}
		r.Get("/transactions", handler.ListTransactions)
	})

	timeout := cfg.HealthTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	router.Get("/health", platformhealth.Handler(timeout, cfg.HealthChecks...))

	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	return router
}
