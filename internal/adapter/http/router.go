package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/handler"
	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/middleware"
	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AssetHandler  *handler.AssetHandler
	ReportHandler *handler.ReportHandler
	PolicyHandler *handler.PolicyHandler
	HealthHandler *handler.HealthHandler

	// Optional middleware; nil disables each.
	Idempotency *middleware.IdempotencyMiddleware
	RateLimiter *middleware.RateLimiter
	HTTPMetrics *middleware.HTTPMetrics
	// TokenVerifier enables bearer authentication and role checks on /api/v1.
	TokenVerifier middleware.TokenVerifier
	// MetricsHandler serves /metrics; defaults to promhttp.Handler().
	MetricsHandler http.Handler
	// AllowedOrigins enables CORS for browser clients when non-empty.
	AllowedOrigins []string

	Logger zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.NewRecovery(cfg.HTTPMetrics))
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Wrap)
	}
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyKeyHeader},
			ExposedHeaders: []string{middleware.IdempotencyReplayHeader, "Retry-After"},
			MaxAge:         300,
		}))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	requireRole := func(domain.Role) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler { return next }
	}
	if cfg.TokenVerifier != nil {
		requireRole = middleware.RequireRole
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.TokenVerifier != nil {
			r.Use(middleware.AuthMiddleware(cfg.TokenVerifier))
		}
		if cfg.Idempotency != nil {
			r.Use(cfg.Idempotency.Wrap)
		}

		// Assets
		r.Route("/assets", func(r chi.Router) {
			r.With(requireRole(domain.RoleViewer)).Group(func(r chi.Router) {
				r.Get("/", cfg.AssetHandler.List)
				r.Get("/{code}", cfg.AssetHandler.Get)
				r.Get("/{code}/costs", cfg.ReportHandler.Costs)
				r.Get("/{code}/depreciation", cfg.ReportHandler.Depreciation)
				r.Get("/{code}/periods", cfg.ReportHandler.Periods)
				r.Get("/{code}/transactions", cfg.ReportHandler.Transactions)
				r.Get("/{code}/book-value", cfg.ReportHandler.BookValue)
			})

			r.With(requireRole(domain.RoleAccountant)).Group(func(r chi.Router) {
				r.Post("/", cfg.AssetHandler.Create)
				r.Post("/{code}/schedule", cfg.AssetHandler.Schedule)
				r.Post("/{code}/revaluations", cfg.AssetHandler.Revalue)
				r.Post("/{code}/scrap", cfg.AssetHandler.Scrap)
			})
		})

		// Reports
		r.With(requireRole(domain.RoleViewer)).Get("/reports/depreciation-total", cfg.ReportHandler.TotalDepreciation)

		// Policies
		r.Route("/policies", func(r chi.Router) {
			r.With(requireRole(domain.RoleViewer)).Group(func(r chi.Router) {
				r.Get("/", cfg.PolicyHandler.List)
				r.Get("/{code}", cfg.PolicyHandler.Get)
			})

			r.With(requireRole(domain.RoleAdmin)).Group(func(r chi.Router) {
				r.Post("/", cfg.PolicyHandler.Create)
				r.Put("/{code}/rate", cfg.PolicyHandler.ChangeRate)
			})
		})
	})

	return r
}
