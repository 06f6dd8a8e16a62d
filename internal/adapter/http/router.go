package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finplanner/finplanner/internal/adapter/http/handler"
	"github.com/finplanner/finplanner/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PayoffHandler   *handler.PayoffHandler
	SavingsHandler  *handler.SavingsHandler
	ScenarioHandler *handler.ScenarioHandler
	AdviceHandler   *handler.AdviceHandler
	HealthHandler   *handler.HealthHandler

	Logger zerolog.Logger

	// RateLimit is requests per second per client IP; zero disables limiting.
	RateLimit      float64
	RateLimitBurst int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst)
			r.Use(limiter.Limit)
		}

		// Payoff planning
		r.Route("/payoff", func(r chi.Router) {
			r.Post("/plan", cfg.PayoffHandler.Plan)
			r.Post("/compare", cfg.PayoffHandler.Compare)
		})

		// Savings advisory
		r.Route("/savings", func(r chi.Router) {
			r.Post("/emergency-fund", cfg.SavingsHandler.EmergencyFund)
			r.Post("/allocate", cfg.SavingsHandler.Allocate)
			r.Post("/timeline", cfg.SavingsHandler.Timeline)
		})

		// Scenario projection
		r.Route("/scenarios", func(r chi.Router) {
			r.Post("/project", cfg.ScenarioHandler.Project)
			r.Post("/compare", cfg.ScenarioHandler.Compare)
		})

		// Advisory pipeline
		r.Route("/advice", func(r chi.Router) {
			r.Post("/", cfg.AdviceHandler.Analyze)
			r.Get("/{sessionID}", cfg.AdviceHandler.Get)
		})
	})

	return r
}
