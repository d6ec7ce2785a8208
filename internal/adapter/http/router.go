package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/glowpanel/engine/internal/adapter/http/handler"
	"github.com/glowpanel/engine/internal/adapter/http/middleware"
	"github.com/glowpanel/engine/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	OrderHandler     *handler.OrderHandler
	AffiliateHandler *handler.AffiliateHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/overview", cfg.AccountHandler.GetOverview)
			r.Post("/{id}/withdrawals", cfg.AccountHandler.Withdraw)
			r.Get("/{id}/orders", cfg.OrderHandler.ListByAccount)
			r.Get("/{id}/commissions", cfg.AffiliateHandler.ListCommissions)
			r.Get("/{id}/earnings", cfg.AffiliateHandler.GetEarnings)
		})

		// Orders
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", cfg.OrderHandler.Place)
			r.Get("/{id}", cfg.OrderHandler.Get)
		})
	})

	return r
}
