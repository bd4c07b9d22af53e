package server

import (
	"logistics-dashboard/internal/database"
	"logistics-dashboard/internal/handlers"

	"github.com/go-chi/chi/v5"
)

// Handlers bundles the endpoint handlers behind the router.
type Handlers struct {
	deliveryHandler *handlers.DeliveryHandler
	regionHandler   *handlers.RegionHandler
	trendHandler    *handlers.TrendHandler
	statsHandler    *handlers.StatsHandler
	healthHandler   *handlers.HealthHandler
	staticHandler   *handlers.StaticHandler
}

// NewHandlers creates the handler set for a database connection. staticDir
// is the root of the built dashboard UI.
func NewHandlers(db *database.DB, staticDir string) *Handlers {
	return &Handlers{
		deliveryHandler: handlers.NewDeliveryHandler(db),
		regionHandler:   handlers.NewRegionHandler(db),
		trendHandler:    handlers.NewTrendHandler(db),
		statsHandler:    handlers.NewStatsHandler(db),
		healthHandler:   handlers.NewHealthHandler(db),
		staticHandler:   handlers.NewStaticHandler(staticDir),
	}
}

// RegisterRoutes registers all routes with a chi router. Every reporting
// endpoint is a GET; the store is never written through HTTP.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/deliveries", h.deliveryHandler.GetDeliveries)
		r.Get("/deliveries/{id}", h.deliveryHandler.GetDeliveryByID)
		r.Get("/deliveries/{id}/attempts", h.deliveryHandler.GetDeliveryAttempts)
		r.Get("/regions", h.regionHandler.GetRegions)
		r.Get("/trends", h.trendHandler.GetTrends)
		r.Get("/stats", h.statsHandler.GetStats)
		r.Get("/health", h.healthHandler.HealthCheck)
	})

	// Static file routes (catch-all for SPA)
	r.Get("/*", h.staticHandler.ServeHTTP)
}
