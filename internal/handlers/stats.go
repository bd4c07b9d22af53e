package handlers

import (
	"log"
	"net/http"

	"logistics-dashboard/internal/database"
	"logistics-dashboard/internal/stats"
)

// StatsHandler handles HTTP requests for aggregated dashboard statistics
type StatsHandler struct {
	engine *stats.Engine
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(db *database.DB) *StatsHandler {
	return &StatsHandler{engine: stats.NewEngine(db.Stats)}
}

// statsError is the stats failure body: the error message plus a fully
// zeroed payload, so a naive client can render a blank dashboard without
// extra null checks.
type statsError struct {
	Error string `json:"error"`
	stats.Dashboard
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	filter := parseDeliveryFilter(r)

	dashboard, err := h.engine.Collect(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR: Failed to collect dashboard stats: %v", err)
		respondJSON(w, http.StatusInternalServerError, statsError{
			Error:     "Failed to fetch dashboard stats",
			Dashboard: stats.Zero(),
		})
		return
	}

	respondJSON(w, http.StatusOK, dashboard)
}
