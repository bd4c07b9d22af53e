package handlers

import (
	"log"
	"net/http"

	"logistics-dashboard/internal/database"
)

// trendWindow is the fixed lookback of daily snapshots the dashboard shows.
const trendWindow = 7

// TrendHandler handles HTTP requests for delivery trend snapshots
type TrendHandler struct {
	db *database.DB
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(db *database.DB) *TrendHandler {
	return &TrendHandler{db: db}
}

// TrendView is the wire shape of one daily snapshot. The date is the
// 3-letter weekday abbreviation.
type TrendView struct {
	Date       string `json:"date"`
	Deliveries int    `json:"deliveries"`
	OnTime     int    `json:"onTime"`
	Delayed    int    `json:"delayed"`
}

// GetTrends handles GET /api/trends
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.db.Trends.Recent(trendWindow)
	if err != nil {
		log.Printf("ERROR: Failed to get delivery trends: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch delivery trends")
		return
	}

	views := make([]TrendView, 0, len(trends))
	for _, trend := range trends {
		views = append(views, TrendView{
			Date:       trend.Date.Format("Mon"),
			Deliveries: trend.Deliveries,
			OnTime:     trend.OnTime,
			Delayed:    trend.Delayed,
		})
	}

	respondJSON(w, http.StatusOK, views)
}
