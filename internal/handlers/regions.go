package handlers

import (
	"log"
	"net/http"
	"strconv"

	"logistics-dashboard/internal/database"
)

// RegionHandler handles HTTP requests for regional summaries
type RegionHandler struct {
	db *database.DB
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(db *database.DB) *RegionHandler {
	return &RegionHandler{db: db}
}

// RegionView is the wire shape of one regional summary row. The delivery
// count covers every delivery ever linked to the region, regardless of any
// dashboard filter.
type RegionView struct {
	ID          int    `json:"id"`
	Region      string `json:"region"`
	Deliveries  int    `json:"deliveries"`
	Performance int    `json:"performance"`
}

// GetRegions handles GET /api/regions
func (h *RegionHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	var regionIDs []int
	for _, raw := range r.URL.Query()["region"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		regionIDs = append(regionIDs, id)
	}

	summaries, err := h.db.Regions.Summaries(regionIDs)
	if err != nil {
		log.Printf("ERROR: Failed to get regional summaries: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch regional data")
		return
	}

	views := make([]RegionView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, RegionView{
			ID:          summary.ID,
			Region:      summary.Name,
			Deliveries:  summary.Deliveries,
			Performance: summary.Performance,
		})
	}

	respondJSON(w, http.StatusOK, views)
}
