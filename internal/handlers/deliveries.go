package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"time"

	"logistics-dashboard/internal/database"

	"github.com/go-chi/chi/v5"
)

// deliveryListLimit caps the delivery list; there is no further pagination.
const deliveryListLimit = 10

// DeliveryHandler handles HTTP requests for delivery rows
type DeliveryHandler struct {
	db *database.DB
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(db *database.DB) *DeliveryHandler {
	return &DeliveryHandler{db: db}
}

// DeliveryView is the wire shape of one delivery row.
type DeliveryView struct {
	ID               int        `json:"id"`
	TrackingNumber   string     `json:"trackingNumber"`
	Status           string     `json:"status"`
	CustomerName     string     `json:"customerName"`
	Destination      string     `json:"destination"`
	ExpectedDelivery time.Time  `json:"expectedDelivery"`
	ActualDelivery   *time.Time `json:"actualDelivery,omitempty"`
	Priority         string     `json:"priority"`
	Delay            *float64   `json:"delay,omitempty"`
	Weight           float64    `json:"weight"`
	Dimensions       *string    `json:"dimensions,omitempty"`
	Signature        bool       `json:"signature"`
}

// AttemptView is the wire shape of one delivery attempt.
type AttemptView struct {
	ID          int       `json:"id"`
	AttemptedAt time.Time `json:"attemptedAt"`
	Outcome     string    `json:"outcome"`
	Notes       string    `json:"notes,omitempty"`
}

func formatDelivery(delivery database.Delivery) DeliveryView {
	return DeliveryView{
		ID:               delivery.ID,
		TrackingNumber:   delivery.TrackingNumber,
		Status:           database.WireToken(delivery.Status),
		CustomerName:     delivery.CustomerName,
		Destination:      delivery.Destination,
		ExpectedDelivery: delivery.ExpectedDelivery,
		ActualDelivery:   delivery.ActualDelivery,
		Priority:         database.WireToken(delivery.Priority),
		Delay:            delivery.Delay,
		Weight:           delivery.Weight,
		Dimensions:       delivery.Dimensions,
		Signature:        delivery.SignatureRequired,
	}
}

// GetDeliveries handles GET /api/deliveries
func (h *DeliveryHandler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	filter := parseDeliveryFilter(r)

	deliveries, err := h.db.Deliveries.List(filter, deliveryListLimit)
	if err != nil {
		log.Printf("ERROR: Failed to list deliveries: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch deliveries")
		return
	}

	views := make([]DeliveryView, 0, len(deliveries))
	for _, delivery := range deliveries {
		views = append(views, formatDelivery(delivery))
	}

	respondJSON(w, http.StatusOK, views)
}

// GetDeliveryByID handles GET /api/deliveries/{id}
func (h *DeliveryHandler) GetDeliveryByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	delivery, err := h.db.Deliveries.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Delivery not found")
			return
		}
		log.Printf("ERROR: Failed to get delivery %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch delivery")
		return
	}

	respondJSON(w, http.StatusOK, formatDelivery(*delivery))
}

// GetDeliveryAttempts handles GET /api/deliveries/{id}/attempts
func (h *DeliveryHandler) GetDeliveryAttempts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	// Check the delivery exists first
	if _, err := h.db.Deliveries.GetByID(id); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Delivery not found")
			return
		}
		log.Printf("ERROR: Failed to get delivery %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch delivery")
		return
	}

	attempts, err := h.db.Attempts.GetByDeliveryID(id)
	if err != nil {
		log.Printf("ERROR: Failed to get attempts for delivery %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch delivery attempts")
		return
	}

	views := make([]AttemptView, 0, len(attempts))
	for _, attempt := range attempts {
		views = append(views, AttemptView{
			ID:          attempt.ID,
			AttemptedAt: attempt.AttemptedAt,
			Outcome:     database.WireToken(attempt.Outcome),
			Notes:       attempt.Notes,
		})
	}

	respondJSON(w, http.StatusOK, views)
}
