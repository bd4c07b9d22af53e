package handlers

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseDeliveryFilter_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/deliveries", nil)
	filter := parseDeliveryFilter(req)
	if !filter.IsZero() {
		t.Errorf("Expected zero filter, got %+v", filter)
	}
}

func TestParseDeliveryFilter_Dates(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/deliveries?dateFrom=2024-06-01&dateTo=2024-06-30T23:59:59Z", nil)
	filter := parseDeliveryFilter(req)

	if filter.From == nil || !filter.From.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected From bound: %v", filter.From)
	}
	if filter.To == nil || !filter.To.Equal(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("Unexpected To bound: %v", filter.To)
	}
}

func TestParseDeliveryFilter_OneSidedAndBadDates(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/deliveries?dateFrom=2024-06-01", nil)
	filter := parseDeliveryFilter(req)
	if filter.From == nil || filter.To != nil {
		t.Errorf("Expected only the lower bound, got %+v", filter)
	}

	req = httptest.NewRequest("GET", "/api/deliveries?dateFrom=yesterday&dateTo=2024-06-30", nil)
	filter = parseDeliveryFilter(req)
	if filter.From != nil {
		t.Errorf("Expected unparseable lower bound dropped, got %v", filter.From)
	}
	if filter.To == nil {
		t.Error("Expected valid upper bound kept")
	}
}

func TestParseDeliveryFilter_TokensAndRegions(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/deliveries?status=delivered&status=delayed&priority=express&region=1&region=x&region=3", nil)
	filter := parseDeliveryFilter(req)

	if len(filter.Statuses) != 2 || filter.Statuses[0] != "delivered" {
		t.Errorf("Unexpected statuses: %v", filter.Statuses)
	}
	if len(filter.Priorities) != 1 || filter.Priorities[0] != "express" {
		t.Errorf("Unexpected priorities: %v", filter.Priorities)
	}
	if len(filter.RegionIDs) != 2 || filter.RegionIDs[0] != 1 || filter.RegionIDs[1] != 3 {
		t.Errorf("Expected non-numeric region skipped, got %v", filter.RegionIDs)
	}
}
