package handlers

import (
	"net/http"
	"strconv"
	"time"

	"logistics-dashboard/internal/database"
)

// parseDeliveryFilter reads the shared filter query parameters:
// dateFrom/dateTo (RFC 3339 or plain date), repeated status, priority and
// region (id). Absent parameters impose no constraint. The boundary does
// not reject bad input: an unparseable date leaves that bound open, a
// non-numeric region id is skipped, and unknown enum tokens flow through
// to the filter where they match nothing.
func parseDeliveryFilter(r *http.Request) database.DeliveryFilter {
	query := r.URL.Query()

	filter := database.DeliveryFilter{
		Statuses:   query["status"],
		Priorities: query["priority"],
	}

	if t, ok := parseTime(query.Get("dateFrom")); ok {
		filter.From = &t
	}
	if t, ok := parseTime(query.Get("dateTo")); ok {
		filter.To = &t
	}

	for _, raw := range query["region"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		filter.RegionIDs = append(filter.RegionIDs, id)
	}

	return filter
}

func parseTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
