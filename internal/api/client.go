package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"logistics-dashboard/internal/handlers"
	"logistics-dashboard/internal/stats"
)

// Client is an HTTP client for the dashboard read API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, 30*time.Second)
}

// NewClientWithTimeout creates a new API client with a custom request timeout
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError represents an error from the API
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// Filters mirror the shared query parameters of the reporting endpoints.
// The zero value requests everything.
type Filters struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Statuses   []string
	Priorities []string
	RegionIDs  []int
}

// query renders the filters as a URL query string, empty when unset.
func (f Filters) query() string {
	values := url.Values{}
	if f.DateFrom != nil {
		values.Set("dateFrom", f.DateFrom.Format(time.RFC3339))
	}
	if f.DateTo != nil {
		values.Set("dateTo", f.DateTo.Format(time.RFC3339))
	}
	for _, s := range f.Statuses {
		values.Add("status", s)
	}
	for _, p := range f.Priorities {
		values.Add("priority", p)
	}
	for _, id := range f.RegionIDs {
		values.Add("region", strconv.Itoa(id))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// doGet performs a GET request and handles error responses
func (c *Client) doGet(path string) (*http.Response, error) {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()

		apiErr := APIError{Code: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return nil, &apiErr
	}

	return resp, nil
}

func (c *Client) getJSON(path string, v interface{}) error {
	resp, err := c.doGet(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// HealthCheck checks if the API server is healthy
func (c *Client) HealthCheck() error {
	resp, err := c.doGet("/api/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// GetDeliveries returns the most recent deliveries matching the filters
func (c *Client) GetDeliveries(filters Filters) ([]handlers.DeliveryView, error) {
	var deliveries []handlers.DeliveryView
	if err := c.getJSON("/api/deliveries"+filters.query(), &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// GetDelivery returns a specific delivery by ID
func (c *Client) GetDelivery(id int) (*handlers.DeliveryView, error) {
	var delivery handlers.DeliveryView
	if err := c.getJSON("/api/deliveries/"+strconv.Itoa(id), &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}

// GetAttempts returns the attempts recorded for a delivery
func (c *Client) GetAttempts(deliveryID int) ([]handlers.AttemptView, error) {
	var attempts []handlers.AttemptView
	if err := c.getJSON("/api/deliveries/"+strconv.Itoa(deliveryID)+"/attempts", &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetRegions returns the regional performance summaries
func (c *Client) GetRegions(regionIDs []int) ([]handlers.RegionView, error) {
	var regions []handlers.RegionView
	if err := c.getJSON("/api/regions"+Filters{RegionIDs: regionIDs}.query(), &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// GetTrends returns the daily trend snapshots
func (c *Client) GetTrends() ([]handlers.TrendView, error) {
	var trends []handlers.TrendView
	if err := c.getJSON("/api/trends", &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

// GetStats returns the aggregated dashboard statistics
func (c *Client) GetStats(filters Filters) (*stats.Dashboard, error) {
	var dashboard stats.Dashboard
	if err := c.getJSON("/api/stats"+filters.query(), &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
