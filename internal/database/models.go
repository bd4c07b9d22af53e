package database

import (
	"database/sql"
	"strings"
	"time"
)

type Region struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Performance int    `json:"performance"`
}

type Customer struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LoyaltyPoints int    `json:"loyalty_points"`
	Tier          string `json:"tier"`
}

type Delivery struct {
	ID                int        `json:"id"`
	TrackingNumber    string     `json:"tracking_number"`
	Status            string     `json:"status"`
	CustomerID        int        `json:"customer_id"`
	RegionID          int        `json:"region_id"`
	Destination       string     `json:"destination"`
	ExpectedDelivery  time.Time  `json:"expected_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
	Delay             *float64   `json:"delay,omitempty"`
	Priority          string     `json:"priority"`
	Weight            float64    `json:"weight"`
	Dimensions        *string    `json:"dimensions,omitempty"`
	SignatureRequired bool       `json:"signature_required"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// CustomerName is populated by queries that join customers.
	CustomerName string `json:"customer_name,omitempty"`
}

type DeliveryAttempt struct {
	ID          int       `json:"id"`
	DeliveryID  int       `json:"delivery_id"`
	AttemptedAt time.Time `json:"attempted_at"`
	Outcome     string    `json:"outcome"`
	Notes       string    `json:"notes"`
}

type InsurancePolicy struct {
	ID             int     `json:"id"`
	DeliveryID     int     `json:"delivery_id"`
	CoverageAmount float64 `json:"coverage_amount"`
	Premium        float64 `json:"premium"`
	Status         string  `json:"status"`
}

type Claim struct {
	ID          int       `json:"id"`
	DeliveryID  int       `json:"delivery_id"`
	CustomerID  int       `json:"customer_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Resolution  *string   `json:"resolution,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Trend struct {
	ID         int       `json:"id"`
	Date       time.Time `json:"date"`
	Deliveries int       `json:"deliveries"`
	OnTime     int       `json:"on_time"`
	Delayed    int       `json:"delayed"`
}

// RegionSummary is one row of the regional performance report.
type RegionSummary struct {
	ID          int
	Name        string
	Deliveries  int
	Performance int
}

// RegionStore handles database operations for regions
type RegionStore struct {
	db *sql.DB
}

func NewRegionStore(db *sql.DB) *RegionStore {
	return &RegionStore{db: db}
}

// Create creates a new region
func (s *RegionStore) Create(region *Region) error {
	result, err := s.db.Exec(
		"INSERT INTO regions (name, performance) VALUES (?, ?)",
		region.Name, region.Performance,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	region.ID = int(id)
	return nil
}

// GetAll returns all regions ordered by name
func (s *RegionStore) GetAll() ([]Region, error) {
	rows, err := s.db.Query("SELECT id, name, performance FROM regions ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regions []Region
	for rows.Next() {
		var region Region
		if err := rows.Scan(&region.ID, &region.Name, &region.Performance); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}

	return regions, rows.Err()
}

// Summaries returns one row per region with the total number of deliveries
// ever linked to it and its stored performance score. A non-empty regionIDs
// limits which regions are returned; the per-region delivery count is never
// filtered.
func (s *RegionStore) Summaries(regionIDs []int) ([]RegionSummary, error) {
	query := `SELECT r.id, r.name, COUNT(d.id), r.performance
			  FROM regions r
			  LEFT JOIN deliveries d ON d.region_id = r.id`

	var args []interface{}
	if len(regionIDs) > 0 {
		query += " WHERE r.id IN (?" + strings.Repeat(", ?", len(regionIDs)-1) + ")"
		for _, id := range regionIDs {
			args = append(args, id)
		}
	}
	query += " GROUP BY r.id ORDER BY r.name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []RegionSummary
	for rows.Next() {
		var summary RegionSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Deliveries, &summary.Performance); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// CustomerStore handles database operations for customers
type CustomerStore struct {
	db *sql.DB
}

func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// Create creates a new customer
func (s *CustomerStore) Create(customer *Customer) error {
	result, err := s.db.Exec(
		`INSERT INTO customers (name, email, phone, address, loyalty_points, tier)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.LoyaltyPoints, StorageToken(customer.Tier),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	customer.ID = int(id)
	return nil
}

// GetByID returns a customer by ID
func (s *CustomerStore) GetByID(id int) (*Customer, error) {
	var customer Customer
	err := s.db.QueryRow(
		`SELECT id, name, email, phone, address, loyalty_points, tier
		 FROM customers WHERE id = ?`, id,
	).Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.Address, &customer.LoyaltyPoints, &customer.Tier)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeliveryStore handles database operations for deliveries
type DeliveryStore struct {
	db *sql.DB
}

func NewDeliveryStore(db *sql.DB) *DeliveryStore {
	return &DeliveryStore{db: db}
}

const deliveryColumns = `d.id, d.tracking_number, d.status, d.customer_id, d.region_id,
		  d.destination, d.expected_delivery, d.actual_delivery, d.delay,
		  d.priority, d.weight, d.dimensions, d.signature_required,
		  d.created_at, d.updated_at, c.name`

func scanDelivery(scanner interface{ Scan(...interface{}) error }) (Delivery, error) {
	var delivery Delivery
	err := scanner.Scan(&delivery.ID, &delivery.TrackingNumber, &delivery.Status,
		&delivery.CustomerID, &delivery.RegionID, &delivery.Destination,
		&delivery.ExpectedDelivery, &delivery.ActualDelivery, &delivery.Delay,
		&delivery.Priority, &delivery.Weight, &delivery.Dimensions,
		&delivery.SignatureRequired, &delivery.CreatedAt, &delivery.UpdatedAt,
		&delivery.CustomerName)
	return delivery, err
}

// List returns the most recently created deliveries matching the filter,
// newest first, capped at limit rows.
func (s *DeliveryStore) List(filter DeliveryFilter, limit int) ([]Delivery, error) {
	where, args := filter.whereClause("d")
	query := `SELECT ` + deliveryColumns + `
			  FROM deliveries d
			  JOIN customers c ON c.id = d.customer_id` +
		where + `
			  ORDER BY d.created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []Delivery
	for rows.Next() {
		delivery, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, delivery)
	}

	return deliveries, rows.Err()
}

// GetByID returns a delivery by ID
func (s *DeliveryStore) GetByID(id int) (*Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
			  FROM deliveries d
			  JOIN customers c ON c.id = d.customer_id
			  WHERE d.id = ?`

	delivery, err := scanDelivery(s.db.QueryRow(query, id))
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// Create creates a new delivery. The status and priority are folded to
// storage case before insert.
func (s *DeliveryStore) Create(delivery *Delivery) error {
	result, err := s.db.Exec(
		`INSERT INTO deliveries (tracking_number, status, customer_id, region_id,
		 destination, expected_delivery, actual_delivery, delay, priority,
		 weight, dimensions, signature_required)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		delivery.TrackingNumber, StorageToken(delivery.Status), delivery.CustomerID,
		delivery.RegionID, delivery.Destination, delivery.ExpectedDelivery,
		delivery.ActualDelivery, delivery.Delay, StorageToken(delivery.Priority),
		delivery.Weight, delivery.Dimensions, delivery.SignatureRequired,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	delivery.ID = int(id)

	// Get the created row to populate timestamps
	created, err := s.GetByID(delivery.ID)
	if err != nil {
		return err
	}
	delivery.CreatedAt = created.CreatedAt
	delivery.UpdatedAt = created.UpdatedAt
	delivery.CustomerName = created.CustomerName

	return nil
}

// SetCreatedAt backdates a delivery's creation timestamp. Used by the
// seeder to spread demo data across the lookback window.
func (s *DeliveryStore) SetCreatedAt(id int, createdAt time.Time) error {
	result, err := s.db.Exec("UPDATE deliveries SET created_at = ? WHERE id = ?", createdAt, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AttemptStore handles database operations for delivery attempts
type AttemptStore struct {
	db *sql.DB
}

func NewAttemptStore(db *sql.DB) *AttemptStore {
	return &AttemptStore{db: db}
}

// GetByDeliveryID returns all attempts for a delivery, oldest first
func (s *AttemptStore) GetByDeliveryID(deliveryID int) ([]DeliveryAttempt, error) {
	rows, err := s.db.Query(
		`SELECT id, delivery_id, attempted_at, outcome, notes
		 FROM delivery_attempts WHERE delivery_id = ? ORDER BY attempted_at ASC`,
		deliveryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []DeliveryAttempt
	for rows.Next() {
		var attempt DeliveryAttempt
		if err := rows.Scan(&attempt.ID, &attempt.DeliveryID, &attempt.AttemptedAt,
			&attempt.Outcome, &attempt.Notes); err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

// Create creates a new delivery attempt
func (s *AttemptStore) Create(attempt *DeliveryAttempt) error {
	result, err := s.db.Exec(
		`INSERT INTO delivery_attempts (delivery_id, attempted_at, outcome, notes)
		 VALUES (?, ?, ?, ?)`,
		attempt.DeliveryID, attempt.AttemptedAt, StorageToken(attempt.Outcome), attempt.Notes,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	attempt.ID = int(id)
	return nil
}

// InsuranceStore handles database operations for insurance policies
type InsuranceStore struct {
	db *sql.DB
}

func NewInsuranceStore(db *sql.DB) *InsuranceStore {
	return &InsuranceStore{db: db}
}

// Create creates a new insurance policy
func (s *InsuranceStore) Create(policy *InsurancePolicy) error {
	result, err := s.db.Exec(
		`INSERT INTO insurance_policies (delivery_id, coverage_amount, premium, status)
		 VALUES (?, ?, ?, ?)`,
		policy.DeliveryID, policy.CoverageAmount, policy.Premium, StorageToken(policy.Status),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	policy.ID = int(id)
	return nil
}

// GetByDeliveryID returns the policy attached to a delivery
func (s *InsuranceStore) GetByDeliveryID(deliveryID int) (*InsurancePolicy, error) {
	var policy InsurancePolicy
	err := s.db.QueryRow(
		`SELECT id, delivery_id, coverage_amount, premium, status
		 FROM insurance_policies WHERE delivery_id = ?`, deliveryID,
	).Scan(&policy.ID, &policy.DeliveryID, &policy.CoverageAmount,
		&policy.Premium, &policy.Status)
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// ClaimStore handles database operations for claims
type ClaimStore struct {
	db *sql.DB
}

func NewClaimStore(db *sql.DB) *ClaimStore {
	return &ClaimStore{db: db}
}

// Create creates a new claim
func (s *ClaimStore) Create(claim *Claim) error {
	result, err := s.db.Exec(
		`INSERT INTO claims (delivery_id, customer_id, type, amount, status, description, resolution)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		claim.DeliveryID, claim.CustomerID, StorageToken(claim.Type), claim.Amount,
		StorageToken(claim.Status), claim.Description, claim.Resolution,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	claim.ID = int(id)

	err = s.db.QueryRow("SELECT created_at FROM claims WHERE id = ?", claim.ID).Scan(&claim.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

// TrendStore handles database operations for daily trend snapshots
type TrendStore struct {
	db *sql.DB
}

func NewTrendStore(db *sql.DB) *TrendStore {
	return &TrendStore{db: db}
}

// Upsert inserts or replaces the snapshot for a date
func (s *TrendStore) Upsert(trend *Trend) error {
	result, err := s.db.Exec(
		`INSERT INTO delivery_trends (date, deliveries, on_time, delayed)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   deliveries = excluded.deliveries,
		   on_time = excluded.on_time,
		   delayed = excluded.delayed`,
		trend.Date, trend.Deliveries, trend.OnTime, trend.Delayed,
	)
	if err != nil {
		return err
	}

	if id, err := result.LastInsertId(); err == nil && id > 0 {
		trend.ID = int(id)
	}
	return nil
}

// Recent returns the n most recent snapshots ordered oldest to newest.
func (s *TrendStore) Recent(n int) ([]Trend, error) {
	rows, err := s.db.Query(
		`SELECT id, date, deliveries, on_time, delayed
		 FROM delivery_trends ORDER BY date DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []Trend
	for rows.Next() {
		var trend Trend
		if err := rows.Scan(&trend.ID, &trend.Date, &trend.Deliveries,
			&trend.OnTime, &trend.Delayed); err != nil {
			return nil, err
		}
		trends = append(trends, trend)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query walks backwards from the newest snapshot; reverse so the
	// caller sees oldest first.
	for i, j := 0, len(trends)-1; i < j; i, j = i+1, j-1 {
		trends[i], trends[j] = trends[j], trends[i]
	}

	return trends, nil
}
