package database

import (
	"context"
	"database/sql"
)

// PriorityBucket is one GROUP BY priority row over the filtered delivery
// set: how many deliveries carry the priority and their mean delay in
// hours (a null delay counts as zero).
type PriorityBucket struct {
	Priority string
	Count    int
	AvgDelay float64
}

// StatsStore issues the grouped counts and averages behind the dashboard
// statistics. Every method is independent of the others so callers can run
// them concurrently; each takes a context because the stats request fans
// out and cancels the rest on first failure.
type StatsStore struct {
	db *sql.DB
}

func NewStatsStore(db *sql.DB) *StatsStore {
	return &StatsStore{db: db}
}

// DeliveryTotals returns the count of matching deliveries and the sum of
// their delay hours, with null delays counted as zero.
func (s *StatsStore) DeliveryTotals(ctx context.Context, filter DeliveryFilter) (count int, delaySum float64, err error) {
	where, args := filter.whereClause("")
	query := "SELECT COUNT(*), COALESCE(SUM(COALESCE(delay, 0)), 0) FROM deliveries" + where

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count, &delaySum)
	return count, delaySum, err
}

// StatusCounts returns per-status delivery counts within the filtered set,
// keyed by stored status value.
func (s *StatsStore) StatusCounts(ctx context.Context, filter DeliveryFilter) (map[string]int, error) {
	where, args := filter.whereClause("")
	query := "SELECT status, COUNT(*) FROM deliveries" + where + " GROUP BY status"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// PriorityBuckets returns one bucket per priority present in the filtered
// set, count and mean delay per bucket.
func (s *StatsStore) PriorityBuckets(ctx context.Context, filter DeliveryFilter) ([]PriorityBucket, error) {
	where, args := filter.whereClause("")
	query := `SELECT priority, COUNT(*), AVG(COALESCE(delay, 0))
			  FROM deliveries` + where + ` GROUP BY priority`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []PriorityBucket
	for rows.Next() {
		var bucket PriorityBucket
		if err := rows.Scan(&bucket.Priority, &bucket.Count, &bucket.AvgDelay); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

// RecentClaims returns the n most recently created claims system-wide.
// Claims are deliberately not scoped by the delivery filter; this is the
// dashboard's unfiltered recent-activity feed.
func (s *StatsStore) RecentClaims(ctx context.Context, n int) ([]Claim, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, delivery_id, customer_id, type, amount, status, description, resolution, created_at
		 FROM claims ORDER BY created_at DESC, id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []Claim
	for rows.Next() {
		var claim Claim
		if err := rows.Scan(&claim.ID, &claim.DeliveryID, &claim.CustomerID,
			&claim.Type, &claim.Amount, &claim.Status, &claim.Description,
			&claim.Resolution, &claim.CreatedAt); err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}

	return claims, rows.Err()
}

// CountActiveInsurance returns the number of active insurance policies
// system-wide, unscoped by the delivery filter.
func (s *StatsStore) CountActiveInsurance(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM insurance_policies WHERE status = ?", InsuranceActive,
	).Scan(&count)
	return count, err
}

// CountClaims returns the total number of claims system-wide.
func (s *StatsStore) CountClaims(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM claims").Scan(&count)
	return count, err
}
