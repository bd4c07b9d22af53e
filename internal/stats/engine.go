// Package stats derives the dashboard statistics from the raw grouped
// counts the store produces: totals, status buckets, per-priority
// performance, the recent-claims feed, and insurance counts.
package stats

import (
	"context"
	"math"
	"sort"

	"logistics-dashboard/internal/database"

	"golang.org/x/sync/errgroup"
)

// recentClaimLimit caps the unfiltered recent-activity feed.
const recentClaimLimit = 5

// noDataPercent is the percentage reported when a rate has no deliveries
// to divide by. "No data" is presented as fully satisfied rather than
// dividing by zero; this is a product policy, not a derived fact.
const noDataPercent = 100

// Dashboard is the aggregated statistics payload in wire shape.
type Dashboard struct {
	TotalDeliveries      int                   `json:"totalDeliveries"`
	OnTimeDeliveries     int                   `json:"onTimeDeliveries"`
	DelayedDeliveries    int                   `json:"delayedDeliveries"`
	InTransit            int                   `json:"inTransit"`
	AverageDeliveryTime  int                   `json:"averageDeliveryTime"`
	CustomerSatisfaction int                   `json:"customerSatisfaction"`
	TotalClaims          int                   `json:"totalClaims"`
	InsuredDeliveries    int                   `json:"insuredDeliveries"`
	InsuranceClaims      int                   `json:"insuranceClaims"`
	RecentClaims         []ClaimSummary        `json:"recentClaims"`
	DeliveryPerformance  []PriorityPerformance `json:"deliveryPerformance"`
}

// ClaimSummary is the reduced claim shape embedded in the dashboard.
type ClaimSummary struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

// PriorityPerformance is one per-priority bucket of the filtered set.
type PriorityPerformance struct {
	Priority        string `json:"priority"`
	AvgDeliveryTime int    `json:"avgDeliveryTime"`
	SuccessRate     int    `json:"successRate"`
}

// Zero returns a fully zeroed payload with empty (non-nil) slices, so the
// error body of the stats endpoint still decodes into a complete blank
// dashboard.
func Zero() Dashboard {
	return Dashboard{
		RecentClaims:        []ClaimSummary{},
		DeliveryPerformance: []PriorityPerformance{},
	}
}

// Engine runs the independent aggregation queries and derives the
// percentage and average figures.
type Engine struct {
	store *database.StatsStore
}

func NewEngine(store *database.StatsStore) *Engine {
	return &Engine{store: store}
}

// Collect gathers all dashboard statistics under the given delivery
// filter. The six store queries are independent of one another and run
// concurrently; the first failure cancels the rest and fails the whole
// collection.
func (e *Engine) Collect(ctx context.Context, filter database.DeliveryFilter) (Dashboard, error) {
	var (
		total        int
		delaySum     float64
		statusCounts map[string]int
		buckets      []database.PriorityBucket
		recentClaims []database.Claim
		insured      int
		totalClaims  int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, delaySum, err = e.store.DeliveryTotals(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		statusCounts, err = e.store.StatusCounts(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		buckets, err = e.store.PriorityBuckets(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		recentClaims, err = e.store.RecentClaims(ctx, recentClaimLimit)
		return err
	})
	g.Go(func() error {
		var err error
		insured, err = e.store.CountActiveInsurance(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalClaims, err = e.store.CountClaims(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Zero(), err
	}

	dashboard := Zero()
	dashboard.TotalDeliveries = total
	dashboard.OnTimeDeliveries = statusCounts[database.StatusDelivered]
	dashboard.DelayedDeliveries = statusCounts[database.StatusDelayed]
	dashboard.InTransit = statusCounts[database.StatusInTransit]
	dashboard.AverageDeliveryTime = meanHours(delaySum, total)
	dashboard.CustomerSatisfaction = rate(dashboard.OnTimeDeliveries, total)
	dashboard.TotalClaims = totalClaims
	dashboard.InsuredDeliveries = insured

	for _, claim := range recentClaims {
		dashboard.RecentClaims = append(dashboard.RecentClaims, ClaimSummary{
			ID:          claim.ID,
			Type:        database.WireToken(claim.Type),
			Amount:      claim.Amount,
			Status:      database.WireToken(claim.Status),
			Description: claim.Description,
		})
		if claim.Status == database.ClaimApproved || claim.Status == database.ClaimRefunded {
			dashboard.InsuranceClaims++
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		return priorityRank(buckets[i].Priority) < priorityRank(buckets[j].Priority)
	})
	for _, bucket := range buckets {
		dashboard.DeliveryPerformance = append(dashboard.DeliveryPerformance, PriorityPerformance{
			Priority:        database.WireToken(bucket.Priority),
			AvgDeliveryTime: roundHalfUp(bucket.AvgDelay),
			SuccessRate:     rate(bucket.Count, total),
		})
	}

	return dashboard, nil
}

// meanHours is the average delay over count deliveries, 0 when there are
// none. The delay sum already treats a null delay as zero hours, so the
// mean is taken over all matching deliveries, not just the delayed ones.
func meanHours(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	return roundHalfUp(sum / float64(count))
}

// rate is part/whole as a rounded percentage, noDataPercent when the whole
// is empty.
func rate(part, whole int) int {
	if whole == 0 {
		return noDataPercent
	}
	return roundHalfUp(float64(part) / float64(whole) * 100)
}

// roundHalfUp rounds to the nearest integer, halves away from zero. All
// figures here are non-negative, so this is round-half-up.
func roundHalfUp(v float64) int {
	return int(math.Round(v))
}

func priorityRank(priority string) int {
	for i, p := range database.PriorityOrder {
		if p == priority {
			return i
		}
	}
	return len(database.PriorityOrder)
}
