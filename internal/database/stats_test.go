package database

import (
	"context"
	"testing"
	"time"
)

func createDeliveryWithDelay(t *testing.T, db *DB, fx fixture, tracking, status, priority string, delay *float64) Delivery {
	t.Helper()

	delivery := Delivery{
		TrackingNumber:   tracking,
		Status:           status,
		CustomerID:       fx.customer.ID,
		RegionID:         fx.region.ID,
		Destination:      "Paris",
		ExpectedDelivery: time.Now().UTC(),
		Delay:            delay,
		Priority:         priority,
	}
	if err := db.Deliveries.Create(&delivery); err != nil {
		t.Fatalf("Failed to create delivery %s: %v", tracking, err)
	}
	return delivery
}

func TestStatsStore_DeliveryTotals_NullDelayCountsAsZero(t *testing.T) {
	db := setupTestDB(t)
	fx := setupFixture(t, db)
	ctx := context.Background()

	three := 3.0
	createDeliveryWithDelay(t, db, fx, "SL-2024-001", StatusDelivered, PriorityStandard, nil)
	createDeliveryWithDelay(t, db, fx, "SL-2024-002", StatusDelivered, PriorityStandard, nil)
	createDeliveryWithDelay(t, db, fx, "SL-2024-003", StatusDelayed, PriorityStandard, &three)

	count, delaySum, err := db.Stats.DeliveryTotals(ctx, DeliveryFilter{})
	if err != nil {
		t.Fatalf("DeliveryTotals failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}
	if delaySum != 3.0 {
		t.Errorf("Expected delay sum 3.0, got %f", delaySum)
	}
}

func TestStatsStore_DeliveryTotals_EmptySet(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	count, delaySum, err := db.Stats.DeliveryTotals(ctx, DeliveryFilter{})
	if err != nil {
		t.Fatalf("DeliveryTotals failed: %v", err)
	}
	if count != 0 || delaySum != 0 {
		t.Errorf("Expected zero totals on empty store, got count=%d sum=%f", count, delaySum)
	}
}

func TestStatsStore_StatusCounts(t *testing.T) {
	db := setupTestDB(t)
	fx := setupFixture(t, db)
	ctx := context.Background()

	createDeliveryWithDelay(t, db, fx, "SL-2024-001", StatusDelivered, PriorityStandard, nil)
	createDeliveryWithDelay(t, db, fx, "SL-2024-002", StatusDelivered, PriorityStandard, nil)
	createDeliveryWithDelay(t, db, fx, "SL-2024-003", StatusInTransit, PriorityStandard, nil)
	createDeliveryWithDelay(t, db, fx, "SL-2024-004", StatusDelayed, PriorityStandard, nil)

	counts, err := db.Stats.StatusCounts(ctx, DeliveryFilter{})
	if err != nil {
		t.Fatalf("StatusCounts failed: %v", err)
	}

	if counts[StatusDelivered] != 2 {
		t.Errorf("Expected 2 delivered, got %d", counts[StatusDelivered])
	}
	if counts[StatusInTransit] != 1 {
		t.Errorf("Expected 1 in transit, got %d", counts[StatusInTransit])
	}
	if counts[StatusDelayed] != 1 {
		t.Errorf("Expected 1 delayed, got %d", counts[StatusDelayed])
	}
	if counts[StatusPending] != 0 {
		t.Errorf("Expected no pending entry, got %d", counts[StatusPending])
	}
}

func TestStatsStore_PriorityBuckets(t *testing.T) {
	db := setupTestDB(t)
	fx := setupFixture(t, db)
	ctx := context.Background()

	two := 2.0
	four := 4.0
	createDeliveryWithDelay(t, db, fx, "SL-2024-001", StatusDelayed, PriorityExpress, &two)
	createDeliveryWithDelay(t, db, fx, "SL-2024-002", StatusDelayed, PriorityExpress, &four)
	createDeliveryWithDelay(t, db, fx, "SL-2024-003", StatusDelivered, PriorityStandard, nil)

	buckets, err := db.Stats.PriorityBuckets(ctx, DeliveryFilter{})
	if err != nil {
		t.Fatalf("PriorityBuckets failed: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(buckets))
	}

	byPriority := make(map[string]PriorityBucket)
	for _, b := range buckets {
		byPriority[b.Priority] = b
	}
	express := byPriority[PriorityExpress]
	if express.Count != 2 || express.AvgDelay != 3.0 {
		t.Errorf("Unexpected express bucket: %+v", express)
	}
	standard := byPriority[PriorityStandard]
	if standard.Count != 1 || standard.AvgDelay != 0 {
		t.Errorf("Unexpected standard bucket: %+v", standard)
	}
}

func TestStatsStore_RecentClaims_LimitAndOrder(t *testing.T) {
	db := setupTestDB(t)
	fx := setupFixture(t, db)
	ctx := context.Background()

	delivery := createDeliveryWithDelay(t, db, fx, "SL-2024-001", StatusDelivered, PriorityStandard, nil)

	for i := 0; i < 7; i++ {
		claim := Claim{
			DeliveryID:  delivery.ID,
			CustomerID:  fx.customer.ID,
			Type:        ClaimTypeDamage,
			Amount:      float64(10 * (i + 1)),
			Status:      ClaimPending,
			Description: "claim",
		}
		if err := db.Claims.Create(&claim); err != nil {
			t.Fatalf("Failed to create claim: %v", err)
		}
	}

	claims, err := db.Stats.RecentClaims(ctx, 5)
	if err != nil {
		t.Fatalf("RecentClaims failed: %v", err)
	}
	if len(claims) != 5 {
		t.Fatalf("Expected 5 claims, got %d", len(claims))
	}

	// Creation timestamps land in the same second; ids break the tie, so
	// the newest claim comes back first.
	if claims[0].Amount != 70 {
		t.Errorf("Expected newest claim first, got amount %f", claims[0].Amount)
	}
	for i := 1; i < len(claims); i++ {
		if claims[i].ID > claims[i-1].ID {
			t.Errorf("Claims not ordered newest first at index %d", i)
		}
	}
}

func TestStatsStore_Counts(t *testing.T) {
	db := setupTestDB(t)
	fx := setupFixture(t, db)
	ctx := context.Background()

	d1 := createDeliveryWithDelay(t, db, fx, "SL-2024-001", StatusDelivered, PriorityStandard, nil)
	d2 := createDeliveryWithDelay(t, db, fx, "SL-2024-002", StatusInTransit, PriorityStandard, nil)
	d3 := createDeliveryWithDelay(t, db, fx, "SL-2024-003", StatusPending, PriorityStandard, nil)

	policies := []InsurancePolicy{
		{DeliveryID: d1.ID, CoverageAmount: 500, Premium: 10, Status: InsuranceActive},
		{DeliveryID: d2.ID, CoverageAmount: 800, Premium: 15, Status: InsuranceActive},
		{DeliveryID: d3.ID, CoverageAmount: 300, Premium: 8, Status: InsuranceExpired},
	}
	for i := range policies {
		if err := db.Insurance.Create(&policies[i]); err != nil {
			t.Fatalf("Failed to create policy: %v", err)
		}
	}

	claim := Claim{DeliveryID: d1.ID, CustomerID: fx.customer.ID, Type: ClaimTypeLoss,
		Amount: 120, Status: ClaimApproved, Description: "lost parcel"}
	if err := db.Claims.Create(&claim); err != nil {
		t.Fatalf("Failed to create claim: %v", err)
	}

	insured, err := db.Stats.CountActiveInsurance(ctx)
	if err != nil {
		t.Fatalf("CountActiveInsurance failed: %v", err)
	}
	if insured != 2 {
		t.Errorf("Expected 2 active policies, got %d", insured)
	}

	totalClaims, err := db.Stats.CountClaims(ctx)
	if err != nil {
		t.Fatalf("CountClaims failed: %v", err)
	}
	if totalClaims != 1 {
		t.Errorf("Expected 1 claim, got %d", totalClaims)
	}
}

func TestStatsStore_FilterScopesDeliveryQueriesOnly(t *testing.T) {
	db := setupTestDB(t)
	fx := setupFixture(t, db)
	ctx := context.Background()

	createDeliveryWithDelay(t, db, fx, "SL-2024-001", StatusDelivered, PriorityExpress, nil)
	createDeliveryWithDelay(t, db, fx, "SL-2024-002", StatusDelayed, PriorityStandard, nil)

	filter := DeliveryFilter{Priorities: []string{"express"}}

	count, _, err := db.Stats.DeliveryTotals(ctx, filter)
	if err != nil {
		t.Fatalf("DeliveryTotals failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 filtered delivery, got %d", count)
	}

	counts, err := db.Stats.StatusCounts(ctx, filter)
	if err != nil {
		t.Fatalf("StatusCounts failed: %v", err)
	}
	if counts[StatusDelayed] != 0 {
		t.Errorf("Expected delayed delivery excluded by priority filter, got %d", counts[StatusDelayed])
	}
}
