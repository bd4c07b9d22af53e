package database

import (
	"testing"
)

func TestSeed(t *testing.T) {
	db := setupTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	regions, err := db.Regions.GetAll()
	if err != nil {
		t.Fatalf("GetAll regions failed: %v", err)
	}
	if len(regions) != 5 {
		t.Errorf("Expected 5 regions, got %d", len(regions))
	}

	deliveries, err := db.Deliveries.List(DeliveryFilter{}, 100)
	if err != nil {
		t.Fatalf("List deliveries failed: %v", err)
	}
	if len(deliveries) != 8 {
		t.Errorf("Expected 8 deliveries, got %d", len(deliveries))
	}
	for _, d := range deliveries {
		if d.CustomerName == "" {
			t.Errorf("Delivery %s missing joined customer name", d.TrackingNumber)
		}
	}

	trends, err := db.Trends.Recent(7)
	if err != nil {
		t.Fatalf("Recent trends failed: %v", err)
	}
	if len(trends) != 7 {
		t.Errorf("Expected 7 trend snapshots, got %d", len(trends))
	}
}

func TestSeed_Rerunnable(t *testing.T) {
	db := setupTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM deliveries").Scan(&count); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if count != 8 {
		t.Errorf("Expected 8 deliveries after reseed, got %d", count)
	}
}
