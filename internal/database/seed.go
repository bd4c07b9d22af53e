package database

import (
	"fmt"
	"time"
)

// Seed wipes and repopulates every table with the demo dataset the
// dashboard ships with. This is the only code path that writes to the
// store; the reporting endpoints are read-only.
func Seed(db *DB) error {
	tables := []string{
		"delivery_trends", "claims", "insurance_policies",
		"delivery_attempts", "deliveries", "customers", "regions",
	}
	for _, table := range tables {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	regions := []Region{
		{Name: "Paris", Performance: 96},
		{Name: "Lyon", Performance: 94},
		{Name: "Marseille", Performance: 92},
		{Name: "Bordeaux", Performance: 95},
		{Name: "Lille", Performance: 93},
	}
	for i := range regions {
		if err := db.Regions.Create(&regions[i]); err != nil {
			return fmt.Errorf("failed to seed region %s: %w", regions[i].Name, err)
		}
	}

	customers := []Customer{
		{Name: "Marie Dubois", Email: "marie.dubois@example.com", Phone: "+33123456789", Address: "123 Rue de Paris, Paris", LoyaltyPoints: 1250, Tier: "GOLD"},
		{Name: "Jean Martin", Email: "jean.martin@example.com", Phone: "+33123456790", Address: "456 Avenue de Lyon, Lyon", LoyaltyPoints: 430, Tier: "SILVER"},
		{Name: "Sophie Bernard", Email: "sophie.bernard@example.com", Phone: "+33123456791", Address: "789 Boulevard de Marseille, Marseille", LoyaltyPoints: 80, Tier: "STANDARD"},
		{Name: "Pierre Moreau", Email: "pierre.moreau@example.com", Phone: "+33123456792", Address: "12 Quai de Bordeaux, Bordeaux", LoyaltyPoints: 2100, Tier: "PLATINUM"},
	}
	for i := range customers {
		if err := db.Customers.Create(&customers[i]); err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", customers[i].Name, err)
		}
	}

	now := time.Now().UTC()
	delay := func(hours float64) *float64 { return &hours }
	at := func(t time.Time) *time.Time { return &t }
	dims := func(s string) *string { return &s }

	deliveries := []struct {
		Delivery
		age time.Duration
	}{
		{Delivery{TrackingNumber: "SL-2024-001", Status: StatusDelivered, CustomerID: customers[0].ID, RegionID: regions[0].ID,
			Destination: "Paris", ExpectedDelivery: now, ActualDelivery: at(now.Add(-24 * time.Hour)),
			Priority: PriorityExpress, Weight: 2.4, Dimensions: dims("30x20x15"), SignatureRequired: true}, 1 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-002", Status: StatusDelayed, CustomerID: customers[1].ID, RegionID: regions[1].ID,
			Destination: "Lyon", ExpectedDelivery: now, ActualDelivery: nil, Delay: delay(2.5),
			Priority: PriorityStandard, Weight: 5.1}, 3 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-003", Status: StatusInTransit, CustomerID: customers[2].ID, RegionID: regions[2].ID,
			Destination: "Marseille", ExpectedDelivery: now.Add(24 * time.Hour),
			Priority: PriorityPriority, Weight: 1.2, Dimensions: dims("20x15x10"), SignatureRequired: true}, 6 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-004", Status: StatusDelivered, CustomerID: customers[3].ID, RegionID: regions[3].ID,
			Destination: "Bordeaux", ExpectedDelivery: now.Add(-48 * time.Hour), ActualDelivery: at(now.Add(-50 * time.Hour)),
			Priority: PriorityEconomy, Weight: 12.8}, 52 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-005", Status: StatusOutForDelivery, CustomerID: customers[0].ID, RegionID: regions[4].ID,
			Destination: "Lille", ExpectedDelivery: now.Add(6 * time.Hour),
			Priority: PriorityExpress, Weight: 0.8}, 18 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-006", Status: StatusDelayed, CustomerID: customers[1].ID, RegionID: regions[0].ID,
			Destination: "Paris", ExpectedDelivery: now.Add(-12 * time.Hour), Delay: delay(6),
			Priority: PriorityEconomy, Weight: 7.5}, 30 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-007", Status: StatusFailed, CustomerID: customers[2].ID, RegionID: regions[1].ID,
			Destination: "Lyon", ExpectedDelivery: now.Add(-72 * time.Hour),
			Priority: PriorityStandard, Weight: 3.3}, 80 * time.Hour},
		{Delivery{TrackingNumber: "SL-2024-008", Status: StatusPending, CustomerID: customers[3].ID, RegionID: regions[2].ID,
			Destination: "Marseille", ExpectedDelivery: now.Add(96 * time.Hour),
			Priority: PriorityStandard, Weight: 4.0}, 2 * time.Hour},
	}
	for i := range deliveries {
		if err := db.Deliveries.Create(&deliveries[i].Delivery); err != nil {
			return fmt.Errorf("failed to seed delivery %s: %w", deliveries[i].TrackingNumber, err)
		}
		createdAt := now.Add(-deliveries[i].age)
		if err := db.Deliveries.SetCreatedAt(deliveries[i].ID, createdAt); err != nil {
			return fmt.Errorf("failed to backdate delivery %s: %w", deliveries[i].TrackingNumber, err)
		}
	}

	attempts := []DeliveryAttempt{
		{DeliveryID: deliveries[0].ID, AttemptedAt: now.Add(-26 * time.Hour), Outcome: AttemptNoAnswer, Notes: "No answer at door"},
		{DeliveryID: deliveries[0].ID, AttemptedAt: now.Add(-24 * time.Hour), Outcome: AttemptDelivered, Notes: "Signed by recipient"},
		{DeliveryID: deliveries[1].ID, AttemptedAt: now.Add(-2 * time.Hour), Outcome: AttemptRescheduled, Notes: "Traffic delay, rescheduled to tomorrow"},
		{DeliveryID: deliveries[6].ID, AttemptedAt: now.Add(-75 * time.Hour), Outcome: AttemptFailed, Notes: "Address not found"},
	}
	for i := range attempts {
		if err := db.Attempts.Create(&attempts[i]); err != nil {
			return fmt.Errorf("failed to seed attempt: %w", err)
		}
	}

	policies := []InsurancePolicy{
		{DeliveryID: deliveries[0].ID, CoverageAmount: 500, Premium: 12.50, Status: InsuranceActive},
		{DeliveryID: deliveries[2].ID, CoverageAmount: 1500, Premium: 28.00, Status: InsuranceActive},
		{DeliveryID: deliveries[3].ID, CoverageAmount: 250, Premium: 6.00, Status: InsuranceExpired},
		{DeliveryID: deliveries[6].ID, CoverageAmount: 800, Premium: 18.75, Status: InsuranceActive},
	}
	for i := range policies {
		if err := db.Insurance.Create(&policies[i]); err != nil {
			return fmt.Errorf("failed to seed insurance policy: %w", err)
		}
	}

	resolution := "Refund issued to original payment method"
	claims := []Claim{
		{DeliveryID: deliveries[6].ID, CustomerID: customers[2].ID, Type: ClaimTypeLoss, Amount: 120.00,
			Status: ClaimRefunded, Description: "Parcel never arrived", Resolution: &resolution},
		{DeliveryID: deliveries[1].ID, CustomerID: customers[1].ID, Type: ClaimTypeDelay, Amount: 25.00,
			Status: ClaimApproved, Description: "Compensation for late delivery"},
		{DeliveryID: deliveries[3].ID, CustomerID: customers[3].ID, Type: ClaimTypeDamage, Amount: 80.00,
			Status: ClaimInvestigating, Description: "Box crushed on one side"},
		{DeliveryID: deliveries[5].ID, CustomerID: customers[1].ID, Type: ClaimTypeDelay, Amount: 15.00,
			Status: ClaimPending, Description: "Six hours late"},
		{DeliveryID: deliveries[0].ID, CustomerID: customers[0].ID, Type: ClaimTypeOther, Amount: 10.00,
			Status: ClaimRejected, Description: "Wrong doorbell rung"},
	}
	for i := range claims {
		if err := db.Claims.Create(&claims[i]); err != nil {
			return fmt.Errorf("failed to seed claim: %w", err)
		}
	}

	// Seven daily snapshots ending today, oldest first.
	day := now.Truncate(24 * time.Hour)
	counts := []int{182, 174, 190, 201, 168, 215, 196}
	for i, total := range counts {
		onTime := total * 95 / 100
		trend := Trend{
			Date:       day.AddDate(0, 0, i-6),
			Deliveries: total,
			OnTime:     onTime,
			Delayed:    total - onTime,
		}
		if err := db.Trends.Upsert(&trend); err != nil {
			return fmt.Errorf("failed to seed trend snapshot: %w", err)
		}
	}

	return nil
}
