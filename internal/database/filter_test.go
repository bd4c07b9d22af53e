package database

import (
	"strings"
	"testing"
	"time"
)

func TestDeliveryFilter_IsZero(t *testing.T) {
	if !(DeliveryFilter{}).IsZero() {
		t.Error("Empty filter should be zero")
	}

	now := time.Now()
	cases := []DeliveryFilter{
		{From: &now},
		{To: &now},
		{Statuses: []string{"delivered"}},
		{Priorities: []string{"express"}},
		{RegionIDs: []int{1}},
	}
	for i, filter := range cases {
		if filter.IsZero() {
			t.Errorf("Case %d: filter with a constraint should not be zero", i)
		}
	}
}

func TestWhereClause_Empty(t *testing.T) {
	clause, args := DeliveryFilter{}.whereClause("d")
	if clause != "" {
		t.Errorf("Expected empty clause, got %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %v", args)
	}
}

func TestWhereClause_OneSidedBounds(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	clause, args := DeliveryFilter{From: &from}.whereClause("d")
	if clause != " WHERE d.created_at >= ?" {
		t.Errorf("Unexpected clause for lower bound: %q", clause)
	}
	if len(args) != 1 || args[0] != from {
		t.Errorf("Unexpected args: %v", args)
	}

	clause, _ = DeliveryFilter{To: &from}.whereClause("d")
	if clause != " WHERE d.created_at <= ?" {
		t.Errorf("Unexpected clause for upper bound: %q", clause)
	}
}

func TestWhereClause_TokenFolding(t *testing.T) {
	filter := DeliveryFilter{
		Statuses:   []string{"delivered", " In_Transit "},
		Priorities: []string{"express"},
	}

	clause, args := filter.whereClause("d")
	if !strings.Contains(clause, "d.status IN (?, ?)") {
		t.Errorf("Missing status IN clause: %q", clause)
	}
	if !strings.Contains(clause, "d.priority IN (?)") {
		t.Errorf("Missing priority IN clause: %q", clause)
	}

	want := []interface{}{"DELIVERED", "IN_TRANSIT", "EXPRESS"}
	if len(args) != len(want) {
		t.Fatalf("Expected %d args, got %d", len(want), len(args))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("Arg %d: expected %v, got %v", i, want[i], args[i])
		}
	}
}

func TestWhereClause_RegionIDs(t *testing.T) {
	filter := DeliveryFilter{RegionIDs: []int{3, 7}}

	clause, args := filter.whereClause("")
	if clause != " WHERE region_id IN (?, ?)" {
		t.Errorf("Unexpected clause: %q", clause)
	}
	if len(args) != 2 || args[0] != 3 || args[1] != 7 {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestWhereClause_CombinesWithAnd(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	filter := DeliveryFilter{
		From:     &from,
		To:       &to,
		Statuses: []string{"delayed"},
	}

	clause, args := filter.whereClause("d")
	if strings.Count(clause, " AND ") != 2 {
		t.Errorf("Expected 2 AND joins, got %q", clause)
	}
	if len(args) != 3 {
		t.Errorf("Expected 3 args, got %d", len(args))
	}
}
