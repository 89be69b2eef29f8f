package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
)

func newInventoryServiceAt(store *memory.Store, now time.Time) *InventoryService {
	svc := NewInventoryService(store.Inventory(), nil, RiskThresholds{
		ExpiryDays:   7,
		ReorderLevel: 10,
	})
	svc.now = func() time.Time { return now }
	return svc
}

func TestAddStock_MergesSameItemAndExpiry(t *testing.T) {
	store := memory.NewStore()
	svc := newInventoryServiceAt(store, testNow)

	expiry := testNow.AddDate(0, 0, 10)
	first, err := svc.AddStock(context.Background(), domain.InventoryLot{
		ItemName:     "flour",
		Quantity:     5,
		PricePerUnit: decimal.NewFromFloat(1.0),
		ExpiryDate:   expiry,
	})
	if err != nil {
		t.Fatalf("AddStock failed: %v", err)
	}

	second, err := svc.AddStock(context.Background(), domain.InventoryLot{
		ItemName:     "flour",
		Quantity:     3,
		PricePerUnit: decimal.NewFromFloat(1.2),
		ExpiryDate:   expiry,
	})
	if err != nil {
		t.Fatalf("AddStock failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("Expected same-expiry delivery to merge into lot %d, got new lot %d", first.ID, second.ID)
	}
	if second.Quantity != 8 {
		t.Errorf("Expected merged quantity 8, got %g", second.Quantity)
	}

	// A different expiry starts a new lot.
	third, err := svc.AddStock(context.Background(), domain.InventoryLot{
		ItemName:     "flour",
		Quantity:     2,
		PricePerUnit: decimal.NewFromFloat(1.0),
		ExpiryDate:   expiry.AddDate(0, 0, 5),
	})
	if err != nil {
		t.Fatalf("AddStock failed: %v", err)
	}
	if third.ID == first.ID {
		t.Error("Expected a new lot for a different expiry date")
	}

	lots, err := svc.ListLots(context.Background())
	if err != nil {
		t.Fatalf("ListLots failed: %v", err)
	}
	if len(lots) != 2 {
		t.Errorf("Expected 2 lots, got %d", len(lots))
	}
}

func TestUpdateLot_NotFound(t *testing.T) {
	store := memory.NewStore()
	svc := newInventoryServiceAt(store, testNow)

	err := svc.UpdateLot(context.Background(), domain.InventoryLot{ID: 99, ItemName: "ghost"})
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteLot(t *testing.T) {
	store := memory.NewStore()
	svc := newInventoryServiceAt(store, testNow)

	lot, err := svc.AddStock(context.Background(), domain.InventoryLot{
		ItemName:     "milk",
		Quantity:     4,
		PricePerUnit: decimal.NewFromFloat(1.0),
		ExpiryDate:   testNow.AddDate(0, 0, 5),
	})
	if err != nil {
		t.Fatalf("AddStock failed: %v", err)
	}

	deleted, err := svc.DeleteLot(context.Background(), lot.ID)
	if err != nil {
		t.Fatalf("DeleteLot failed: %v", err)
	}
	if deleted.ItemName != "milk" {
		t.Errorf("Expected deleted lot to be returned, got %+v", deleted)
	}

	if _, err := svc.DeleteLot(context.Background(), lot.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("Expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestRiskReport_Classification(t *testing.T) {
	tests := []struct {
		name        string
		quantity    float64
		expiryDays  int
		wantRisk    string
		wantReorder bool
	}{
		{name: "fresh_and_plentiful", quantity: 50, expiryDays: 30, wantRisk: domain.RiskSafe, wantReorder: false},
		{name: "expiring_soon", quantity: 50, expiryDays: 3, wantRisk: domain.RiskHigh, wantReorder: false},
		{name: "just_inside_window", quantity: 50, expiryDays: 6, wantRisk: domain.RiskHigh, wantReorder: false},
		{name: "exactly_at_window", quantity: 50, expiryDays: 7, wantRisk: domain.RiskSafe, wantReorder: false},
		{name: "already_expired", quantity: 50, expiryDays: -2, wantRisk: domain.RiskHigh, wantReorder: false},
		{name: "low_stock", quantity: 4, expiryDays: 30, wantRisk: domain.RiskSafe, wantReorder: true},
		{name: "at_reorder_level", quantity: 10, expiryDays: 30, wantRisk: domain.RiskSafe, wantReorder: false},
		{name: "low_and_expiring", quantity: 2, expiryDays: 1, wantRisk: domain.RiskHigh, wantReorder: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			svc := newInventoryServiceAt(store, testNow)

			_, err := svc.AddStock(context.Background(), domain.InventoryLot{
				ItemName:     "item",
				Quantity:     tt.quantity,
				PricePerUnit: decimal.NewFromFloat(1.0),
				ExpiryDate:   testNow.AddDate(0, 0, tt.expiryDays),
			})
			if err != nil {
				t.Fatalf("AddStock failed: %v", err)
			}

			report, err := svc.RiskReport(context.Background())
			if err != nil {
				t.Fatalf("RiskReport failed: %v", err)
			}
			if len(report) != 1 {
				t.Fatalf("Expected 1 report row, got %d", len(report))
			}

			if report[0].ExpiryRisk != tt.wantRisk {
				t.Errorf("Expected risk %q, got %q", tt.wantRisk, report[0].ExpiryRisk)
			}
			if report[0].ReorderRequired != tt.wantReorder {
				t.Errorf("Expected reorder=%v, got %v", tt.wantReorder, report[0].ReorderRequired)
			}
		})
	}
}

func TestRiskReport_Idempotent(t *testing.T) {
	store := memory.NewStore()
	svc := newInventoryServiceAt(store, testNow)

	_, err := svc.AddStock(context.Background(), domain.InventoryLot{
		ItemName:     "tomato",
		Quantity:     5,
		PricePerUnit: decimal.NewFromFloat(2.0),
		ExpiryDate:   testNow.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("AddStock failed: %v", err)
	}

	first, err := svc.RiskReport(context.Background())
	if err != nil {
		t.Fatalf("RiskReport failed: %v", err)
	}
	second, err := svc.RiskReport(context.Background())
	if err != nil {
		t.Fatalf("RiskReport failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Report length changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Row %d changed between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRiskReport_EmptyInventory(t *testing.T) {
	store := memory.NewStore()
	svc := newInventoryServiceAt(store, testNow)

	report, err := svc.RiskReport(context.Background())
	if err != nil {
		t.Fatalf("RiskReport failed: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("Expected empty report, got %d rows", len(report))
	}
}
