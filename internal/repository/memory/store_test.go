package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/stock"
	"github.com/shopspring/decimal"
)

func addLot(t *testing.T, store *Store, item string, qty float64, expiry time.Time) domain.InventoryLot {
	t.Helper()
	saved, err := store.Inventory().UpsertLot(context.Background(), domain.InventoryLot{
		ItemName:     item,
		Quantity:     qty,
		PricePerUnit: decimal.NewFromFloat(1.0),
		ExpiryDate:   expiry,
	})
	if err != nil {
		t.Fatalf("Failed to upsert lot: %v", err)
	}
	return saved
}

func TestOrderCommit_StaleUseLeavesStoreUntouched(t *testing.T) {
	store := NewStore()
	expiry := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	a := addLot(t, store, "flour", 5, expiry)
	b := addLot(t, store, "rice", 5, expiry.AddDate(0, 0, 1))

	order := domain.Order{
		Reference:  "ref-1",
		CustomerID: 1,
		Status:     domain.OrderFulfilled,
	}
	uses := []stock.LotUse{
		{LotID: a.ID, ItemName: "flour", Used: 3},
		{LotID: b.ID, ItemName: "rice", Used: 8}, // more than the lot holds
	}

	_, err := store.Orders().Commit(context.Background(), order, nil, uses)
	if !errors.Is(err, domain.ErrStaleInventory) {
		t.Fatalf("Expected ErrStaleInventory, got %v", err)
	}

	// The valid flour use must not have been applied either.
	lots, _ := store.Inventory().AllLots(context.Background())
	for _, lot := range lots {
		if lot.ID == a.ID && lot.Quantity != 5 {
			t.Errorf("Flour lot mutated by failed commit: %g", lot.Quantity)
		}
		if lot.ID == b.ID && lot.Quantity != 5 {
			t.Errorf("Rice lot mutated by failed commit: %g", lot.Quantity)
		}
	}

	orders, _ := store.Orders().List(context.Background())
	if len(orders) != 0 {
		t.Errorf("Expected no orders persisted, got %d", len(orders))
	}
}

func TestOrderCommit_UnknownLot(t *testing.T) {
	store := NewStore()

	_, err := store.Orders().Commit(context.Background(), domain.Order{Reference: "ref-2"}, nil,
		[]stock.LotUse{{LotID: 99, ItemName: "ghost", Used: 1}})
	if !errors.Is(err, domain.ErrStaleInventory) {
		t.Fatalf("Expected ErrStaleInventory for unknown lot, got %v", err)
	}
}

func TestLotsByItem_SortedByExpiry(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	addLot(t, store, "flour", 1, base.AddDate(0, 0, 9))
	addLot(t, store, "flour", 1, base.AddDate(0, 0, 2))
	addLot(t, store, "rice", 1, base.AddDate(0, 0, 1))

	lots, err := store.Inventory().LotsByItem(context.Background(), "flour")
	if err != nil {
		t.Fatalf("LotsByItem failed: %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("Expected 2 flour lots, got %d", len(lots))
	}
	if !lots[0].ExpiryDate.Before(lots[1].ExpiryDate) {
		t.Errorf("Expected lots sorted by expiry, got %v then %v",
			lots[0].ExpiryDate, lots[1].ExpiryDate)
	}
}

func TestUpsertLot_MergeKeyIsItemAndExpiry(t *testing.T) {
	store := NewStore()
	expiry := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	first := addLot(t, store, "flour", 5, expiry)
	merged := addLot(t, store, "flour", 3, expiry)
	if merged.ID != first.ID || merged.Quantity != 8 {
		t.Errorf("Expected merge into lot %d with quantity 8, got %+v", first.ID, merged)
	}

	// Same expiry, different item: a separate lot.
	other := addLot(t, store, "rice", 5, expiry)
	if other.ID == first.ID {
		t.Error("Expected a distinct lot for a different item")
	}
}
