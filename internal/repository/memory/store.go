// backend-go/internal/repository/memory/store.go

// Package memory provides an in-memory store implementing every repository
// interface. It backs the test suites and database-less local runs; one mutex
// gives it the serialization guarantees the postgres layer gets from
// transactions.
package memory

import (
	"sort"
	"sync"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/stock"
)

// Store holds all records behind one lock. The repository views returned by
// Inventory, Recipes, Activities and Orders share it, so an order commit sees
// the same lots the inventory repository serves.
type Store struct {
	mu sync.Mutex

	lots       []domain.InventoryLot
	recipes    []domain.Recipe
	orders     []domain.Order
	activities []domain.DailyActivity

	nextLotID      int64
	nextRecipeID   int64
	nextOrderID    int64
	nextActivityID int64
}

func NewStore() *Store {
	return &Store{
		nextLotID:      1,
		nextRecipeID:   1,
		nextOrderID:    1,
		nextActivityID: 1,
	}
}

// Inventory returns the lot repository view of the store.
func (s *Store) Inventory() *InventoryRepository { return &InventoryRepository{store: s} }

// Recipes returns the recipe repository view of the store.
func (s *Store) Recipes() *RecipeRepository { return &RecipeRepository{store: s} }

// Activities returns the activity repository view of the store.
func (s *Store) Activities() *ActivityRepository { return &ActivityRepository{store: s} }

// Orders returns the order repository view of the store.
func (s *Store) Orders() *OrderRepository { return &OrderRepository{store: s} }

func (s *Store) lotByID(id int64) *domain.InventoryLot {
	for i := range s.lots {
		if s.lots[i].ID == id {
			return &s.lots[i]
		}
	}
	return nil
}

func (s *Store) upsertLot(lot domain.InventoryLot) domain.InventoryLot {
	for i := range s.lots {
		existing := &s.lots[i]
		if existing.ItemName == lot.ItemName && existing.ExpiryDate.Equal(lot.ExpiryDate) {
			existing.Quantity += lot.Quantity
			existing.PricePerUnit = lot.PricePerUnit
			existing.StorageLocation = lot.StorageLocation
			existing.DetectedByAI = lot.DetectedByAI
			existing.ConfidenceScore = lot.ConfidenceScore
			return *existing
		}
	}

	lot.ID = s.nextLotID
	s.nextLotID++
	s.lots = append(s.lots, lot)
	return lot
}

func (s *Store) appendActivity(activity domain.DailyActivity) domain.DailyActivity {
	activity.ID = s.nextActivityID
	s.nextActivityID++
	s.activities = append(s.activities, activity)
	return activity
}

// commitOrder re-checks every planned decrement before applying any of them,
// so a raced lot leaves the store untouched.
func (s *Store) commitOrder(order domain.Order, activities []domain.DailyActivity, uses []stock.LotUse) (domain.Order, error) {
	for _, use := range uses {
		lot := s.lotByID(use.LotID)
		if lot == nil || lot.Quantity < use.Used {
			return domain.Order{}, domain.ErrStaleInventory
		}
	}

	for _, use := range uses {
		s.lotByID(use.LotID).Quantity -= use.Used
	}

	order.ID = s.nextOrderID
	s.nextOrderID++
	s.orders = append(s.orders, order)

	for _, activity := range activities {
		s.appendActivity(activity)
	}

	return order, nil
}

func sortLotsByItem(lots []domain.InventoryLot) {
	sort.Slice(lots, func(i, j int) bool {
		if lots[i].ItemName != lots[j].ItemName {
			return lots[i].ItemName < lots[j].ItemName
		}
		if !lots[i].ExpiryDate.Equal(lots[j].ExpiryDate) {
			return lots[i].ExpiryDate.Before(lots[j].ExpiryDate)
		}
		return lots[i].ID < lots[j].ID
	})
}
