// backend-go/internal/repository/interfaces.go
package repository

import (
	"context"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/stock"
)

// InventoryRepository owns lot quantities. Lot uniqueness is
// (item name, expiry date): upserting an existing pair adds to its quantity.
type InventoryRepository interface {
	// LotsByItem returns the lots for one ingredient ordered by expiry
	// date ascending, ties broken by lot ID.
	LotsByItem(ctx context.Context, itemName string) ([]domain.InventoryLot, error)
	AllLots(ctx context.Context) ([]domain.InventoryLot, error)
	UpsertLot(ctx context.Context, lot domain.InventoryLot) (domain.InventoryLot, error)
	UpdateLot(ctx context.Context, lot domain.InventoryLot) error
	DeleteLot(ctx context.Context, id int64) (domain.InventoryLot, error)
}

// RecipeRepository stores dish recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	ByDish(ctx context.Context, dishName string) (*domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
}

// ActivityRepository stores daily activity records.
type ActivityRepository interface {
	Append(ctx context.Context, activity domain.DailyActivity) (domain.DailyActivity, error)
	List(ctx context.Context) ([]domain.DailyActivity, error)
}

// OrderRepository persists fulfilled orders.
type OrderRepository interface {
	// Commit persists the order, its activity records and the planned lot
	// decrements atomically. Each decrement re-checks that the lot still
	// holds at least the planned quantity; a raced lot aborts the whole
	// commit with ErrStaleInventory so the caller can replan.
	Commit(ctx context.Context, order domain.Order, activities []domain.DailyActivity, uses []stock.LotUse) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}
