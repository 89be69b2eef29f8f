// backend-go/internal/repository/memory/repositories.go
package memory

import (
	"context"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/freshserve/backend-go/internal/stock"
)

// InventoryRepository is the lot view over a shared Store.
type InventoryRepository struct {
	store *Store
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

func (r *InventoryRepository) LotsByItem(ctx context.Context, itemName string) ([]domain.InventoryLot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var lots []domain.InventoryLot
	for _, lot := range r.store.lots {
		if lot.ItemName == itemName {
			lots = append(lots, lot)
		}
	}
	stock.SortLots(lots)

	return lots, nil
}

func (r *InventoryRepository) AllLots(ctx context.Context) ([]domain.InventoryLot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lots := append([]domain.InventoryLot(nil), r.store.lots...)
	sortLotsByItem(lots)

	return lots, nil
}

func (r *InventoryRepository) UpsertLot(ctx context.Context, lot domain.InventoryLot) (domain.InventoryLot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.upsertLot(lot), nil
}

func (r *InventoryRepository) UpdateLot(ctx context.Context, lot domain.InventoryLot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing := r.store.lotByID(lot.ID)
	if existing == nil {
		return domain.ErrItemNotFound
	}
	*existing = lot

	return nil
}

func (r *InventoryRepository) DeleteLot(ctx context.Context, id int64) (domain.InventoryLot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.lots {
		if r.store.lots[i].ID == id {
			deleted := r.store.lots[i]
			r.store.lots = append(r.store.lots[:i], r.store.lots[i+1:]...)
			return deleted, nil
		}
	}

	return domain.InventoryLot{}, domain.ErrItemNotFound
}

// RecipeRepository is the recipe view over a shared Store.
type RecipeRepository struct {
	store *Store
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)

func (r *RecipeRepository) Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recipe.ID = r.store.nextRecipeID
	r.store.nextRecipeID++
	r.store.recipes = append(r.store.recipes, recipe)

	return recipe, nil
}

func (r *RecipeRepository) ByDish(ctx context.Context, dishName string) (*domain.Recipe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, recipe := range r.store.recipes {
		if recipe.DishName == dishName {
			found := recipe
			return &found, nil
		}
	}

	return nil, &domain.RecipeNotFoundError{DishName: dishName}
}

func (r *RecipeRepository) List(ctx context.Context) ([]domain.Recipe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]domain.Recipe(nil), r.store.recipes...), nil
}

// ActivityRepository is the daily-activity view over a shared Store.
type ActivityRepository struct {
	store *Store
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)

func (r *ActivityRepository) Append(ctx context.Context, activity domain.DailyActivity) (domain.DailyActivity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.appendActivity(activity), nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.DailyActivity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]domain.DailyActivity(nil), r.store.activities...), nil
}

// OrderRepository is the order view over a shared Store.
type OrderRepository struct {
	store *Store
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Commit(ctx context.Context, order domain.Order, activities []domain.DailyActivity, uses []stock.LotUse) (domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.commitOrder(order, activities, uses)
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders := append([]domain.Order(nil), r.store.orders...)

	return orders, nil
}
