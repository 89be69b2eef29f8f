// backend-go/internal/service/order_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/freshserve/backend-go/internal/cache"
	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/freshserve/backend-go/internal/stock"
	"github.com/lucsky/cuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// maxCommitAttempts bounds replans when a concurrent order races a lot
// between planning and commit.
const maxCommitAttempts = 3

// OrderRequest is one incoming customer order.
type OrderRequest struct {
	CustomerID int64
	DateTime   time.Time
	// Items maps dish name to quantity ordered.
	Items     map[string]int
	TotalBill decimal.Decimal
}

type OrderService struct {
	inventory repository.InventoryRepository
	recipes   repository.RecipeRepository
	orders    repository.OrderRepository
	menuCache cache.MenuCache
}

func NewOrderService(inventory repository.InventoryRepository, recipes repository.RecipeRepository, orders repository.OrderRepository, menuCache cache.MenuCache) *OrderService {
	if menuCache == nil {
		menuCache = cache.NewNoopMenuCache()
	}
	return &OrderService{inventory: inventory, recipes: recipes, orders: orders, menuCache: menuCache}
}

// PlaceOrder fulfills an order atomically. Every line is planned against a
// working copy of the touched lots first; only when the whole order plans
// cleanly are the lot decrements, the order row and one activity record per
// line committed together. Any failure rejects the order with inventory
// untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, req OrderRequest) (domain.Order, error) {
	var lastErr error

	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		order, err := s.placeOnce(ctx, req)
		if errors.Is(err, domain.ErrStaleInventory) {
			log.Warn().Int("attempt", attempt+1).Msg("order raced a concurrent deduction, replanning")
			lastErr = err
			continue
		}
		if err != nil {
			return domain.Order{}, err
		}
		return order, nil
	}

	return domain.Order{}, lastErr
}

func (s *OrderService) placeOnce(ctx context.Context, req OrderRequest) (domain.Order, error) {
	// Working copies of every lot list touched so far. Later lines see the
	// consumption planned by earlier lines without anything being written.
	working := make(map[string][]domain.InventoryLot)

	var (
		uses       []stock.LotUse
		activities []domain.DailyActivity
	)

	for _, dish := range sortedKeys(req.Items) {
		quantity := req.Items[dish]

		recipe, err := s.recipes.ByDish(ctx, dish)
		if err != nil {
			return domain.Order{}, err
		}

		for _, ingredient := range sortedKeys(recipe.Ingredients) {
			parsed, err := domain.ParseQuantity(ingredient, recipe.Ingredients[ingredient])
			if err != nil {
				return domain.Order{}, err
			}
			needed := parsed.Value * float64(quantity)

			lots, ok := working[ingredient]
			if !ok {
				lots, err = s.inventory.LotsByItem(ctx, ingredient)
				if err != nil {
					return domain.Order{}, err
				}
				working[ingredient] = lots
			}

			plan, err := stock.Walk(ingredient, lots, needed)
			if err != nil {
				return domain.Order{}, err
			}
			stock.Apply(working[ingredient], plan)
			uses = append(uses, plan.Uses...)
		}

		activities = append(activities, domain.DailyActivity{
			DateTime:      req.DateTime,
			ItemName:      dish,
			QuantitySold:  quantity,
			Revenue:       req.TotalBill,
			CustomerCount: 1,
			DayType:       domain.DayTypeFor(req.DateTime),
		})
	}

	order := domain.Order{
		Reference:    cuid.New(),
		CustomerID:   req.CustomerID,
		DateTime:     req.DateTime,
		ItemsOrdered: req.Items,
		TotalBill:    req.TotalBill,
		Status:       domain.OrderFulfilled,
	}

	committed, err := s.orders.Commit(ctx, order, activities, uses)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.menuCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("order: menu cache invalidation failed")
	}

	log.Info().
		Str("reference", committed.Reference).
		Int64("customer_id", committed.CustomerID).
		Int("lines", len(activities)).
		Msg("order fulfilled")

	return committed, nil
}

// ListOrders returns all persisted orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
