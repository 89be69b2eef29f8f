// backend-go/internal/service/menu_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/freshserve/backend-go/internal/cache"
	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/freshserve/backend-go/internal/stock"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Margin tiers keyed by days until the soonest expiry among consumed lots.
// Dishes whose limiting ingredient expires soonest get the smallest markup so
// they sell before the stock is wasted.
var (
	marginTight   = decimal.NewFromFloat(0.20) // expiry within 3 days
	marginClose   = decimal.NewFromFloat(0.25) // expiry in 4-5 days
	marginRelaxed = decimal.NewFromFloat(0.30) // more than 5 days, or no lots consumed
)

type MenuService struct {
	inventory repository.InventoryRepository
	recipes   repository.RecipeRepository
	cache     cache.MenuCache
	now       func() time.Time
}

func NewMenuService(inventory repository.InventoryRepository, recipes repository.RecipeRepository, menuCache cache.MenuCache) *MenuService {
	if menuCache == nil {
		menuCache = cache.NewNoopMenuCache()
	}
	return &MenuService{
		inventory: inventory,
		recipes:   recipes,
		cache:     menuCache,
		now:       time.Now,
	}
}

// GetMenu derives the sellable menu: every recipe whose ingredients can all
// be sourced from current stock, priced from the FIFO cost walk and the
// expiry-driven margin tier, sorted soonest-expiring first.
func (s *MenuService) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	if items, ok, err := s.cache.Get(ctx); err == nil && ok {
		return items, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("menu: cache get failed")
	}

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	menu := make([]domain.MenuItem, 0, len(recipes))

	for _, recipe := range recipes {
		item, ok, err := s.priceRecipe(ctx, recipe, now)
		if err != nil {
			return nil, err
		}
		if ok {
			menu = append(menu, item)
		}
	}

	// Soonest-expiring dishes first; dishes with no expiry constraint last.
	sort.SliceStable(menu, func(i, j int) bool {
		a, b := menu[i].EarliestExpiry, menu[j].EarliestExpiry
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return menu[i].DishName < menu[j].DishName
		}
	})

	if err := s.cache.Set(ctx, menu); err != nil {
		log.Warn().Err(err).Msg("menu: cache set failed")
	}

	return menu, nil
}

// priceRecipe runs the non-mutating FIFO cost walk for one recipe. The
// second return value is false when the dish cannot be built: an ingredient
// is missing, stock is short, or a quantity string is malformed. None of
// those are errors; the dish is simply left off the menu.
func (s *MenuService) priceRecipe(ctx context.Context, recipe domain.Recipe, now time.Time) (domain.MenuItem, bool, error) {
	cost := decimal.Zero
	var earliest *time.Time

	for _, ingredient := range sortedKeys(recipe.Ingredients) {
		parsed, err := domain.ParseQuantity(ingredient, recipe.Ingredients[ingredient])
		if err != nil {
			return domain.MenuItem{}, false, nil
		}

		lots, err := s.inventory.LotsByItem(ctx, ingredient)
		if err != nil {
			return domain.MenuItem{}, false, err
		}

		plan, err := stock.Walk(ingredient, lots, parsed.Value)
		if err != nil {
			return domain.MenuItem{}, false, nil
		}

		cost = cost.Add(plan.Cost)
		if plan.EarliestExpiry != nil && (earliest == nil || plan.EarliestExpiry.Before(*earliest)) {
			earliest = plan.EarliestExpiry
		}
	}

	margin := marginFor(now, earliest)
	finalPrice := cost.Mul(decimal.NewFromInt(1).Add(margin))

	return domain.MenuItem{
		DishName:       recipe.DishName,
		EarliestExpiry: earliest,
		Cost:           cost.Round(2).InexactFloat64(),
		FinalPrice:     finalPrice.Round(2).InexactFloat64(),
		MarginPct:      int(margin.Mul(decimal.NewFromInt(100)).IntPart()),
	}, true, nil
}

func marginFor(now time.Time, earliest *time.Time) decimal.Decimal {
	if earliest == nil {
		// No inventory lots consumed, nothing is pressing expiry.
		return marginRelaxed
	}

	switch days := domain.DaysUntil(now, *earliest); {
	case days <= 3:
		return marginTight
	case days <= 5:
		return marginClose
	default:
		return marginRelaxed
	}
}
