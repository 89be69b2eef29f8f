// backend-go/internal/stock/fifo.go

// Package stock implements the FIFO walk over inventory lots that both order
// deduction and menu costing share. Planning never mutates lots; callers apply
// a plan once every line of the enclosing operation has validated.
package stock

import (
	"sort"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/shopspring/decimal"
)

// LotUse records how much one deduction takes from one lot.
type LotUse struct {
	LotID    int64
	ItemName string
	Used     float64
}

// Plan is the outcome of one ingredient's FIFO walk.
type Plan struct {
	Ingredient string
	Uses       []LotUse
	// Cost is the sum of used quantity times price per unit across every
	// consumed lot.
	Cost decimal.Decimal
	// EarliestExpiry is the soonest expiry date among lots actually
	// consumed; nil when the walk consumed nothing (zero requirement).
	EarliestExpiry *time.Time
}

// SortLots orders lots oldest-expiry first, ties broken by lot ID so the walk
// is deterministic.
func SortLots(lots []domain.InventoryLot) {
	sort.Slice(lots, func(i, j int) bool {
		if !lots[i].ExpiryDate.Equal(lots[j].ExpiryDate) {
			return lots[i].ExpiryDate.Before(lots[j].ExpiryDate)
		}
		return lots[i].ID < lots[j].ID
	})
}

// Walk runs the FIFO walk for one ingredient requirement against the given
// lots. Lots must all belong to the ingredient; they are sorted internally.
//
// The walk consumes min(remaining, lot.Quantity) from each lot in expiry order
// until the requirement is met. With no lots at all it fails with
// IngredientNotFoundError; with lots exhausted early it fails with
// InsufficientStockError carrying needed vs. available.
func Walk(ingredient string, lots []domain.InventoryLot, needed float64) (*Plan, error) {
	if len(lots) == 0 {
		return nil, &domain.IngredientNotFoundError{Ingredient: ingredient}
	}

	SortLots(lots)

	plan := &Plan{Ingredient: ingredient, Cost: decimal.Zero}
	remaining := needed

	for i := range lots {
		if remaining <= 0 {
			break
		}
		lot := &lots[i]

		used := remaining
		if used > lot.Quantity {
			used = lot.Quantity
		}
		if used <= 0 {
			continue
		}

		plan.Uses = append(plan.Uses, LotUse{LotID: lot.ID, ItemName: lot.ItemName, Used: used})
		plan.Cost = plan.Cost.Add(lot.PricePerUnit.Mul(decimal.NewFromFloat(used)))
		if plan.EarliestExpiry == nil || lot.ExpiryDate.Before(*plan.EarliestExpiry) {
			expiry := lot.ExpiryDate
			plan.EarliestExpiry = &expiry
		}
		remaining -= used
	}

	if remaining > 0 {
		return nil, &domain.InsufficientStockError{
			Ingredient: ingredient,
			Needed:     needed,
			Available:  needed - remaining,
		}
	}

	return plan, nil
}

// Apply subtracts a plan's uses from the matching lots in place. Lots not
// covered by the plan are left untouched.
func Apply(lots []domain.InventoryLot, plan *Plan) {
	for _, use := range plan.Uses {
		for i := range lots {
			if lots[i].ID == use.LotID {
				lots[i].Quantity -= use.Used
				break
			}
		}
	}
}
