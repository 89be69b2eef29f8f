// backend-go/internal/service/inventory_service.go
package service

import (
	"context"
	"time"

	"github.com/freshserve/backend-go/internal/cache"
	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// RiskThresholds parameterize the risk report; defaults come from config.
type RiskThresholds struct {
	// ExpiryDays marks a lot high-risk when it expires in fewer than this
	// many days.
	ExpiryDays int
	// ReorderLevel marks a lot reorder-required when its quantity is below
	// this level.
	ReorderLevel float64
}

type InventoryService struct {
	repo      repository.InventoryRepository
	menuCache cache.MenuCache
	risk      RiskThresholds
	now       func() time.Time
}

func NewInventoryService(repo repository.InventoryRepository, menuCache cache.MenuCache, risk RiskThresholds) *InventoryService {
	if menuCache == nil {
		menuCache = cache.NewNoopMenuCache()
	}
	return &InventoryService{
		repo:      repo,
		menuCache: menuCache,
		risk:      risk,
		now:       time.Now,
	}
}

// AddStock records a delivery. A lot already holding the same (item, expiry)
// pair grows by the delivered quantity instead of duplicating.
func (s *InventoryService) AddStock(ctx context.Context, lot domain.InventoryLot) (domain.InventoryLot, error) {
	saved, err := s.repo.UpsertLot(ctx, lot)
	if err != nil {
		return domain.InventoryLot{}, err
	}

	s.invalidateMenu(ctx)
	return saved, nil
}

func (s *InventoryService) ListLots(ctx context.Context) ([]domain.InventoryLot, error) {
	return s.repo.AllLots(ctx)
}

func (s *InventoryService) UpdateLot(ctx context.Context, lot domain.InventoryLot) error {
	if err := s.repo.UpdateLot(ctx, lot); err != nil {
		return err
	}

	s.invalidateMenu(ctx)
	return nil
}

func (s *InventoryService) DeleteLot(ctx context.Context, id int64) (domain.InventoryLot, error) {
	deleted, err := s.repo.DeleteLot(ctx, id)
	if err != nil {
		return domain.InventoryLot{}, err
	}

	s.invalidateMenu(ctx)
	return deleted, nil
}

// RiskReport classifies every lot in the current snapshot. The classification
// is stateless: the same snapshot always yields the same report.
func (s *InventoryService) RiskReport(ctx context.Context) ([]domain.RiskItem, error) {
	lots, err := s.repo.AllLots(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	report := make([]domain.RiskItem, 0, len(lots))

	for _, lot := range lots {
		risk := domain.RiskSafe
		if domain.DaysUntil(now, lot.ExpiryDate) < s.risk.ExpiryDays {
			risk = domain.RiskHigh
		}

		report = append(report, domain.RiskItem{
			ItemName:        lot.ItemName,
			Quantity:        lot.Quantity,
			ExpiryDate:      lot.ExpiryDate,
			ExpiryRisk:      risk,
			ReorderRequired: lot.Quantity < s.risk.ReorderLevel,
		})
	}

	return report, nil
}

func (s *InventoryService) invalidateMenu(ctx context.Context) {
	if err := s.menuCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory: menu cache invalidation failed")
	}
}
