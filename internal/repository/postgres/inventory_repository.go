// backend-go/internal/repository/postgres/inventory_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
)

type inventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

const lotColumns = `
	id, item_name, category, quantity, unit, price_per_unit,
	expiry_date, storage_location, detected_by_ai, confidence_score
`

func (r *inventoryRepository) LotsByItem(ctx context.Context, itemName string) ([]domain.InventoryLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM inventory_lots
		WHERE item_name = $1
		ORDER BY expiry_date ASC, id ASC
	`

	var lots []domain.InventoryLot
	if err := r.db.SelectContext(ctx, &lots, query, itemName); err != nil {
		return nil, fmt.Errorf("failed to list lots for %q: %w", itemName, err)
	}

	return lots, nil
}

func (r *inventoryRepository) AllLots(ctx context.Context) ([]domain.InventoryLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM inventory_lots
		ORDER BY item_name ASC, expiry_date ASC, id ASC
	`

	var lots []domain.InventoryLot
	if err := r.db.SelectContext(ctx, &lots, query); err != nil {
		return nil, fmt.Errorf("failed to list lots: %w", err)
	}

	return lots, nil
}

func (r *inventoryRepository) UpsertLot(ctx context.Context, lot domain.InventoryLot) (domain.InventoryLot, error) {
	// Same (item, expiry) pair grows the existing lot; price and location
	// are refreshed from the newest delivery.
	query := `
		INSERT INTO inventory_lots (
			item_name, category, quantity, unit, price_per_unit,
			expiry_date, storage_location, detected_by_ai, confidence_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_name, expiry_date)
		DO UPDATE SET
			quantity = inventory_lots.quantity + EXCLUDED.quantity,
			price_per_unit = EXCLUDED.price_per_unit,
			storage_location = EXCLUDED.storage_location,
			detected_by_ai = EXCLUDED.detected_by_ai,
			confidence_score = EXCLUDED.confidence_score
		RETURNING ` + lotColumns + `
	`

	var saved domain.InventoryLot
	err := r.db.GetContext(ctx, &saved, query,
		lot.ItemName, lot.Category, lot.Quantity, lot.Unit, lot.PricePerUnit,
		lot.ExpiryDate, lot.StorageLocation, lot.DetectedByAI, lot.ConfidenceScore,
	)
	if err != nil {
		return domain.InventoryLot{}, fmt.Errorf("failed to upsert lot for %q: %w", lot.ItemName, err)
	}

	return saved, nil
}

func (r *inventoryRepository) UpdateLot(ctx context.Context, lot domain.InventoryLot) error {
	query := `
		UPDATE inventory_lots
		SET item_name = $2, category = $3, quantity = $4, unit = $5,
			price_per_unit = $6, expiry_date = $7, storage_location = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		lot.ID, lot.ItemName, lot.Category, lot.Quantity, lot.Unit,
		lot.PricePerUnit, lot.ExpiryDate, lot.StorageLocation,
	)
	if err != nil {
		return fmt.Errorf("failed to update lot %d: %w", lot.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update lot %d: %w", lot.ID, err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *inventoryRepository) DeleteLot(ctx context.Context, id int64) (domain.InventoryLot, error) {
	query := `
		DELETE FROM inventory_lots
		WHERE id = $1
		RETURNING ` + lotColumns + `
	`

	var deleted domain.InventoryLot
	err := r.db.GetContext(ctx, &deleted, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.InventoryLot{}, domain.ErrItemNotFound
	}
	if err != nil {
		return domain.InventoryLot{}, fmt.Errorf("failed to delete lot %d: %w", id, err)
	}

	return deleted, nil
}
