// backend-go/internal/repository/postgres/order_repository.go
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/freshserve/backend-go/internal/stock"
	"github.com/jmoiron/sqlx"
)

type orderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Commit(ctx context.Context, order domain.Order, activities []domain.DailyActivity, uses []stock.LotUse) (domain.Order, error) {
	items, err := json.Marshal(order.ItemsOrdered)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to encode order items: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		// Decrement lots first, guarding every lot against concurrent
		// orders: the quantity check fails the transaction instead of
		// letting a lot go negative.
		deduct := `
			UPDATE inventory_lots
			SET quantity = quantity - $2
			WHERE id = $1 AND quantity >= $2
		`
		for _, use := range uses {
			result, err := tx.ExecContext(ctx, deduct, use.LotID, use.Used)
			if err != nil {
				return fmt.Errorf("failed to deduct lot %d: %w", use.LotID, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to deduct lot %d: %w", use.LotID, err)
			}
			if affected == 0 {
				return domain.ErrStaleInventory
			}
		}

		insertOrder := `
			INSERT INTO customer_orders (reference, customer_id, date_time, items_ordered, total_bill, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		if err := tx.GetContext(ctx, &order.ID, insertOrder,
			order.Reference, order.CustomerID, order.DateTime, items, order.TotalBill, order.Status,
		); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		insertActivity := `
			INSERT INTO daily_activity (date_time, item_name, quantity_sold, revenue, customer_count, weather_condition, day_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for _, activity := range activities {
			if _, err := tx.ExecContext(ctx, insertActivity,
				activity.DateTime, activity.ItemName, activity.QuantitySold,
				activity.Revenue, activity.CustomerCount, activity.WeatherCondition, activity.DayType,
			); err != nil {
				return fmt.Errorf("failed to insert activity for %q: %w", activity.ItemName, err)
			}
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, reference, customer_id, date_time, items_ordered, total_bill, status
		FROM customer_orders
		ORDER BY date_time DESC, id DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var items []byte
		if err := rows.Scan(&order.ID, &order.Reference, &order.CustomerID,
			&order.DateTime, &items, &order.TotalBill, &order.Status); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(items, &order.ItemsOrdered); err != nil {
			return nil, fmt.Errorf("failed to decode items for order %d: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
