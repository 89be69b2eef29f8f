// backend-go/internal/repository/postgres/activity_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
)

type activityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(ctx context.Context, activity domain.DailyActivity) (domain.DailyActivity, error) {
	query := `
		INSERT INTO daily_activity (date_time, item_name, quantity_sold, revenue, customer_count, weather_condition, day_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &activity.ID, query,
		activity.DateTime, activity.ItemName, activity.QuantitySold,
		activity.Revenue, activity.CustomerCount, activity.WeatherCondition, activity.DayType,
	)
	if err != nil {
		return domain.DailyActivity{}, fmt.Errorf("failed to insert activity for %q: %w", activity.ItemName, err)
	}

	return activity, nil
}

func (r *activityRepository) List(ctx context.Context) ([]domain.DailyActivity, error) {
	query := `
		SELECT id, date_time, item_name, quantity_sold, revenue, customer_count, weather_condition, day_type
		FROM daily_activity
		ORDER BY date_time ASC, id ASC
	`

	var activities []domain.DailyActivity
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, fmt.Errorf("failed to list activity records: %w", err)
	}

	return activities, nil
}
