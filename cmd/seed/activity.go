package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/urfave/cli/v2"
)

// dishDemand shapes the synthetic sales history: a weekday baseline plus a
// weekend multiplier, so the forecaster has a real weekly cycle to pick up.
type dishDemand struct {
	DishName      string
	Baseline      int
	WeekendFactor float64
	UnitPrice     float64
}

var demandProfiles = []dishDemand{
	{DishName: "Chicken Fried Rice", Baseline: 18, WeekendFactor: 1.6, UnitPrice: 9.5},
	{DishName: "Beef Bolognese", Baseline: 12, WeekendFactor: 1.8, UnitPrice: 12.0},
	{DishName: "Margherita Flatbread", Baseline: 15, WeekendFactor: 1.5, UnitPrice: 8.0},
	{DishName: "Chicken Caesar Salad", Baseline: 10, WeekendFactor: 1.2, UnitPrice: 8.5},
	{DishName: "Butter Pancakes", Baseline: 8, WeekendFactor: 2.2, UnitPrice: 6.5},
}

var weatherConditions = []string{"sunny", "cloudy", "rainy", "windy"}

func seedActivityData(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	days := c.Int("days")
	if days < 1 {
		days = 1
	}

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO daily_activity (
			date_time, item_name, quantity_sold, revenue,
			customer_count, weather_condition, day_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare activity statement: %w", err)
	}
	defer stmt.Close()

	log.Printf("Seeding %d days of activity history...\n", days)

	today := time.Now().Truncate(24 * time.Hour)
	rowCount := 0
	for offset := days; offset >= 1; offset-- {
		date := today.AddDate(0, 0, -offset)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		dayType := "Weekday"
		if weekend {
			dayType = "Weekend"
		}
		weather := weatherConditions[rand.Intn(len(weatherConditions))]

		for _, profile := range demandProfiles {
			expected := float64(profile.Baseline)
			if weekend {
				expected *= profile.WeekendFactor
			}
			// ±25% noise around the expected demand
			noise := 0.75 + rand.Float64()*0.5
			sold := int(expected * noise)
			if sold < 1 {
				sold = 1
			}

			// Sales clustered around the lunch rush
			at := date.Add(time.Duration(11+rand.Intn(4)) * time.Hour)
			revenue := float64(sold) * profile.UnitPrice
			customers := sold - rand.Intn(sold/3+1)

			if _, err := stmt.ExecContext(ctx,
				at,
				profile.DishName,
				sold,
				revenue,
				customers,
				weather,
				dayType,
			); err != nil {
				return fmt.Errorf("failed to insert activity for %s on %s: %w",
					profile.DishName, date.Format("2006-01-02"), err)
			}
			rowCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Successfully seeded %d activity records\n", rowCount)
	return nil
}
