package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/urfave/cli/v2"
)

var fake = faker.New()

// ingredientSpec describes how demo lots for one ingredient are generated.
type ingredientSpec struct {
	Name        string
	Category    string
	Unit        string
	MinPrice    float64
	MaxPrice    float64
	MinQuantity float64
	MaxQuantity float64
	// ShelfLifeDays bounds the generated expiry dates from today.
	ShelfLifeDays int
}

var demoIngredients = []ingredientSpec{
	{Name: "rice", Category: "grains", Unit: "kg", MinPrice: 1.5, MaxPrice: 3.0, MinQuantity: 5, MaxQuantity: 25, ShelfLifeDays: 180},
	{Name: "flour", Category: "grains", Unit: "kg", MinPrice: 0.8, MaxPrice: 1.6, MinQuantity: 5, MaxQuantity: 20, ShelfLifeDays: 120},
	{Name: "chicken", Category: "meat", Unit: "kg", MinPrice: 5.0, MaxPrice: 9.0, MinQuantity: 2, MaxQuantity: 12, ShelfLifeDays: 4},
	{Name: "beef", Category: "meat", Unit: "kg", MinPrice: 9.0, MaxPrice: 16.0, MinQuantity: 2, MaxQuantity: 10, ShelfLifeDays: 5},
	{Name: "tomato", Category: "vegetables", Unit: "kg", MinPrice: 1.2, MaxPrice: 2.8, MinQuantity: 3, MaxQuantity: 15, ShelfLifeDays: 6},
	{Name: "onion", Category: "vegetables", Unit: "kg", MinPrice: 0.6, MaxPrice: 1.4, MinQuantity: 4, MaxQuantity: 18, ShelfLifeDays: 21},
	{Name: "garlic", Category: "vegetables", Unit: "kg", MinPrice: 2.0, MaxPrice: 4.0, MinQuantity: 1, MaxQuantity: 5, ShelfLifeDays: 30},
	{Name: "milk", Category: "dairy", Unit: "l", MinPrice: 0.9, MaxPrice: 1.5, MinQuantity: 4, MaxQuantity: 20, ShelfLifeDays: 7},
	{Name: "butter", Category: "dairy", Unit: "kg", MinPrice: 6.0, MaxPrice: 10.0, MinQuantity: 1, MaxQuantity: 6, ShelfLifeDays: 30},
	{Name: "cheese", Category: "dairy", Unit: "kg", MinPrice: 7.0, MaxPrice: 12.0, MinQuantity: 1, MaxQuantity: 8, ShelfLifeDays: 20},
	{Name: "eggs", Category: "dairy", Unit: "pcs", MinPrice: 0.15, MaxPrice: 0.35, MinQuantity: 30, MaxQuantity: 120, ShelfLifeDays: 21},
	{Name: "olive oil", Category: "pantry", Unit: "l", MinPrice: 6.0, MaxPrice: 11.0, MinQuantity: 2, MaxQuantity: 10, ShelfLifeDays: 365},
	{Name: "pasta", Category: "grains", Unit: "kg", MinPrice: 1.2, MaxPrice: 2.4, MinQuantity: 4, MaxQuantity: 20, ShelfLifeDays: 365},
	{Name: "basil", Category: "herbs", Unit: "kg", MinPrice: 8.0, MaxPrice: 14.0, MinQuantity: 0.2, MaxQuantity: 1.5, ShelfLifeDays: 5},
	{Name: "lettuce", Category: "vegetables", Unit: "kg", MinPrice: 1.5, MaxPrice: 3.0, MinQuantity: 1, MaxQuantity: 8, ShelfLifeDays: 5},
}

var storageLocations = []string{"walk-in fridge", "freezer", "dry storage", "prep fridge"}

type demoRecipe struct {
	DishName    string
	Ingredients map[string]string
	Calories    float64
	PrepTime    int
	CookingTime int
	Price       float64
}

var demoRecipes = []demoRecipe{
	{
		DishName: "Chicken Fried Rice",
		Ingredients: map[string]string{
			"rice":      "0.25 kg",
			"chicken":   "0.2 kg",
			"eggs":      "2 pcs",
			"onion":     "0.05 kg",
			"garlic":    "0.01 kg",
			"olive oil": "0.02 l",
		},
		Calories: 650, PrepTime: 10, CookingTime: 15, Price: 9.5,
	},
	{
		DishName: "Beef Bolognese",
		Ingredients: map[string]string{
			"pasta":     "0.15 kg",
			"beef":      "0.2 kg",
			"tomato":    "0.2 kg",
			"onion":     "0.05 kg",
			"garlic":    "0.01 kg",
			"olive oil": "0.02 l",
		},
		Calories: 780, PrepTime: 15, CookingTime: 30, Price: 12.0,
	},
	{
		DishName: "Margherita Flatbread",
		Ingredients: map[string]string{
			"flour":     "0.2 kg",
			"tomato":    "0.15 kg",
			"cheese":    "0.1 kg",
			"basil":     "0.01 kg",
			"olive oil": "0.02 l",
		},
		Calories: 560, PrepTime: 20, CookingTime: 12, Price: 8.0,
	},
	{
		DishName: "Chicken Caesar Salad",
		Ingredients: map[string]string{
			"lettuce": "0.15 kg",
			"chicken": "0.15 kg",
			"cheese":  "0.03 kg",
			"eggs":    "1 pcs",
		},
		Calories: 420, PrepTime: 15, CookingTime: 10, Price: 8.5,
	},
	{
		DishName: "Butter Pancakes",
		Ingredients: map[string]string{
			"flour":  "0.15 kg",
			"milk":   "0.2 l",
			"eggs":   "2 pcs",
			"butter": "0.03 kg",
		},
		Calories: 510, PrepTime: 10, CookingTime: 10, Price: 6.5,
	},
}

func seedDemoData(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	lotsPerItem := c.Int("lots-per-item")
	if lotsPerItem < 1 {
		lotsPerItem = 1
	}

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	log.Println("Seeding demo inventory lots...")
	if err := seedInventoryLots(ctx, tx, lotsPerItem); err != nil {
		return fmt.Errorf("failed to seed inventory lots: %w", err)
	}

	log.Println("Seeding demo recipes...")
	if err := seedRecipes(ctx, tx); err != nil {
		return fmt.Errorf("failed to seed recipes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Println("Demo seeding completed successfully!")
	return nil
}

func seedInventoryLots(ctx context.Context, tx *sql.Tx, lotsPerItem int) error {
	const query = `
		INSERT INTO inventory_lots (
			item_name, category, quantity, unit, price_per_unit,
			expiry_date, storage_location, detected_by_ai, confidence_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_name, expiry_date) DO UPDATE SET
			quantity = inventory_lots.quantity + EXCLUDED.quantity,
			price_per_unit = EXCLUDED.price_per_unit,
			updated_at = CURRENT_TIMESTAMP
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare lot statement: %w", err)
	}
	defer stmt.Close()

	today := time.Now().Truncate(24 * time.Hour)
	count := 0
	for _, spec := range demoIngredients {
		for i := 0; i < lotsPerItem; i++ {
			quantity := spec.MinQuantity + rand.Float64()*(spec.MaxQuantity-spec.MinQuantity)
			price := spec.MinPrice + rand.Float64()*(spec.MaxPrice-spec.MinPrice)
			// Spread expiries across the shelf life so FIFO has something to chew on
			expiry := today.AddDate(0, 0, 1+fake.IntBetween(0, spec.ShelfLifeDays))
			location := storageLocations[rand.Intn(len(storageLocations))]
			detected := rand.Float64() < 0.4
			confidence := 0.0
			if detected {
				confidence = 0.7 + rand.Float64()*0.3
			}

			if _, err := stmt.ExecContext(ctx,
				spec.Name,
				spec.Category,
				quantity,
				spec.Unit,
				price,
				expiry,
				location,
				detected,
				confidence,
			); err != nil {
				return fmt.Errorf("failed to insert lot for %s: %w", spec.Name, err)
			}
			count++
		}
	}

	log.Printf("Successfully seeded %d inventory lots\n", count)
	return nil
}

func seedRecipes(ctx context.Context, tx *sql.Tx) error {
	const query = `
		INSERT INTO recipes (dish_name, ingredients, calories, prep_time, cooking_time, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (dish_name) DO UPDATE SET
			ingredients = EXCLUDED.ingredients,
			calories = EXCLUDED.calories,
			prep_time = EXCLUDED.prep_time,
			cooking_time = EXCLUDED.cooking_time,
			price = EXCLUDED.price
	`

	for _, recipe := range demoRecipes {
		ingredients, err := json.Marshal(recipe.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to marshal ingredients for %s: %w", recipe.DishName, err)
		}

		if _, err := tx.ExecContext(ctx, query,
			recipe.DishName,
			ingredients,
			recipe.Calories,
			recipe.PrepTime,
			recipe.CookingTime,
			recipe.Price,
		); err != nil {
			return fmt.Errorf("failed to insert recipe %s: %w", recipe.DishName, err)
		}
	}

	log.Printf("Successfully seeded %d recipes\n", len(demoRecipes))
	return nil
}
