// backend-go/internal/repository/postgres/recipe_repository.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
)

type recipeRepository struct {
	db *DB
}

func NewRecipeRepository(db *DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// recipeRow maps the recipes table; ingredients live in a JSONB column.
type recipeRow struct {
	ID          int64   `db:"id"`
	DishName    string  `db:"dish_name"`
	Ingredients []byte  `db:"ingredients"`
	Calories    float64 `db:"calories"`
	PrepTime    int     `db:"prep_time"`
	CookingTime int     `db:"cooking_time"`
	Price       float64 `db:"price"`
}

func (row recipeRow) toDomain() (domain.Recipe, error) {
	recipe := domain.Recipe{
		ID:          row.ID,
		DishName:    row.DishName,
		Calories:    row.Calories,
		PrepTime:    row.PrepTime,
		CookingTime: row.CookingTime,
		Price:       row.Price,
	}
	if err := json.Unmarshal(row.Ingredients, &recipe.Ingredients); err != nil {
		return domain.Recipe{}, fmt.Errorf("failed to decode ingredients for %q: %w", row.DishName, err)
	}
	return recipe, nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("failed to encode ingredients for %q: %w", recipe.DishName, err)
	}

	query := `
		INSERT INTO recipes (dish_name, ingredients, calories, prep_time, cooking_time, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = r.db.GetContext(ctx, &recipe.ID, query,
		recipe.DishName, ingredients, recipe.Calories,
		recipe.PrepTime, recipe.CookingTime, recipe.Price,
	)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("failed to insert recipe %q: %w", recipe.DishName, err)
	}

	return recipe, nil
}

func (r *recipeRepository) ByDish(ctx context.Context, dishName string) (*domain.Recipe, error) {
	query := `
		SELECT id, dish_name, ingredients, calories, prep_time, cooking_time, price
		FROM recipes
		WHERE dish_name = $1
		ORDER BY id ASC
		LIMIT 1
	`

	var row recipeRow
	err := r.db.GetContext(ctx, &row, query, dishName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.RecipeNotFoundError{DishName: dishName}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %q: %w", dishName, err)
	}

	recipe, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context) ([]domain.Recipe, error) {
	query := `
		SELECT id, dish_name, ingredients, calories, prep_time, cooking_time, price
		FROM recipes
		ORDER BY id ASC
	`

	var rows []recipeRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipe, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}
