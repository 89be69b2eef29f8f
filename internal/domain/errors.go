// backend-go/internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Error kinds exposed to callers alongside the human-readable message.
const (
	KindIngredientNotFound       = "IngredientNotFound"
	KindInsufficientStock        = "InsufficientStock"
	KindInvalidQuantityFormat    = "InvalidQuantityFormat"
	KindRecipeNotFound           = "RecipeNotFound"
	KindInvalidForecastHorizon   = "InvalidForecastHorizon"
	KindInsufficientForecastData = "InsufficientForecastData"
	KindItemNotFound             = "ItemNotFound"
	KindStaleInventory           = "StaleInventory"
)

var (
	// ErrInvalidForecastHorizon is returned for a zero or negative horizon.
	ErrInvalidForecastHorizon = errors.New("forecast horizon must be a positive number of days")

	// ErrInsufficientForecastData is returned when no item passes the
	// minimum-history gate or every per-item fit fails.
	ErrInsufficientForecastData = errors.New("not enough activity history for forecasting")

	// ErrItemNotFound is the generic lookup failure for inventory records.
	ErrItemNotFound = errors.New("item not found")

	// ErrStaleInventory signals that a lot changed between planning a
	// deduction and applying it; the caller should replan.
	ErrStaleInventory = errors.New("inventory changed while order was being placed")
)

// IngredientNotFoundError means no inventory lots exist for an ingredient.
type IngredientNotFoundError struct {
	Ingredient string
}

func (e *IngredientNotFoundError) Error() string {
	return fmt.Sprintf("ingredient %q not found in inventory", e.Ingredient)
}

// InsufficientStockError means the FIFO walk exhausted every lot with demand
// left over.
type InsufficientStockError struct {
	Ingredient string
	Needed     float64
	Available  float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for ingredient %q (needed: %g, available: %g)",
		e.Ingredient, e.Needed, e.Available)
}

// InvalidQuantityError means a quantity string did not begin with a numeric
// magnitude.
type InvalidQuantityError struct {
	Ingredient string
	Raw        string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity format %q for ingredient %q", e.Raw, e.Ingredient)
}

// RecipeNotFoundError means an ordered dish has no recipe.
type RecipeNotFoundError struct {
	DishName string
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe for %q not found", e.DishName)
}

// ErrorKind maps an error to its machine-readable kind, or "" when the error
// is not part of the taxonomy.
func ErrorKind(err error) string {
	var (
		ingredientErr *IngredientNotFoundError
		stockErr      *InsufficientStockError
		quantityErr   *InvalidQuantityError
		recipeErr     *RecipeNotFoundError
	)
	switch {
	case errors.As(err, &ingredientErr):
		return KindIngredientNotFound
	case errors.As(err, &stockErr):
		return KindInsufficientStock
	case errors.As(err, &quantityErr):
		return KindInvalidQuantityFormat
	case errors.As(err, &recipeErr):
		return KindRecipeNotFound
	case errors.Is(err, ErrInvalidForecastHorizon):
		return KindInvalidForecastHorizon
	case errors.Is(err, ErrInsufficientForecastData):
		return KindInsufficientForecastData
	case errors.Is(err, ErrItemNotFound):
		return KindItemNotFound
	case errors.Is(err, ErrStaleInventory):
		return KindStaleInventory
	default:
		return ""
	}
}
