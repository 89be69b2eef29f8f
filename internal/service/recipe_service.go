// backend-go/internal/service/recipe_service.go
package service

import (
	"context"

	"github.com/freshserve/backend-go/internal/cache"
	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

type RecipeService struct {
	repo      repository.RecipeRepository
	menuCache cache.MenuCache
}

func NewRecipeService(repo repository.RecipeRepository, menuCache cache.MenuCache) *RecipeService {
	if menuCache == nil {
		menuCache = cache.NewNoopMenuCache()
	}
	return &RecipeService{repo: repo, menuCache: menuCache}
}

// AddRecipe stores a recipe. Ingredient quantity strings are not validated
// here: a malformed quantity makes the dish unbuildable wherever it is
// referenced instead of failing unrelated operations.
func (s *RecipeService) AddRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := s.menuCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("recipe: menu cache invalidation failed")
	}

	return created, nil
}

func (s *RecipeService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.repo.List(ctx)
}
