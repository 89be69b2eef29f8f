// backend-go/internal/api/handlers/recipe_handler.go
package handlers

import (
	"net/http"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	service *service.RecipeService
}

func NewRecipeHandler(service *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

type recipeRequest struct {
	DishName    string            `json:"dish_name" binding:"required"`
	Ingredients map[string]string `json:"ingredients" binding:"required"`
	Calories    float64           `json:"calories"`
	PrepTime    int               `json:"prep_time"`
	CookingTime int               `json:"cooking_time"`
	Price       float64           `json:"price"`
}

func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	recipe, err := h.service.AddRecipe(c.Request.Context(), domain.Recipe{
		DishName:    req.DishName,
		Ingredients: req.Ingredients,
		Calories:    req.Calories,
		PrepTime:    req.PrepTime,
		CookingTime: req.CookingTime,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.service.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "total": len(recipes)})
}
