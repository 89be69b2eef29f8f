// backend-go/internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/freshserve/backend-go/internal/api/handlers"
	"github.com/freshserve/backend-go/internal/api/middleware"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Inventory *service.InventoryService
	Recipes   *service.RecipeService
	Orders    *service.OrderService
	Menu      *service.MenuService
	Forecast  *service.ForecastService
	Activity  *service.ActivityService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.POST("", inventoryHandler.AddStock)
				inventoryGroup.GET("", inventoryHandler.ListLots)
				inventoryGroup.PUT("/:id", inventoryHandler.UpdateLot)
				inventoryGroup.DELETE("/:id", inventoryHandler.DeleteLot)
				inventoryGroup.GET("/risk-report", inventoryHandler.RiskReport)
			}
		}

		if services.Recipes != nil {
			recipeHandler := handlers.NewRecipeHandler(services.Recipes)
			apiGroup.POST("/recipes", recipeHandler.AddRecipe)
			apiGroup.GET("/recipes", recipeHandler.ListRecipes)
		}

		if services.Orders != nil {
			orderHandler := handlers.NewOrderHandler(services.Orders)
			apiGroup.POST("/orders", orderHandler.PlaceOrder)
			apiGroup.GET("/orders", orderHandler.ListOrders)
		}

		if services.Menu != nil {
			menuHandler := handlers.NewMenuHandler(services.Menu)
			apiGroup.GET("/menu", menuHandler.GetMenu)
		}

		if services.Forecast != nil {
			forecastHandler := handlers.NewForecastHandler(services.Forecast)
			apiGroup.GET("/forecast/:days", forecastHandler.Forecast)
		}

		if services.Activity != nil {
			activityHandler := handlers.NewActivityHandler(services.Activity)
			apiGroup.POST("/daily-activity", activityHandler.LogActivity)
			apiGroup.GET("/daily-activity", activityHandler.ListActivities)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
