// backend-go/internal/api/handlers/activity_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ActivityHandler struct {
	service *service.ActivityService
}

func NewActivityHandler(service *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityRequest struct {
	DateTime         time.Time `json:"date_time" binding:"required"`
	ItemName         string    `json:"item_name" binding:"required"`
	QuantitySold     int       `json:"quantity_sold" binding:"min=0"`
	Revenue          float64   `json:"revenue" binding:"min=0"`
	CustomerCount    int       `json:"customer_count" binding:"min=0"`
	WeatherCondition *string   `json:"weather_condition"`
	DayType          string    `json:"day_type"`
}

func (h *ActivityHandler) LogActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	activity, err := h.service.LogActivity(c.Request.Context(), domain.DailyActivity{
		DateTime:         req.DateTime,
		ItemName:         req.ItemName,
		QuantitySold:     req.QuantitySold,
		Revenue:          decimal.NewFromFloat(req.Revenue),
		CustomerCount:    req.CustomerCount,
		WeatherCondition: req.WeatherCondition,
		DayType:          req.DayType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.service.ListActivities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities, "total": len(activities)})
}
