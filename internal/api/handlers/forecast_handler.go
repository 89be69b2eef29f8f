// backend-go/internal/api/handlers/forecast_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type ForecastHandler struct {
	service *service.ForecastService
}

func NewForecastHandler(service *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

func (h *ForecastHandler) Forecast(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil {
		respondError(c, domain.ErrInvalidForecastHorizon)
		return
	}

	points, err := h.service.Forecast(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": points})
}
