// backend-go/internal/api/handlers/inventory_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type lotRequest struct {
	ItemName        string    `json:"item_name" binding:"required"`
	Category        string    `json:"category"`
	Quantity        float64   `json:"quantity" binding:"min=0"`
	Unit            string    `json:"unit"`
	PricePerUnit    float64   `json:"price_per_unit" binding:"min=0"`
	ExpiryDate      time.Time `json:"expiry_date" binding:"required"`
	StorageLocation string    `json:"storage_location"`
	DetectedByAI    bool      `json:"detected_by_ai"`
	ConfidenceScore float64   `json:"confidence_score"`
}

func (r lotRequest) toDomain() domain.InventoryLot {
	return domain.InventoryLot{
		ItemName:        r.ItemName,
		Category:        r.Category,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		PricePerUnit:    decimal.NewFromFloat(r.PricePerUnit),
		ExpiryDate:      r.ExpiryDate,
		StorageLocation: r.StorageLocation,
		DetectedByAI:    r.DetectedByAI,
		ConfidenceScore: r.ConfidenceScore,
	}
}

func (h *InventoryHandler) AddStock(c *gin.Context) {
	var req lotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	lot, err := h.service.AddStock(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lot)
}

func (h *InventoryHandler) ListLots(c *gin.Context) {
	lots, err := h.service.ListLots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lots, "total": len(lots)})
}

func (h *InventoryHandler) UpdateLot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lot id"})
		return
	}

	var req lotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	lot := req.toDomain()
	lot.ID = id

	if err := h.service.UpdateLot(c.Request.Context(), lot); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lot)
}

func (h *InventoryHandler) DeleteLot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lot id"})
		return
	}

	deleted, err := h.service.DeleteLot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *InventoryHandler) RiskReport(c *gin.Context) {
	report, err := h.service.RiskReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": report})
}
