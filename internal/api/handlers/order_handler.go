// backend-go/internal/api/handlers/order_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(service *service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderRequest struct {
	CustomerID   int64          `json:"customer_id" binding:"required"`
	DateTime     time.Time      `json:"date_time" binding:"required"`
	ItemsOrdered map[string]int `json:"items_ordered" binding:"required"`
	TotalBill    float64        `json:"total_bill" binding:"min=0"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if len(req.ItemsOrdered) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), service.OrderRequest{
		CustomerID: req.CustomerID,
		DateTime:   req.DateTime,
		Items:      req.ItemsOrdered,
		TotalBill:  decimal.NewFromFloat(req.TotalBill),
	})
	if err != nil {
		if kind := domain.ErrorKind(err); kind != "" {
			c.JSON(rejectionStatus(kind), gin.H{
				"status":  domain.OrderRejected,
				"error":   kind,
				"details": err.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func rejectionStatus(kind string) int {
	switch kind {
	case domain.KindRecipeNotFound, domain.KindIngredientNotFound:
		return http.StatusNotFound
	case domain.KindInvalidQuantityFormat:
		return http.StatusBadRequest
	default:
		return http.StatusConflict
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}
