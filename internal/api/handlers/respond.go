// backend-go/internal/api/handlers/respond.go
package handlers

import (
	"net/http"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status and a machine-readable
// envelope. Errors outside the taxonomy become opaque 500s.
func respondError(c *gin.Context, err error) {
	kind := domain.ErrorKind(err)

	status := http.StatusInternalServerError
	switch kind {
	case domain.KindInvalidQuantityFormat, domain.KindInvalidForecastHorizon, domain.KindInsufficientForecastData:
		status = http.StatusBadRequest
	case domain.KindRecipeNotFound, domain.KindIngredientNotFound, domain.KindItemNotFound:
		status = http.StatusNotFound
	case domain.KindInsufficientStock, domain.KindStaleInventory:
		status = http.StatusConflict
	}

	if kind == "" {
		c.JSON(status, gin.H{"error": "internal error", "details": err.Error()})
		return
	}

	c.JSON(status, gin.H{"error": kind, "details": err.Error()})
}
