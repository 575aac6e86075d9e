// README: Hotel search and detail handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"concierge/internal/modules/inventory"
)

type HotelHandler struct {
	inventory *inventory.Service
}

func NewHotelHandler(inventorySvc *inventory.Service) *HotelHandler {
	return &HotelHandler{inventory: inventorySvc}
}

// Search handles POST /api/search-hotels.
func (h *HotelHandler) Search(c *gin.Context) {
	var q inventory.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if q.Destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}

	hotels, err := h.inventory.Search(c.Request.Context(), q)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to search hotels")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": hotels})
}

// Details handles GET /api/hotel/:id.
func (h *HotelHandler) Details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	destination := c.Query("destination")

	hotel, err := h.inventory.Details(c.Request.Context(), id, destination)
	if err != nil {
		writeInventoryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotel": hotel})
}
