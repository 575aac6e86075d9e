// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"concierge/internal/modules/inventory"
	"concierge/internal/modules/reservation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrNoHotelSelected), errors.Is(err, reservation.ErrMissingStay):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, reservation.ErrNotReady):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "failed to confirm booking")
	}
}

func writeInventoryError(c *gin.Context, err error) {
	if errors.Is(err, inventory.ErrNotFound) {
		writeError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	writeError(c, http.StatusInternalServerError, "failed to get hotel details")
}
