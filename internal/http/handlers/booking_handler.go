// README: Booking confirmation handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"concierge/internal/modules/dialogue"
	"concierge/internal/modules/reservation"
)

type BookingHandler struct {
	reservation *reservation.Service
}

func NewBookingHandler(reservationSvc *reservation.Service) *BookingHandler {
	return &BookingHandler{reservation: reservationSvc}
}

type confirmRequest struct {
	BookingDetails dialogue.BookingState `json:"bookingDetails"`
}

// Confirm handles POST /api/confirm-booking.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	confirmation, err := h.reservation.Confirm(c.Request.Context(), req.BookingDetails)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, confirmation)
}

type statsResponse struct {
	Destination string `json:"destination"`
	Bookings    int64  `json:"bookings"`
}

// Stats handles GET /api/booking-stats.
func (h *BookingHandler) Stats(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}

	n, err := h.reservation.BookingsFor(c.Request.Context(), destination)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to load booking stats")
		return
	}
	writeJSON(c, http.StatusOK, statsResponse{Destination: destination, Bookings: n})
}
