// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"concierge/internal/http/handlers"
	"concierge/internal/http/middleware"
	"concierge/internal/modules/dialogue"
	"concierge/internal/modules/inventory"
	"concierge/internal/modules/reservation"
	"concierge/internal/modules/session"
)

type RouterDeps struct {
	Dialogue    *dialogue.Service
	Inventory   *inventory.Service
	Reservation *reservation.Service
	Sessions    *session.Store
	Logger      *zap.Logger

	RatePerMinute int
	RateBurst     int
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	// The browser client is served from anywhere during the demo, so CORS
	// stays wide open.
	r.Use(cors.Default())

	chatHandler := handlers.NewChatHandler(deps.Dialogue, deps.Inventory, deps.Sessions, deps.Logger)
	r.POST("/api/chat", middleware.RateLimit(deps.RatePerMinute, deps.RateBurst, deps.Logger), chatHandler.Chat)

	hotelHandler := handlers.NewHotelHandler(deps.Inventory)
	r.POST("/api/search-hotels", hotelHandler.Search)
	r.GET("/api/hotel/:id", hotelHandler.Details)

	bookingHandler := handlers.NewBookingHandler(deps.Reservation)
	r.POST("/api/confirm-booking", bookingHandler.Confirm)
	r.GET("/api/booking-stats", bookingHandler.Stats)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
