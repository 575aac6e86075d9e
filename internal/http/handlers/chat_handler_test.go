// README: End-to-end handler tests over an in-memory wiring (no Redis/Postgres).
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"concierge/internal/http/handlers"
	"concierge/internal/modules/dialogue"
	"concierge/internal/modules/inventory"
	"concierge/internal/modules/reservation"
	"concierge/internal/types"
)

// buildTestRouter wires a minimal Gin engine with zero collaborator latency
// and no session store, so every test runs purely in memory.
func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	dialogueSvc := dialogue.NewService(dialogue.DefaultVocabulary())
	inventorySvc := inventory.NewService(inventory.Latency{})
	reservationSvc := reservation.NewService(nil, 0, nil)

	r := gin.New()
	chat := handlers.NewChatHandler(dialogueSvc, inventorySvc, nil, nil)
	r.POST("/api/chat", chat.Chat)
	hotel := handlers.NewHotelHandler(inventorySvc)
	r.POST("/api/search-hotels", hotel.Search)
	r.GET("/api/hotel/:id", hotel.Details)
	booking := handlers.NewBookingHandler(reservationSvc)
	r.POST("/api/confirm-booking", booking.Confirm)
	r.GET("/api/booking-stats", booking.Stats)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type chatResponseBody struct {
	SessionID          string                `json:"sessionId"`
	Text               string                `json:"text"`
	UpdateBookingState bool                  `json:"updateBookingState"`
	BookingState       dialogue.BookingState `json:"bookingState"`
	ShowHotels         bool                  `json:"showHotels"`
	Hotels             []inventory.Hotel     `json:"hotels"`
}

func TestChat_DestinationTurn(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodPost, "/api/chat", map[string]any{
		"message": "I'm looking for a hotel in Paris",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp chatResponseBody
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.SessionID == "" {
		t.Errorf("expected a generated session id")
	}
	if resp.BookingState.Destination != "Paris" || resp.BookingState.Status != dialogue.StatusInProgress {
		t.Errorf("state = %+v", resp.BookingState)
	}
	if resp.ShowHotels || len(resp.Hotels) != 0 {
		t.Errorf("no hotels expected on the first turn")
	}
}

func TestChat_GuestTurnAttachesHotels(t *testing.T) {
	r := buildTestRouter()

	state := dialogue.NewBookingState()
	state.Destination = "Paris"
	state.CheckIn = "Mar 9, 2026"
	state.CheckOut = "Mar 12, 2026"
	state.Status = dialogue.StatusInProgress

	w := doRequest(r, http.MethodPost, "/api/chat", map[string]any{
		"sessionId":    "abc",
		"message":      "2 guests 1 room",
		"bookingState": state,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp chatResponseBody
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.ShowHotels {
		t.Fatalf("expected showHotels")
	}
	if len(resp.Hotels) != 5 {
		t.Errorf("got %d hotels, want all 5", len(resp.Hotels))
	}
	if resp.SessionID != "abc" {
		t.Errorf("sessionId = %q, want echo of the caller's", resp.SessionID)
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	r := buildTestRouter()

	for _, msg := range []string{"", "   "} {
		w := doRequest(r, http.MethodPost, "/api/chat", map[string]any{"message": msg})
		if w.Code != http.StatusBadRequest {
			t.Errorf("message %q: status = %d, want 400", msg, w.Code)
		}
	}
}

func TestSearchHotels(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodPost, "/api/search-hotels", map[string]any{
		"destination": "Rome",
		"preferences": []string{"pool"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Hotels []inventory.Hotel `json:"hotels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Hotels) != 2 {
		t.Errorf("got %d hotels, want the 2 with a pool", len(resp.Hotels))
	}

	w = doRequest(r, http.MethodPost, "/api/search-hotels", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing destination: status = %d, want 400", w.Code)
	}
}

func TestHotelDetails(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodGet, "/api/hotel/1?destination=Paris", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Hotel inventory.HotelDetail `json:"hotel"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Hotel.Name != "Grand Hotel Paris" {
		t.Errorf("hotel = %q", resp.Hotel.Name)
	}

	w = doRequest(r, http.MethodGet, "/api/hotel/99?destination=Paris", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/hotel/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id: status = %d, want 400", w.Code)
	}
}

func TestConfirmBooking(t *testing.T) {
	r := buildTestRouter()

	state := dialogue.NewBookingState()
	state.Destination = "Paris"
	state.CheckIn = "Mar 9, 2026"
	state.CheckOut = "Mar 12, 2026"
	state.Guests = 2
	state.Rooms = 1
	state.SelectedHotel = &dialogue.SelectedHotel{ID: 1, Name: "Grand Hotel Paris", PricePerNight: types.USD(199)}
	state.Status = dialogue.StatusConfirming

	w := doRequest(r, http.MethodPost, "/api/confirm-booking", map[string]any{
		"bookingDetails": state,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var c reservation.Confirmation
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !c.Success {
		t.Errorf("expected success")
	}
	if c.TotalPrice != types.USD(597) {
		t.Errorf("totalPrice = %+v, want $597", c.TotalPrice)
	}
	if time.Since(c.ConfirmationDate) > time.Minute {
		t.Errorf("confirmationDate = %v, want recent", c.ConfirmationDate)
	}
}

func TestBookingStats(t *testing.T) {
	r := buildTestRouter()

	// No archive store is wired here, so the count is always zero.
	w := doRequest(r, http.MethodGet, "/api/booking-stats?destination=Paris", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Destination string `json:"destination"`
		Bookings    int64  `json:"bookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Destination != "Paris" || resp.Bookings != 0 {
		t.Errorf("stats = %+v", resp)
	}

	w = doRequest(r, http.MethodGet, "/api/booking-stats", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing destination: status = %d, want 400", w.Code)
	}
}

func TestConfirmBooking_Rejections(t *testing.T) {
	r := buildTestRouter()

	t.Run("no selection", func(t *testing.T) {
		state := dialogue.NewBookingState()
		state.Status = dialogue.StatusConfirming
		state.CheckIn, state.CheckOut = "Mar 9, 2026", "Mar 12, 2026"
		w := doRequest(r, http.MethodPost, "/api/confirm-booking", map[string]any{"bookingDetails": state})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("not confirming", func(t *testing.T) {
		state := dialogue.NewBookingState()
		state.CheckIn, state.CheckOut = "Mar 9, 2026", "Mar 12, 2026"
		state.SelectedHotel = &dialogue.SelectedHotel{ID: 1, Name: "Grand Hotel Paris", PricePerNight: types.USD(199)}
		state.Status = dialogue.StatusInProgress
		w := doRequest(r, http.MethodPost, "/api/confirm-booking", map[string]any{"bookingDetails": state})
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})
}
