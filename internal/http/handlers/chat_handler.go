// README: Chat handler; one conversation turn, with optional hotel attachment.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"concierge/internal/modules/dialogue"
	"concierge/internal/modules/inventory"
	"concierge/internal/modules/session"
)

type ChatHandler struct {
	dialogue  *dialogue.Service
	inventory *inventory.Service
	sessions  *session.Store
	logger    *zap.Logger
}

// NewChatHandler wires the chat endpoint. sessions may be nil, in which case
// conversations are purely client-held.
func NewChatHandler(dialogueSvc *dialogue.Service, inventorySvc *inventory.Service, sessions *session.Store, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{dialogue: dialogueSvc, inventory: inventorySvc, sessions: sessions, logger: logger}
}

type chatRequest struct {
	SessionID    string                 `json:"sessionId"`
	Message      string                 `json:"message"`
	BookingState *dialogue.BookingState `json:"bookingState"`
}

type chatResponse struct {
	SessionID string `json:"sessionId"`
	dialogue.Reply
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	prior := h.priorState(c, req, sessionID)
	reply := h.dialogue.ProcessMessage(req.Message, prior)

	if reply.ShowHotels {
		hotels, err := h.inventory.Search(c.Request.Context(), inventory.Query{
			Destination: reply.BookingState.Destination,
			CheckIn:     reply.BookingState.CheckIn,
			CheckOut:    reply.BookingState.CheckOut,
			Guests:      reply.BookingState.Guests,
			Rooms:       reply.BookingState.Rooms,
			Preferences: reply.BookingState.Preferences,
		})
		if err != nil {
			// Collaborator failure: apologize without touching the stored
			// last-known-good state.
			h.logger.Warn("hotel search failed", zap.String("session", sessionID), zap.Error(err))
			writeError(c, http.StatusInternalServerError, "failed to process message")
			return
		}
		attached := make([]any, len(hotels))
		for i, hotel := range hotels {
			attached[i] = hotel
		}
		reply.Hotels = attached
	}

	if reply.UpdateBookingState && h.sessions != nil {
		if err := h.sessions.Save(c.Request.Context(), sessionID, reply.BookingState); err != nil {
			h.logger.Warn("failed to save session state", zap.String("session", sessionID), zap.Error(err))
		}
	}

	writeJSON(c, http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}

// priorState resolves the snapshot this turn starts from: the one in the
// request wins, then the stored session, then a fresh record.
func (h *ChatHandler) priorState(c *gin.Context, req chatRequest, sessionID string) dialogue.BookingState {
	if req.BookingState != nil {
		return *req.BookingState
	}
	if h.sessions != nil && req.SessionID != "" {
		state, ok, err := h.sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			h.logger.Warn("failed to load session state", zap.String("session", sessionID), zap.Error(err))
		} else if ok {
			return state
		}
	}
	return dialogue.NewBookingState()
}
