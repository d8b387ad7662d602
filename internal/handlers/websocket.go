package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for MVP
	},
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub         *api.Hub
	authAPI     *api.AuthAPI
	swapsAPI    *api.SwapsAPI
	messagesAPI *api.MessagesAPI
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(
	hub *api.Hub,
	authAPI *api.AuthAPI,
	swapsAPI *api.SwapsAPI,
	messagesAPI *api.MessagesAPI,
) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authAPI:     authAPI,
		swapsAPI:    swapsAPI,
		messagesAPI: messagesAPI,
	}
}

// clientFrame is what a connected client may send.
type clientFrame struct {
	Type   string `json:"type"`
	SwapID int64  `json:"swap_id,omitempty"`
	Body   string `json:"body,omitempty"`
}

// HandleWebSocket handles GET /ws?token=...
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.ValidateWebSocketToken(r.URL.Query().Get("token"), h.authAPI)
	if err != nil {
		respondError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	userID := identity.ID

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	ctx := r.Context()
	h.announcePresence(ctx, userID, true)
	defer h.announcePresence(context.Background(), userID, false)

	log.Info().Int64("user_id", userID).Msg("WebSocket connection established")

	for {
		_, frameBytes, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Int64("user_id", userID).Msg("WebSocket error")
			}
			break
		}

		var frame clientFrame
		if err := json.Unmarshal(frameBytes, &frame); err != nil {
			log.Error().Err(err).Int64("user_id", userID).Msg("Failed to parse WebSocket frame")
			h.sendError(conn, "Invalid message format")
			continue
		}

		if err := h.handleFrame(ctx, userID, frame); err != nil {
			log.Error().Err(err).Int64("user_id", userID).Str("type", frame.Type).Msg("Failed to handle frame")
			h.sendError(conn, err.Error())
		}
	}
}

// announcePresence tells the counterparts of the user's active swaps that
// the user went on/offline, and on connect tells the user which
// counterparts are currently online.
func (h *WebSocketHandler) announcePresence(ctx context.Context, userID int64, online bool) {
	swaps, err := h.swapsAPI.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to load swaps for presence")
		return
	}

	seen := make(map[int64]bool)
	for _, swap := range swaps {
		if swap.Status != models.SwapActive {
			continue
		}
		counterpartID := swap.RequesterID
		if counterpartID == userID {
			counterpartID = swap.TargetID
		}
		if seen[counterpartID] {
			continue
		}
		seen[counterpartID] = true

		h.hub.NotifyPeerStatus(counterpartID, userID, online)
		if online {
			h.hub.NotifyPeerStatus(userID, counterpartID, h.hub.IsOnline(counterpartID))
		}
	}
}

// handleFrame processes incoming WebSocket frames
func (h *WebSocketHandler) handleFrame(ctx context.Context, userID int64, frame clientFrame) error {
	switch frame.Type {
	case "message":
		return h.handleChatMessage(ctx, userID, frame)
	default:
		return fmt.Errorf("unknown message type %q", frame.Type)
	}
}

// handleChatMessage sends a chat message through the facade and pushes it to
// both swap members.
func (h *WebSocketHandler) handleChatMessage(ctx context.Context, userID int64, frame clientFrame) error {
	swap, err := h.swapsAPI.Get(ctx, frame.SwapID)
	if err != nil {
		return fmt.Errorf("swap not found")
	}
	if swap.RequesterID != userID && swap.TargetID != userID {
		return fmt.Errorf("not a member of this swap")
	}

	msg, err := h.messagesAPI.Send(ctx, models.Message{
		SwapID:   frame.SwapID,
		SenderID: userID,
		Body:     frame.Body,
	})
	if err != nil {
		return err
	}

	counterpartID := swap.RequesterID
	if counterpartID == userID {
		counterpartID = swap.TargetID
	}
	h.hub.NotifyMessage(counterpartID, msg)
	h.hub.NotifyMessage(userID, msg)

	return nil
}

// sendError sends an error frame to the WebSocket connection
func (h *WebSocketHandler) sendError(conn *websocket.Conn, message string) {
	data, _ := json.Marshal(api.Event{Type: api.EventError, Error: message})
	conn.WriteMessage(websocket.TextMessage, data)
}
