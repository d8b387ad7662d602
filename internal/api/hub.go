package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/models"
)

// Event types pushed to connected clients.
const (
	EventSwapRequested = "swap_requested"
	EventSwapUpdated   = "swap_updated"
	EventMessage       = "message"
	EventPeerStatus    = "peer_status"
	EventError         = "error"
)

// Event is a WebSocket push frame.
type Event struct {
	Type    string          `json:"type"`
	Swap    *models.Swap    `json:"swap,omitempty"`
	Message *models.Message `json:"message,omitempty"`
	PeerID  int64           `json:"peer_id,omitempty"`
	Online  *bool           `json:"online,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Hub tracks one WebSocket connection per user and pushes swap and message
// events to the counterpart of an exchange when they are online.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*websocket.Conn)}
}

// Register stores the connection for a user, closing any previous one.
func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.connections[userID]; ok {
		existing.Close()
	}
	h.connections[userID] = conn

	log.Info().Int64("user_id", userID).Msg("WebSocket connection registered")
}

// Unregister closes and removes the user's connection if present.
func (h *Hub) Unregister(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.connections[userID]; ok {
		conn.Close()
		delete(h.connections, userID)
		log.Info().Int64("user_id", userID).Msg("WebSocket connection unregistered")
	}
}

// IsOnline reports whether the user has a registered connection.
func (h *Hub) IsOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.connections[userID]
	return ok
}

// SendToUser pushes an event to a specific user. A write failure drops the
// connection.
func (h *Hub) SendToUser(userID int64, event Event) error {
	h.mu.RLock()
	conn, ok := h.connections[userID]
	h.mu.RUnlock()

	if !ok {
		return fmt.Errorf("user %d is not connected", userID)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.Unregister(userID)
		return fmt.Errorf("send event: %w", err)
	}
	return nil
}

// NotifySwapRequested tells the target user a swap was requested of them.
func (h *Hub) NotifySwapRequested(targetID int64, swap models.Swap) {
	h.notify(targetID, Event{Type: EventSwapRequested, Swap: &swap})
}

// NotifySwapUpdated tells a swap member the status changed.
func (h *Hub) NotifySwapUpdated(userID int64, swap models.Swap) {
	h.notify(userID, Event{Type: EventSwapUpdated, Swap: &swap})
}

// NotifyMessage pushes a new chat message to a swap member.
func (h *Hub) NotifyMessage(userID int64, msg models.Message) {
	h.notify(userID, Event{Type: EventMessage, Message: &msg})
}

// NotifyPeerStatus tells a user their exchange counterpart went on/offline.
func (h *Hub) NotifyPeerStatus(userID, peerID int64, online bool) {
	h.notify(userID, Event{Type: EventPeerStatus, PeerID: peerID, Online: &online})
}

func (h *Hub) notify(userID int64, event Event) {
	if !h.IsOnline(userID) {
		return
	}
	if err := h.SendToUser(userID, event); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Str("type", event.Type).Msg("Failed to push event")
	}
}
