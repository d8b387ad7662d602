package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/models"
)

// MessageHandler handles chat within a swap.
type MessageHandler struct {
	messagesAPI *api.MessagesAPI
	swapsAPI    *api.SwapsAPI
	hub         *api.Hub
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messagesAPI *api.MessagesAPI, swapsAPI *api.SwapsAPI, hub *api.Hub) *MessageHandler {
	return &MessageHandler{messagesAPI: messagesAPI, swapsAPI: swapsAPI, hub: hub}
}

// sendRequest is the body of a chat message.
type sendRequest struct {
	Body string `json:"body"`
}

// GetBySwap handles GET /api/v1/swaps/{swap_id}/messages. Only a member of
// the swap may read its chat.
func (h *MessageHandler) GetBySwap(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	swapID, err := strconv.ParseInt(chi.URLParam(r, "swap_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid swap id", http.StatusBadRequest)
		return
	}

	swap, err := h.swapsAPI.Get(r.Context(), swapID)
	if err != nil {
		respondFacadeError(w, err)
		return
	}
	if swap.RequesterID != identity.ID && swap.TargetID != identity.ID {
		respondError(w, "Not a member of this swap", http.StatusForbidden)
		return
	}

	msgs, err := h.messagesAPI.GetBySwap(r.Context(), swapID)
	if err != nil {
		log.Error().Err(err).Int64("swap_id", swapID).Msg("Failed to list messages")
		respondFacadeError(w, err)
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}

	respondJSON(w, http.StatusOK, msgs)
}

// Send handles POST /api/v1/swaps/{swap_id}/messages and pushes the new
// message to the counterpart if they are connected.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	swapID, err := strconv.ParseInt(chi.URLParam(r, "swap_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid swap id", http.StatusBadRequest)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	swap, err := h.swapsAPI.Get(r.Context(), swapID)
	if err != nil {
		respondFacadeError(w, err)
		return
	}
	if swap.RequesterID != identity.ID && swap.TargetID != identity.ID {
		respondError(w, "Not a member of this swap", http.StatusForbidden)
		return
	}

	msg, err := h.messagesAPI.Send(r.Context(), models.Message{
		SwapID:   swapID,
		SenderID: identity.ID,
		Body:     req.Body,
	})
	if err != nil {
		log.Error().Err(err).Int64("swap_id", swapID).Msg("Failed to send message")
		respondFacadeError(w, err)
		return
	}

	counterpartID := swap.RequesterID
	if counterpartID == identity.ID {
		counterpartID = swap.TargetID
	}
	h.hub.NotifyMessage(counterpartID, msg)

	respondJSON(w, http.StatusCreated, msg)
}
