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

// SwapHandler handles the swap lifecycle over HTTP and pushes events to the
// counterpart through the hub.
type SwapHandler struct {
	swapsAPI *api.SwapsAPI
	hub      *api.Hub
}

// NewSwapHandler creates a new swap handler
func NewSwapHandler(swapsAPI *api.SwapsAPI, hub *api.Hub) *SwapHandler {
	return &SwapHandler{swapsAPI: swapsAPI, hub: hub}
}

// updateStatusRequest is the body of a status change.
type updateStatusRequest struct {
	Status models.SwapStatus `json:"status"`
}

// GetByUser handles GET /api/v1/swaps, returning the caller's swaps with
// resolved counterpart records.
func (h *SwapHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	swaps, err := h.swapsAPI.GetByUser(r.Context(), identity.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", identity.ID).Msg("Failed to list swaps")
		respondFacadeError(w, err)
		return
	}
	if swaps == nil {
		swaps = []models.Swap{}
	}

	respondJSON(w, http.StatusOK, swaps)
}

// Create handles POST /api/v1/swaps. The caller is always the requester.
func (h *SwapHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	var swap models.Swap
	if err := json.NewDecoder(r.Body).Decode(&swap); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	swap.RequesterID = identity.ID

	created, err := h.swapsAPI.Create(r.Context(), swap)
	if err != nil {
		log.Error().
			Err(err).
			Int64("requester_id", identity.ID).
			Int64("target_id", swap.TargetID).
			Msg("Failed to create swap")
		respondFacadeError(w, err)
		return
	}

	log.Info().
		Int64("swap_id", created.ID).
		Int64("requester_id", created.RequesterID).
		Int64("target_id", created.TargetID).
		Msg("Swap created")

	h.hub.NotifySwapRequested(created.TargetID, created)

	respondJSON(w, http.StatusCreated, created)
}

// UpdateStatus handles PATCH /api/v1/swaps/{swap_id}/status. Only a member
// of the swap may change its status.
func (h *SwapHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "swap_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid swap id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	swap, err := h.swapsAPI.Get(r.Context(), id)
	if err != nil {
		respondFacadeError(w, err)
		return
	}
	if swap.RequesterID != identity.ID && swap.TargetID != identity.ID {
		respondError(w, "Not a member of this swap", http.StatusForbidden)
		return
	}

	updated, err := h.swapsAPI.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		log.Error().
			Err(err).
			Int64("swap_id", id).
			Str("status", string(req.Status)).
			Msg("Failed to update swap status")
		respondFacadeError(w, err)
		return
	}

	log.Info().Int64("swap_id", id).Str("status", string(updated.Status)).Msg("Swap status updated")

	counterpartID := updated.RequesterID
	if counterpartID == identity.ID {
		counterpartID = updated.TargetID
	}
	h.hub.NotifySwapUpdated(counterpartID, updated)

	respondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/swaps/{swap_id}. Deleting an absent id
// succeeds with no effect; deleting someone else's swap is forbidden.
func (h *SwapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "swap_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid swap id", http.StatusBadRequest)
		return
	}

	if swap, err := h.swapsAPI.Get(r.Context(), id); err == nil {
		if swap.RequesterID != identity.ID && swap.TargetID != identity.ID {
			respondError(w, "Not a member of this swap", http.StatusForbidden)
			return
		}
	}

	if err := h.swapsAPI.Delete(r.Context(), id); err != nil {
		respondFacadeError(w, err)
		return
	}

	log.Info().Int64("swap_id", id).Int64("user_id", identity.ID).Msg("Swap deleted")
	w.WriteHeader(http.StatusNoContent)
}
