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

// UserHandler handles user profile and search requests.
type UserHandler struct {
	usersAPI *api.UsersAPI
}

// NewUserHandler creates a new user handler
func NewUserHandler(usersAPI *api.UsersAPI) *UserHandler {
	return &UserHandler{usersAPI: usersAPI}
}

// Search handles GET /api/v1/users?q=...&offset=...
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, "offset must be a non-negative integer", http.StatusBadRequest)
			return
		}
		offset = parsed
	}

	users, err := h.usersAPI.Search(r.Context(), query, offset)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("User search failed")
		respondFacadeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetProfile handles GET /api/v1/users/{user_id}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.usersAPI.GetProfile(r.Context(), id)
	if err != nil {
		respondFacadeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PATCH /api/v1/users/{user_id}. Only the profile
// owner or an admin may update it.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if identity.ID != id && !identity.IsAdmin {
		respondError(w, "Cannot update another user's profile", http.StatusForbidden)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.usersAPI.UpdateProfile(r.Context(), id, update)
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("Profile update failed")
		respondFacadeError(w, err)
		return
	}

	log.Info().Int64("user_id", id).Msg("Profile updated")
	respondJSON(w, http.StatusOK, user)
}
