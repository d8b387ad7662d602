package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/models"
)

// AuthHandler handles login, registration and session introspection.
type AuthHandler struct {
	authAPI *api.AuthAPI
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authAPI *api.AuthAPI) *AuthHandler {
	return &AuthHandler{authAPI: authAPI}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.authAPI.Login(r.Context(), creds)
	if err != nil {
		log.Warn().Err(err).Str("email", creds.Email).Msg("Login failed")
		respondFacadeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds models.RegisterCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if creds.Name == "" || creds.Email == "" {
		respondError(w, "name and email are required", http.StatusBadRequest)
		return
	}

	result, err := h.authAPI.Register(r.Context(), creds)
	if err != nil {
		log.Warn().Err(err).Str("email", creds.Email).Msg("Registration failed")
		respondFacadeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// Session handles GET /api/v1/auth/session. The auth middleware has already
// validated the token, so this just echoes the identity.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, identity)
}
