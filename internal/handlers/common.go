package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/store"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// respondFacadeError maps facade errors to HTTP status codes.
func respondFacadeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, api.ErrEmailExists), errors.Is(err, api.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, api.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	}
	respondError(w, err.Error(), status)
}
