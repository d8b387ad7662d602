package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/models"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth creates a middleware that validates the bearer token and stores the
// decoded identity in the request context.
func Auth(authAPI *api.AuthAPI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			identity, ok := authAPI.ValidateToken(parts[1])
			if !ok {
				respondError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated identity from the context.
func GetIdentity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}

// ValidateWebSocketToken validates a token passed as a WebSocket query
// parameter, where the Authorization header is unavailable.
func ValidateWebSocketToken(token string, authAPI *api.AuthAPI) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, fmt.Errorf("token required")
	}
	identity, ok := authAPI.ValidateToken(token)
	if !ok {
		return models.Identity{}, fmt.Errorf("invalid token")
	}
	return identity, nil
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
