package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/models"
	"skillswap-backend/internal/store"
)

const minPasswordLen = 8

// AuthAPI handles login, registration and token validation.
type AuthAPI struct {
	*base
}

// AuthResult is what a successful login or registration returns.
type AuthResult struct {
	Identity models.Identity `json:"user"`
	Token    string          `json:"token"`
}

// Login authenticates the credentials and issues a fresh token. The
// credential model stores no secret, so the only password check is the
// minimum length; a short password fails regardless of the email.
func (a *AuthAPI) Login(ctx context.Context, creds models.LoginCredentials) (AuthResult, error) {
	if err := a.delay(ctx); err != nil {
		return AuthResult{}, err
	}

	if len(creds.Password) < minPasswordLen {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := a.store.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}

	identity := a.identityFor(user)
	token, err := a.issuer.Issue(identity)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	log.Debug().Int64("user_id", identity.ID).Msg("User logged in")
	return AuthResult{Identity: identity, Token: token}, nil
}

// Register creates a user with an empty profile and issues a token. The
// email must be unused and the password must meet the login length check, so
// a register immediately followed by a login round-trips.
func (a *AuthAPI) Register(ctx context.Context, creds models.RegisterCredentials) (AuthResult, error) {
	if err := a.delay(ctx); err != nil {
		return AuthResult{}, err
	}

	if len(creds.Password) < minPasswordLen {
		return AuthResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	if _, err := a.store.GetUserByEmail(ctx, creds.Email); err == nil {
		return AuthResult{}, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return AuthResult{}, fmt.Errorf("register: %w", err)
	}

	user, err := a.store.InsertUser(ctx, models.User{
		Name:         creds.Name,
		Email:        creds.Email,
		Availability: []string{},
		IsPublic:     true,
		RatingAvg:    0,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("register: %w", err)
	}

	identity := a.identityFor(user)
	token, err := a.issuer.Issue(identity)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("User registered")
	return AuthResult{Identity: identity, Token: token}, nil
}

// ValidateToken decodes a token into an identity. It is synchronous and
// fails closed: anything malformed, tampered or expired yields ok == false.
func (a *AuthAPI) ValidateToken(token string) (models.Identity, bool) {
	return a.issuer.Validate(token)
}

func (a *AuthAPI) identityFor(user models.User) models.Identity {
	return models.Identity{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: strings.EqualFold(user.Email, a.adminEmail),
	}
}
