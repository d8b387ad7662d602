// Package session holds the client-side view of authentication: the current
// identity, its token, and a loading flag. It issues commands to the facade
// and republishes state to subscribers; it knows nothing about any UI.
package session

import (
	"context"
	"sync"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/models"
)

// tokenKey is the single key used in token storage.
const tokenKey = "token"

// State is a snapshot of the session store.
type State struct {
	Identity *models.Identity
	Token    string
	Loading  bool
}

// Store tracks the authenticated identity across facade calls and persists
// the token so a restart within the token's lifetime resumes the session.
type Store struct {
	api     *api.API
	storage TokenStorage

	mu        sync.Mutex
	identity  *models.Identity
	token     string
	loading   bool
	listeners []func(State)
}

// New creates a session store over the facade and a token storage.
func New(a *api.API, storage TokenStorage) *Store {
	return &Store{api: a, storage: storage}
}

// Subscribe registers a listener called with a state snapshot after every
// change. Listeners run on the mutating goroutine.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Login authenticates and, on success, persists the fresh token. Re-invoking
// always re-issues a token.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)

	result, err := s.api.Auth.Login(ctx, models.LoginCredentials{Email: email, Password: password})
	if err != nil {
		s.setLoading(false)
		return err
	}

	s.establish(result)
	return nil
}

// Register creates an account and, on success, persists the fresh token.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	s.setLoading(true)

	result, err := s.api.Auth.Register(ctx, models.RegisterCredentials{Name: name, Email: email, Password: password})
	if err != nil {
		s.setLoading(false)
		return err
	}

	s.establish(result)
	return nil
}

// Logout clears the persisted token and the in-memory identity.
func (s *Store) Logout() {
	s.storage.Delete(tokenKey)

	s.mu.Lock()
	s.identity = nil
	s.token = ""
	s.publishLocked()
	s.mu.Unlock()
}

// Initialize restores a session from a previously persisted token. An
// invalid or expired token is removed from storage and leaves the store
// signed out.
func (s *Store) Initialize() {
	token, ok := s.storage.Get(tokenKey)
	if !ok {
		return
	}

	identity, ok := s.api.Auth.ValidateToken(token)
	if !ok {
		s.storage.Delete(tokenKey)
		return
	}

	s.mu.Lock()
	s.identity = &identity
	s.token = token
	s.publishLocked()
	s.mu.Unlock()
}

func (s *Store) establish(result api.AuthResult) {
	s.storage.Set(tokenKey, result.Token)

	s.mu.Lock()
	identity := result.Identity
	s.identity = &identity
	s.token = result.Token
	s.loading = false
	s.publishLocked()
	s.mu.Unlock()
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.publishLocked()
	s.mu.Unlock()
}

func (s *Store) snapshot() State {
	return State{Identity: s.identity, Token: s.token, Loading: s.loading}
}

// publishLocked notifies listeners; the caller holds the mutex.
func (s *Store) publishLocked() {
	state := s.snapshot()
	for _, fn := range s.listeners {
		fn(state)
	}
}
