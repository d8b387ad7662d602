package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/models"
	"skillswap-backend/internal/store"
)

func newTestStore(t *testing.T, tokenTTL time.Duration) (*Store, *MemStorage) {
	t.Helper()

	st := store.NewMemStore()
	_, err := st.InsertUser(context.Background(), models.User{
		Name:     "Alex Chen",
		Email:    "alex@example.com",
		IsPublic: true,
	})
	require.NoError(t, err)

	facade := api.New(st, auth.NewIssuer("", tokenTTL))
	storage := NewMemStorage()
	return New(facade, storage), storage
}

func TestLoginEstablishesSession(t *testing.T) {
	s, storage := newTestStore(t, time.Hour)

	err := s.Login(context.Background(), "alex@example.com", "long-enough-password")
	require.NoError(t, err)

	state := s.State()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "alex@example.com", state.Identity.Email)
	assert.NotEmpty(t, state.Token)
	assert.False(t, state.Loading)

	persisted, ok := storage.Get("token")
	require.True(t, ok)
	assert.Equal(t, state.Token, persisted)
}

func TestLoginFailureLeavesSignedOut(t *testing.T) {
	s, storage := newTestStore(t, time.Hour)

	err := s.Login(context.Background(), "alex@example.com", "short")
	require.ErrorIs(t, err, api.ErrInvalidCredentials)

	state := s.State()
	assert.Nil(t, state.Identity)
	assert.Empty(t, state.Token)
	assert.False(t, state.Loading)

	_, ok := storage.Get("token")
	assert.False(t, ok)
}

func TestRegisterEstablishesSession(t *testing.T) {
	s, storage := newTestStore(t, time.Hour)

	err := s.Register(context.Background(), "Sarah Johnson", "sarah@example.com", "long-enough-password")
	require.NoError(t, err)

	state := s.State()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "Sarah Johnson", state.Identity.Name)

	_, ok := storage.Get("token")
	assert.True(t, ok)
}

func TestLogoutClearsSession(t *testing.T) {
	s, storage := newTestStore(t, time.Hour)
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "long-enough-password"))

	s.Logout()

	state := s.State()
	assert.Nil(t, state.Identity)
	assert.Empty(t, state.Token)

	_, ok := storage.Get("token")
	assert.False(t, ok)
}

func TestInitializeRestoresValidToken(t *testing.T) {
	s, storage := newTestStore(t, time.Hour)
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "long-enough-password"))
	token := s.State().Token

	// A fresh store over the same storage picks the session back up.
	restored := New(s.api, storage)
	restored.Initialize()

	state := restored.State()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "alex@example.com", state.Identity.Email)
	assert.Equal(t, token, state.Token)
}

func TestInitializeClearsExpiredToken(t *testing.T) {
	s, storage := newTestStore(t, -time.Minute)
	require.NoError(t, s.Login(context.Background(), "alex@example.com", "long-enough-password"))

	restored := New(s.api, storage)
	restored.Initialize()

	assert.Nil(t, restored.State().Identity)
	_, ok := storage.Get("token")
	assert.False(t, ok, "expired token must be removed from storage")
}

func TestInitializeClearsGarbageToken(t *testing.T) {
	s, storage := newTestStore(t, time.Hour)
	storage.Set("token", "not-a-token")

	s.Initialize()

	assert.Nil(t, s.State().Identity)
	_, ok := storage.Get("token")
	assert.False(t, ok)
}

func TestSubscribersSeeStateChanges(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	var states []State
	s.Subscribe(func(state State) { states = append(states, state) })

	require.NoError(t, s.Login(context.Background(), "alex@example.com", "long-enough-password"))

	require.GreaterOrEqual(t, len(states), 2)
	assert.True(t, states[0].Loading, "first publication is the loading flag")
	final := states[len(states)-1]
	assert.False(t, final.Loading)
	require.NotNil(t, final.Identity)
}
