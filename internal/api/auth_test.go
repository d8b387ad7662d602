package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/models"
	"skillswap-backend/internal/store"
)

func TestLoginSucceedsForKnownEmail(t *testing.T) {
	a, st := newTestAPI(t)
	user := seedUser(t, st, "Alex Chen", "alex@example.com", true)

	result, err := a.Auth.Login(context.Background(), models.LoginCredentials{
		Email:    "alex@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.Identity.ID)
	assert.Equal(t, "Alex Chen", result.Identity.Name)
	assert.NotEmpty(t, result.Token)
}

func TestLoginShortPasswordFailsRegardlessOfEmail(t *testing.T) {
	a, st := newTestAPI(t)
	seedUser(t, st, "Alex Chen", "alex@example.com", true)

	for _, email := range []string{"alex@example.com", "nobody@example.com"} {
		_, err := a.Auth.Login(context.Background(), models.LoginCredentials{
			Email:    email,
			Password: "short",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials, "email %s", email)
	}
}

func TestLoginUnknownEmailFails(t *testing.T) {
	a, _ := newTestAPI(t)

	_, err := a.Auth.Login(context.Background(), models.LoginCredentials{
		Email:    "nobody@example.com",
		Password: "long-enough-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmailDoesNotMutateStore(t *testing.T) {
	a, st := newTestAPI(t)
	seedUser(t, st, "Alex Chen", "alex@example.com", true)

	_, err := a.Auth.Register(context.Background(), models.RegisterCredentials{
		Name:     "Impostor",
		Email:    "alex@example.com",
		Password: "long-enough-password",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	users, err := st.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1, "failed registration must not append a user")
}

func TestRegisterThenLoginRoundTrips(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx := context.Background()

	registered, err := a.Auth.Register(ctx, models.RegisterCredentials{
		Name:     "Sarah Johnson",
		Email:    "sarah@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	loggedIn, err := a.Auth.Login(ctx, models.LoginCredentials{
		Email:    "sarah@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Identity.ID, loggedIn.Identity.ID)
}

func TestRegisterDefaultsProfile(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()

	result, err := a.Auth.Register(ctx, models.RegisterCredentials{
		Name:     "Sarah Johnson",
		Email:    "sarah@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	user, err := st.GetUser(ctx, result.Identity.ID)
	require.NoError(t, err)
	assert.True(t, user.IsPublic)
	assert.Empty(t, user.Bio)
	assert.Empty(t, user.Availability)
	assert.Zero(t, user.RatingAvg)
}

func TestRegisterShortPasswordFails(t *testing.T) {
	a, _ := newTestAPI(t)

	_, err := a.Auth.Register(context.Background(), models.RegisterCredentials{
		Name:     "Sarah Johnson",
		Email:    "sarah@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	a, st := newTestAPI(t)
	seedUser(t, st, "Alex Chen", "alex@example.com", true)

	result, err := a.Auth.Login(context.Background(), models.LoginCredentials{
		Email:    "alex@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	identity, ok := a.Auth.ValidateToken(result.Token)
	require.True(t, ok)
	assert.Equal(t, result.Identity, identity)

	_, ok = a.Auth.ValidateToken("garbage")
	assert.False(t, ok)
}

func TestValidateTokenExpired(t *testing.T) {
	st := store.NewMemStore()
	a := New(st, auth.NewIssuer("", -time.Minute))
	seedUser(t, st, "Alex Chen", "alex@example.com", true)

	result, err := a.Auth.Login(context.Background(), models.LoginCredentials{
		Email:    "alex@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, ok := a.Auth.ValidateToken(result.Token)
	assert.False(t, ok)
}

func TestAdminFlagDerivedFromEmail(t *testing.T) {
	st := store.NewMemStore()
	a := New(st, auth.NewIssuer("", time.Hour), WithAdminEmail("admin@skillswap.com"))
	seedUser(t, st, "Admin", "admin@skillswap.com", false)
	seedUser(t, st, "Alex Chen", "alex@example.com", true)

	admin, err := a.Auth.Login(context.Background(), models.LoginCredentials{
		Email:    "admin@skillswap.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	assert.True(t, admin.Identity.IsAdmin)

	regular, err := a.Auth.Login(context.Background(), models.LoginCredentials{
		Email:    "alex@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	assert.False(t, regular.Identity.IsAdmin)
}
