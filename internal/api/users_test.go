package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap-backend/internal/models"
	"skillswap-backend/internal/store"
)

func seedSkill(t *testing.T, st *store.MemStore, userID int64, name string, kind models.SkillKind) {
	t.Helper()
	_, err := st.InsertSkill(context.Background(), models.Skill{UserID: userID, Name: name, Kind: kind})
	require.NoError(t, err)
}

func TestSearchEmptyQueryReturnsOnlyPublicUsers(t *testing.T) {
	a, st := newTestAPI(t)
	public := seedUser(t, st, "Alex Chen", "alex@example.com", true)
	seedUser(t, st, "Emma Wilson", "emma@example.com", false)

	users, err := a.Users.Search(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, public.ID, users[0].ID)

	// Even a query that matches the hidden user's name must not reveal them.
	users, err = a.Users.Search(context.Background(), "emma", 0)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSearchMatchesSkillNameCaseInsensitively(t *testing.T) {
	a, st := newTestAPI(t)
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)
	seedUser(t, st, "Sarah Johnson", "sarah@example.com", true)
	seedSkill(t, st, alex.ID, "Guitar", models.SkillOffered)

	users, err := a.Users.Search(context.Background(), "guitar", 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, alex.ID, users[0].ID)

	users, err = a.Users.Search(context.Background(), "piano", 0)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSearchMatchesDisplayName(t *testing.T) {
	a, st := newTestAPI(t)
	sarah := seedUser(t, st, "Sarah Johnson", "sarah@example.com", true)
	seedUser(t, st, "Alex Chen", "alex@example.com", true)

	users, err := a.Users.Search(context.Background(), "JOHNSON", 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, sarah.ID, users[0].ID)
}

func TestSearchPagination(t *testing.T) {
	a, st := newTestAPI(t)
	for i := 0; i < SearchPageSize+5; i++ {
		seedUser(t, st, fmt.Sprintf("User %02d", i), fmt.Sprintf("user%02d@example.com", i), true)
	}

	first, err := a.Users.Search(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, first, SearchPageSize)

	second, err := a.Users.Search(context.Background(), "", SearchPageSize)
	require.NoError(t, err)
	assert.Len(t, second, 5)

	beyond, err := a.Users.Search(context.Background(), "", 1000)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestGetProfile(t *testing.T) {
	a, st := newTestAPI(t)
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)

	user, err := a.Users.GetProfile(context.Background(), alex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", user.Name)

	_, err = a.Users.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	a, st := newTestAPI(t)
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)

	bio := "Full-stack developer"
	hidden := false
	updated, err := a.Users.UpdateProfile(context.Background(), alex.ID, models.UserUpdate{
		Bio:      &bio,
		IsPublic: &hidden,
	})
	require.NoError(t, err)
	assert.Equal(t, "Full-stack developer", updated.Bio)
	assert.False(t, updated.IsPublic)
	assert.Equal(t, "Alex Chen", updated.Name, "unset fields stay untouched")
	assert.Equal(t, "alex@example.com", updated.Email)

	_, err = a.Users.UpdateProfile(context.Background(), 99, models.UserUpdate{Bio: &bio})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
