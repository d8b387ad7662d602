package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap-backend/internal/models"
	"skillswap-backend/internal/store"
)

func TestCreateSwapAssignsIDAndTimestamp(t *testing.T) {
	a, st := newTestAPI(t)
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)
	sarah := seedUser(t, st, "Sarah Johnson", "sarah@example.com", true)

	created, err := a.Swaps.Create(context.Background(), models.Swap{
		RequesterID: alex.ID,
		TargetID:    sarah.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.SwapPending, created.Status)
	assert.False(t, created.RequestedAt.IsZero())
	assert.Nil(t, created.AcceptedAt)
}

func TestCreateSwapWithSelfFails(t *testing.T) {
	a, st := newTestAPI(t)
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)

	_, err := a.Swaps.Create(context.Background(), models.Swap{
		RequesterID: alex.ID,
		TargetID:    alex.ID,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetByUserResolvesBothSides(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)
	sarah := seedUser(t, st, "Sarah Johnson", "sarah@example.com", true)

	_, err := a.Swaps.Create(ctx, models.Swap{RequesterID: alex.ID, TargetID: sarah.ID})
	require.NoError(t, err)

	forAlex, err := a.Swaps.GetByUser(ctx, alex.ID)
	require.NoError(t, err)
	require.Len(t, forAlex, 1)
	require.NotNil(t, forAlex[0].Target)
	assert.Equal(t, "Sarah Johnson", forAlex[0].Target.Name)

	forSarah, err := a.Swaps.GetByUser(ctx, sarah.ID)
	require.NoError(t, err)
	require.Len(t, forSarah, 1)
	require.NotNil(t, forSarah[0].Requester)
	assert.Equal(t, "Alex Chen", forSarah[0].Requester.Name)
}

func TestUpdateStatusSetsAcceptedAtOnce(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)
	sarah := seedUser(t, st, "Sarah Johnson", "sarah@example.com", true)

	created, err := a.Swaps.Create(ctx, models.Swap{RequesterID: alex.ID, TargetID: sarah.ID})
	require.NoError(t, err)

	active, err := a.Swaps.UpdateStatus(ctx, created.ID, models.SwapActive)
	require.NoError(t, err)
	require.NotNil(t, active.AcceptedAt)
	acceptedAt := *active.AcceptedAt

	past, err := a.Swaps.UpdateStatus(ctx, created.ID, models.SwapPast)
	require.NoError(t, err)
	require.NotNil(t, past.AcceptedAt, "a later transition must not clear the accepted timestamp")
	assert.Equal(t, acceptedAt, *past.AcceptedAt)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	a, st := newTestAPI(t)
	ctx := context.Background()
	alex := seedUser(t, st, "Alex Chen", "alex@example.com", true)
	sarah := seedUser(t, st, "Sarah Johnson", "sarah@example.com", true)

	created, err := a.Swaps.Create(ctx, models.Swap{RequesterID: alex.ID, TargetID: sarah.ID})
	require.NoError(t, err)

	// PENDING cannot jump straight to PAST.
	_, err = a.Swaps.UpdateStatus(ctx, created.ID, models.SwapPast)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = a.Swaps.UpdateStatus(ctx, created.ID, models.SwapActive)
	require.NoError(t, err)
	_, err = a.Swaps.UpdateStatus(ctx, created.ID, models.SwapPast)
	require.NoError(t, err)

	// PAST is terminal.
	_, err = a.Swaps.UpdateStatus(ctx, created.ID, models.SwapPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Re-asserting the current status is a no-op, not an error.
	same, err := a.Swaps.UpdateStatus(ctx, created.ID, models.SwapPast)
	require.NoError(t, err)
	assert.Equal(t, models.SwapPast, same.Status)
}

func TestUpdateStatusUnknownSwap(t *testing.T) {
	a, _ := newTestAPI(t)

	_, err := a.Swaps.UpdateStatus(context.Background(), 99, models.SwapActive)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteSwapAbsentIsNoOp(t *testing.T) {
	a, _ := newTestAPI(t)

	assert.NoError(t, a.Swaps.Delete(context.Background(), 99))
}
