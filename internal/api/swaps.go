package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/models"
)

// SwapsAPI handles the swap lifecycle between two users.
type SwapsAPI struct {
	*base
}

// transitions is the legal swap state machine. A transition to the current
// status is always accepted as a no-op.
var transitions = map[models.SwapStatus][]models.SwapStatus{
	models.SwapPending:  {models.SwapActive, models.SwapCanceled},
	models.SwapActive:   {models.SwapPast, models.SwapCanceled},
	models.SwapCanceled: {},
	models.SwapPast:     {},
}

func transitionAllowed(from, to models.SwapStatus) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// GetByUser returns swaps where the user is requester or target, each
// decorated with the resolved requester and target records. Resolution
// happens at read time; a dangling user reference leaves the field nil.
func (a *SwapsAPI) GetByUser(ctx context.Context, userID int64) ([]models.Swap, error) {
	if err := a.delay(ctx); err != nil {
		return nil, err
	}

	swaps, err := a.store.SwapsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("swaps by user: %w", err)
	}
	for i := range swaps {
		if u, err := a.store.GetUser(ctx, swaps[i].RequesterID); err == nil {
			swaps[i].Requester = &u
		}
		if u, err := a.store.GetUser(ctx, swaps[i].TargetID); err == nil {
			swaps[i].Target = &u
		}
	}
	return swaps, nil
}

// Get returns a single swap without user resolution. The transport layer
// uses it for membership checks.
func (a *SwapsAPI) Get(ctx context.Context, id int64) (models.Swap, error) {
	if err := a.delay(ctx); err != nil {
		return models.Swap{}, err
	}
	return a.store.GetSwap(ctx, id)
}

// Create records a new swap request. The id and requested timestamp are
// assigned here; an empty status defaults to PENDING.
func (a *SwapsAPI) Create(ctx context.Context, swap models.Swap) (models.Swap, error) {
	if err := a.delay(ctx); err != nil {
		return models.Swap{}, err
	}

	if swap.Status == "" {
		swap.Status = models.SwapPending
	}
	if !swap.Status.Valid() {
		return models.Swap{}, fmt.Errorf("%w: unknown swap status %q", ErrValidation, swap.Status)
	}
	if swap.RequesterID == swap.TargetID {
		return models.Swap{}, fmt.Errorf("%w: cannot request a swap with yourself", ErrValidation)
	}

	swap.RequestedAt = time.Now()
	swap.Requester, swap.Target = nil, nil

	created, err := a.store.InsertSwap(ctx, swap)
	if err != nil {
		return models.Swap{}, fmt.Errorf("create swap: %w", err)
	}

	log.Debug().
		Int64("swap_id", created.ID).
		Int64("requester_id", created.RequesterID).
		Int64("target_id", created.TargetID).
		Msg("Swap created")
	return created, nil
}

// UpdateStatus moves a swap through its lifecycle. The first transition to
// ACTIVE stamps the accepted timestamp; later transitions never clear it.
func (a *SwapsAPI) UpdateStatus(ctx context.Context, id int64, status models.SwapStatus) (models.Swap, error) {
	if err := a.delay(ctx); err != nil {
		return models.Swap{}, err
	}

	swap, err := a.store.GetSwap(ctx, id)
	if err != nil {
		return models.Swap{}, err
	}

	if !status.Valid() {
		return models.Swap{}, fmt.Errorf("%w: unknown swap status %q", ErrValidation, status)
	}
	if !transitionAllowed(swap.Status, status) {
		return models.Swap{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, swap.Status, status)
	}

	swap.Status = status
	if status == models.SwapActive && swap.AcceptedAt == nil {
		now := time.Now()
		swap.AcceptedAt = &now
	}

	if err := a.store.UpdateSwap(ctx, swap); err != nil {
		return models.Swap{}, fmt.Errorf("update swap: %w", err)
	}

	log.Debug().Int64("swap_id", id).Str("status", string(status)).Msg("Swap status updated")
	return swap, nil
}

// Delete removes a swap. Deleting an absent id is a silent no-op; the
// swap's messages are left behind.
func (a *SwapsAPI) Delete(ctx context.Context, id int64) error {
	if err := a.delay(ctx); err != nil {
		return err
	}
	return a.store.DeleteSwap(ctx, id)
}
