package store

import (
	"context"
	"fmt"

	"skillswap-backend/internal/models"
)

// InsertSwap appends a swap, assigning the next id.
func (s *MemStore) InsertSwap(_ context.Context, swap models.Swap) (models.Swap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap.ID = s.nextSwapID()
	s.swaps = append(s.swaps, swap)
	return swap, nil
}

// GetSwap retrieves a swap by id.
func (s *MemStore) GetSwap(_ context.Context, id int64) (models.Swap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sw := range s.swaps {
		if sw.ID == id {
			return sw, nil
		}
	}
	return models.Swap{}, fmt.Errorf("swap %d: %w", id, ErrNotFound)
}

// SwapsByUser returns swaps where the user is requester or target, in
// insertion order.
func (s *MemStore) SwapsByUser(_ context.Context, userID int64) ([]models.Swap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Swap
	for _, sw := range s.swaps {
		if sw.RequesterID == userID || sw.TargetID == userID {
			out = append(out, sw)
		}
	}
	return out, nil
}

// UpdateSwap replaces the stored record with the same id.
func (s *MemStore) UpdateSwap(_ context.Context, swap models.Swap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.swaps {
		if s.swaps[i].ID == swap.ID {
			s.swaps[i] = swap
			return nil
		}
	}
	return fmt.Errorf("swap %d: %w", swap.ID, ErrNotFound)
}

// DeleteSwap removes a swap by id. Deleting an absent id is a no-op.
// Messages referencing the swap are not cascaded.
func (s *MemStore) DeleteSwap(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sw := range s.swaps {
		if sw.ID == id {
			s.swaps = append(s.swaps[:i], s.swaps[i+1:]...)
			return nil
		}
	}
	return nil
}
