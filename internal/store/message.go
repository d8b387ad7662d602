package store

import (
	"context"

	"skillswap-backend/internal/models"
)

// InsertMessage appends a message, assigning the next id.
func (s *MemStore) InsertMessage(_ context.Context, msg models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.nextMessageID()
	s.messages = append(s.messages, msg)
	return msg, nil
}

// MessagesBySwap returns the swap's messages in insertion order.
func (s *MemStore) MessagesBySwap(_ context.Context, swapID int64) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.SwapID == swapID {
			out = append(out, m)
		}
	}
	return out, nil
}
