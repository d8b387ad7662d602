package api

import (
	"context"
	"fmt"
	"time"

	"skillswap-backend/internal/models"
)

// MessagesAPI handles chat within a swap.
type MessagesAPI struct {
	*base
}

// GetBySwap returns the swap's messages in send order, each with the sender
// record resolved at read time.
func (a *MessagesAPI) GetBySwap(ctx context.Context, swapID int64) ([]models.Message, error) {
	if err := a.delay(ctx); err != nil {
		return nil, err
	}

	msgs, err := a.store.MessagesBySwap(ctx, swapID)
	if err != nil {
		return nil, fmt.Errorf("messages by swap: %w", err)
	}
	for i := range msgs {
		if u, err := a.store.GetUser(ctx, msgs[i].SenderID); err == nil {
			msgs[i].Sender = &u
		}
	}
	return msgs, nil
}

// Send appends a message to a swap, assigning the id and sent timestamp.
func (a *MessagesAPI) Send(ctx context.Context, msg models.Message) (models.Message, error) {
	if err := a.delay(ctx); err != nil {
		return models.Message{}, err
	}

	if msg.Body == "" {
		return models.Message{}, fmt.Errorf("%w: message body is required", ErrValidation)
	}

	msg.SentAt = time.Now()
	msg.Sender = nil
	return a.store.InsertMessage(ctx, msg)
}
