package store

import (
	"context"
	"fmt"
	"strings"

	"skillswap-backend/internal/models"
)

// InsertUser appends a user, assigning the next id.
func (s *MemStore) InsertUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID()
	s.users = append(s.users, user)
	return user, nil
}

// GetUser retrieves a user by id.
func (s *MemStore) GetUser(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// GetUserByEmail retrieves a user by exact email match.
func (s *MemStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", email, ErrNotFound)
}

// UpdateUser replaces the stored record with the same id.
func (s *MemStore) UpdateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user
			return nil
		}
	}
	return fmt.Errorf("user %d: %w", user.ID, ErrNotFound)
}

// ListUsers returns all users in insertion order.
func (s *MemStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
