package store

import (
	"sync"

	"skillswap-backend/internal/models"
)

// MemStore keeps the four entity sequences in memory. Ids are assigned from
// monotonic counters owned by the store, so deleting a record never makes an
// id eligible for reuse. All methods are mutex-guarded; the zero-value
// sequences mean a fresh store is empty until seeded.
type MemStore struct {
	mu sync.Mutex

	users    []models.User
	skills   []models.Skill
	swaps    []models.Swap
	messages []models.Message

	userSeq    int64
	skillSeq   int64
	swapSeq    int64
	messageSeq int64
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) nextUserID() int64 {
	s.userSeq++
	return s.userSeq
}

func (s *MemStore) nextSkillID() int64 {
	s.skillSeq++
	return s.skillSeq
}

func (s *MemStore) nextSwapID() int64 {
	s.swapSeq++
	return s.swapSeq
}

func (s *MemStore) nextMessageID() int64 {
	s.messageSeq++
	return s.messageSeq
}
