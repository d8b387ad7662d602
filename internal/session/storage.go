package session

import "sync"

// TokenStorage is where the session token is persisted between restarts.
// The browser original uses per-tab session storage; MemStorage is the
// in-process stand-in.
type TokenStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemStorage is a mutex-guarded map implementing TokenStorage.
type MemStorage struct {
	mu    sync.Mutex
	items map[string]string
}

// NewMemStorage creates an empty storage.
func NewMemStorage() *MemStorage {
	return &MemStorage{items: make(map[string]string)}
}

func (m *MemStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *MemStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

func (m *MemStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}
