package repository

import (
	"sync"

	"fundsim/internal/simulate"
)

// MemoryStore is an in-process ResultStore. It is the fallback when no
// Redis address is configured, and the test double everywhere else.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]*simulate.Result
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{store: make(map[string]*simulate.Result)}
}

func (m *MemoryStore) Save(id string, res *simulate.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[id] = res
	return nil
}

func (m *MemoryStore) Get(id string) (*simulate.Result, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.store[id]
	return res, ok
}
