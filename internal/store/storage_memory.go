package store

import (
	"context"
	"sync"
)

// memorySessionStorage keeps markers in process memory. It is used for the
// "memory" DSN and in tests.
type memorySessionStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemorySessionStorage() SessionStorage {
	return &memorySessionStorage{entries: make(map[string]string)}
}

func (m *memorySessionStorage) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *memorySessionStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()

	return nil
}

func (m *memorySessionStorage) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}
