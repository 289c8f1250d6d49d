package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps everything in process memory. Used in tests and for
// single-instance deployments that do not need values to survive restarts.
type MemoryBackend struct {
	mu     sync.RWMutex
	scopes map[string]map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{scopes: make(map[string]map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, scope, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.scopes[scope][key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryBackend) Set(_ context.Context, scope, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.scopes[scope]
	if !ok {
		entries = make(map[string][]byte)
		m.scopes[scope] = entries
	}
	v := make([]byte, len(value))
	copy(v, value)
	entries[key] = v
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entries, ok := m.scopes[scope]; ok {
		delete(entries, key)
		if len(entries) == 0 {
			delete(m.scopes, scope)
		}
	}
	return nil
}
