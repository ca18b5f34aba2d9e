package store

import (
	"context"
	"sync"
)

// Memory is a non-durable Store for tests and throwaway environments.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	hub    *hub
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
		hub:    newHub(),
	}
}

func (m *Memory) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Write(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.values[key] = stored
	m.mu.Unlock()

	m.hub.broadcast(key)
	return nil
}

func (m *Memory) Subscribe(ctx context.Context) <-chan string {
	return m.hub.subscribe(ctx)
}

func (m *Memory) Close() {}
