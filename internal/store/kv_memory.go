package store

import (
	"context"
	"sync"
)

// memoryTier lives only as long as the process. It backs the session tier.
type memoryTier struct {
	mu      sync.RWMutex
	entries map[string][]byte
	closed  bool
}

// NewMemoryTier returns an empty in-process KeyValueStore.
func NewMemoryTier() KeyValueStore {
	return &memoryTier{entries: make(map[string][]byte)}
}

func (m *memoryTier) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	v, ok := m.entries[key]
	if !ok {
		return nil, nil
	}

	return append([]byte{}, v...), nil
}

func (m *memoryTier) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.entries[key] = append([]byte{}, value...)

	return nil
}

func (m *memoryTier) SetMany(_ context.Context, entries map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	for k, v := range entries {
		m.entries[k] = append([]byte{}, v...)
	}

	return nil
}

func (m *memoryTier) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.entries, key)

	return nil
}

func (m *memoryTier) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	clear(m.entries)

	return nil
}

func (m *memoryTier) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil

	return nil
}
