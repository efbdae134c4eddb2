package kv

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by a Backend when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Backend is a raw byte-oriented key-value store.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Memory is an in-process Backend. It is safe for concurrent use and is
// primarily intended for tests and throwaway sessions.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), value...)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
