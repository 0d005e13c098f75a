package kv

import (
	"context"
	"sync"
)

// MemoryRepository keeps entries in a map. Fail* fields inject errors.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string]string

	FailGet    error
	FailSet    error
	FailDelete error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]string)}
}

var _ Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return "", false, m.FailGet
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryRepository) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	m.entries[key] = value
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDelete != nil {
		return m.FailDelete
	}
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

// Len returns the number of stored entries.
func (m *MemoryRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
