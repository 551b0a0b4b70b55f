package storage

import (
	"context"
	"sync"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

// Memory is a process-local KeyValue, used by tests and as the fallback
// when no persistent backend could be opened.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ types.KeyValue = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
