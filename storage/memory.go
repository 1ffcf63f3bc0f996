package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps values in process memory. Used for development and tests;
// values are lost on restart.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, namespace, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[namespace][key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.values[namespace]
	if !ok {
		ns = make(map[string]string)
		m.values[namespace] = ns
	}
	ns[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.values[namespace]
	if !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(m.values, namespace)
	}
	return nil
}

func (m *MemoryBackend) Ping(context.Context) error { return nil }
