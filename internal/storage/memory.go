package storage

import (
	"errors"
	"sync"
)

// ErrWriteFailed is returned by Memory.Set when FailWrites is set.
var ErrWriteFailed = errors.New("storage write failed")

// Memory is an in-process Local, used in tests and when no file is wanted.
type Memory struct {
	mu     sync.Mutex
	values map[string]string

	// FailWrites makes every Set return ErrWriteFailed without storing.
	FailWrites bool
}

var _ Local = (*Memory)(nil)

// NewMemory returns a Memory seeded with initial.
func NewMemory(initial map[string]string) *Memory {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Memory{values: values}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
