package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory KeyValue implementation used in tests and
// local development. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWrites makes Set/Remove return ErrUnavailable when true. Tests use
	// it to exercise the fail-soft persistence path.
	FailWrites bool
}

// Ensure MemoryStore implements the KeyValue interface.
var _ KeyValue = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements KeyValue.Get.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set implements KeyValue.Set.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return NewStoreError(key, "set", ErrUnavailable)
	}
	s.values[key] = value
	return nil
}

// Remove implements KeyValue.Remove.
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return NewStoreError(key, "remove", ErrUnavailable)
	}
	delete(s.values, key)
	return nil
}

// RemoveMany implements KeyValue.RemoveMany.
func (s *MemoryStore) RemoveMany(ctx context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return NewStoreError("", "remove_many", ErrUnavailable)
	}
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

// Len returns the number of stored keys. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
