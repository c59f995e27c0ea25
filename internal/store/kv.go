// Package store defines the durable key-value persistence interface and the
// keys used by the application. Values are JSON-serialized blobs; the backing
// store is responsible for the atomicity of a single key write.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Common store errors.
var (
	// ErrKeyNotFound is returned when the requested key has no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnavailable is returned when the backing store rejects an operation,
	// for example because the connection is down. Callers treat this as a
	// durability failure and keep serving from in-memory state.
	ErrUnavailable = errors.New("store unavailable")
)

// Keys under which the application persists its state.
const (
	KeyMemorizationProgress = "memorization_progress"
	KeyMemorizationStats    = "memorization_stats"
	KeyMemorizationSessions = "memorization_sessions"
	KeyQuizResults          = "quiz_results"
	KeyQuizStats            = "quiz_stats"
	KeyLastDailyVerseDate   = "last_daily_verse_date"
	KeyDailyVerse           = "daily_verse"
	KeyBookmarks            = "bookmarks"
	KeyHighlights           = "highlights"
	KeyUsers                = "users"
)

// KeyValue is the durable store collaborator. Implementations must make a
// single Set call atomic; no cross-key transactional guarantees are provided
// or required.
type KeyValue interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key has no value.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes the values stored under all given keys.
	RemoveMany(ctx context.Context, keys []string) error
}

// StoreError adds key and operation context to a store failure.
type StoreError struct {
	Key       string
	Operation string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on key %q failed: %v", e.Operation, e.Key, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(key, operation string, err error) *StoreError {
	return &StoreError{Key: key, Operation: operation, Err: err}
}
