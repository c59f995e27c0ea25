// Package postgres implements the durable store interfaces against a
// PostgreSQL database.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hifzapp/hifz-api/internal/store"
)

// KVStore implements the store.KeyValue interface using a PostgreSQL database
// as the storage backend. Values are opaque text blobs keyed by name.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a new PostgreSQL implementation of the KeyValue
// interface. It accepts a database connection that should be initialized and
// managed by the caller.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Ensure KVStore implements store.KeyValue interface
var _ store.KeyValue = (*KVStore)(nil)

// Get implements store.KeyValue.Get.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrKeyNotFound
		}
		return "", store.NewStoreError(key, "get", err)
	}
	return value, nil
}

// Set implements store.KeyValue.Set using an upsert.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		return store.NewStoreError(key, "set", err)
	}
	return nil
}

// Remove implements store.KeyValue.Remove. Removing an absent key is not an
// error.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_entries WHERE key = $1`, key)
	if err != nil {
		return store.NewStoreError(key, "remove", err)
	}
	return nil
}

// RemoveMany implements store.KeyValue.RemoveMany in a single transaction so
// a multi-key wipe is all-or-nothing.
func (s *KVStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return store.NewStoreError("", "remove_many", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
			return store.NewStoreError(key, "remove_many", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return store.NewStoreError("", "remove_many", fmt.Errorf("commit failed: %w", err))
	}
	return nil
}
