package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, KeyQuizStats)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, KeyQuizStats, `{"best_score":3}`))

	value, err := s.Get(ctx, KeyQuizStats)
	require.NoError(t, err)
	assert.Equal(t, `{"best_score":3}`, value)

	require.NoError(t, s.Remove(ctx, KeyQuizStats))
	_, err = s.Get(ctx, KeyQuizStats)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreRemoveAbsentKey(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Remove(context.Background(), "missing"))
}

func TestMemoryStoreRemoveMany(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, KeyQuizResults, "[]"))
	require.NoError(t, s.Set(ctx, KeyQuizStats, "{}"))
	require.NoError(t, s.Set(ctx, KeyBookmarks, "[1]"))

	require.NoError(t, s.RemoveMany(ctx, []string{KeyQuizResults, KeyQuizStats}))

	assert.Equal(t, 1, s.Len())
	_, err := s.Get(ctx, KeyBookmarks)
	assert.NoError(t, err)
}

func TestMemoryStoreFailWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.FailWrites = true

	err := s.Set(ctx, KeyBookmarks, "[]")
	assert.ErrorIs(t, err, ErrUnavailable)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "set", storeErr.Operation)
}
