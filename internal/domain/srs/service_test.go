package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifzapp/hifz-api/internal/domain"
)

func TestNextReviewDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := NewDefaultService()

	tests := []struct {
		name         string
		lastStudied  time.Time
		wantInterval time.Duration
	}{
		{
			name:         "studied today uses daily interval",
			lastStudied:  now.Add(-2 * time.Hour),
			wantInterval: 24 * time.Hour,
		},
		{
			name:         "studied two days ago still daily",
			lastStudied:  now.Add(-2 * 24 * time.Hour),
			wantInterval: 24 * time.Hour,
		},
		{
			name:         "three day gap promotes to medium interval",
			lastStudied:  now.Add(-3 * 24 * time.Hour),
			wantInterval: 3 * 24 * time.Hour,
		},
		{
			name:         "six day gap stays on medium interval",
			lastStudied:  now.Add(-6*24*time.Hour - time.Hour),
			wantInterval: 3 * 24 * time.Hour,
		},
		{
			name:         "week-long gap promotes to long interval",
			lastStudied:  now.Add(-8 * 24 * time.Hour),
			wantInterval: 7 * 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := domain.NewProgressRecord(1)
			require.NoError(t, err)
			record.Mark(1)
			record.LastStudied = tt.lastStudied

			next, ok, err := svc.NextReviewDate(record, now)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.lastStudied.Add(tt.wantInterval), next)
		})
	}
}

func TestNextReviewDateNoMemorizedVerses(t *testing.T) {
	record, err := domain.NewProgressRecord(1)
	require.NoError(t, err)

	_, ok, err := NewDefaultService().NextReviewDate(record, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok, "a record with no memorized verses has no review date")
}

func TestNextReviewDateNilRecord(t *testing.T) {
	_, _, err := NewDefaultService().NextReviewDate(nil, time.Now().UTC())
	assert.ErrorIs(t, err, ErrNilRecord)
}
