package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitterFiresHandlersInRegistrationOrder(t *testing.T) {
	emitter := NewEmitter(nil)

	var order []string
	emitter.RegisterHandler(HandlerFunc(func(ctx context.Context, e *Event) error {
		order = append(order, "first")
		return nil
	}))
	emitter.RegisterHandler(HandlerFunc(func(ctx context.Context, e *Event) error {
		order = append(order, "second")
		return nil
	}))

	event, err := NewEvent(EventStatsUpdated, map[string]int{"current_streak": 2})
	require.NoError(t, err)

	require.NoError(t, emitter.Emit(context.Background(), event))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEmitterContinuesAfterHandlerError(t *testing.T) {
	emitter := NewEmitter(nil)
	boom := errors.New("boom")

	var secondRan bool
	emitter.RegisterHandler(HandlerFunc(func(ctx context.Context, e *Event) error {
		return boom
	}))
	emitter.RegisterHandler(HandlerFunc(func(ctx context.Context, e *Event) error {
		secondRan = true
		return nil
	}))

	event, err := NewEvent(EventProgressUpdated, nil)
	require.NoError(t, err)

	err = emitter.Emit(context.Background(), event)
	assert.ErrorIs(t, err, boom)
	assert.True(t, secondRan, "later handlers must still fire after an error")
}

func TestEventPayloadRoundTrip(t *testing.T) {
	type payload struct {
		ChapterID   int `json:"chapter_id"`
		VerseNumber int `json:"verse_number"`
	}

	event, err := NewEvent(EventProgressUpdated, payload{ChapterID: 1, VerseNumber: 3})
	require.NoError(t, err)

	var got payload
	require.NoError(t, event.UnmarshalPayload(&got))
	assert.Equal(t, payload{ChapterID: 1, VerseNumber: 3}, got)
}
