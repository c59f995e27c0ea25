// Package events provides an explicit observer mechanism for state-change
// notifications. Callers register handlers on an Emitter; handlers fire
// synchronously in registration order after the in-memory mutation that
// produced the event.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of state change an event describes.
type EventType string

// Event types emitted by the services.
const (
	EventProgressUpdated  EventType = "progress.updated"
	EventSessionCompleted EventType = "session.completed"
	EventQuizCompleted    EventType = "quiz.completed"
	EventStatsUpdated     EventType = "stats.updated"
)

// Event is a state-change notification with a JSON payload.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       EventType       `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent creates an event of the given type, marshaling the payload to JSON.
func NewEvent(eventType EventType, payload interface{}) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return &Event{
		ID:         uuid.New(),
		Type:       eventType,
		Payload:    data,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// UnmarshalPayload decodes the event payload into the given value.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}
