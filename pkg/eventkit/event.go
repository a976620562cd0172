package eventkit

import (
	"time"

	"github.com/google/uuid"
)

// Event is a named notification carried from a publisher to its subscribers.
// Events are immutable once created - any modification creates a new event.
type Event struct {
	// ID uniquely identifies this event instance.
	ID string

	// Name is the event name subscribers register under
	// (e.g., "motion_detected", "message.sent").
	Name string

	// Source names the entity that published the event.
	Source string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Payload is the event data. May be nil.
	Payload any
}

// EventOption configures event creation.
type EventOption func(*Event)

// WithEventID sets a specific event ID (default: auto-generated UUID).
func WithEventID(id string) EventOption {
	return func(e *Event) {
		e.ID = id
	}
}

// WithTimestamp sets a specific timestamp (default: time.Now()).
func WithTimestamp(t time.Time) EventOption {
	return func(e *Event) {
		e.Timestamp = t
	}
}

// NewEvent creates an event with the given name, source, and payload.
func NewEvent(name, source string, payload any, opts ...EventOption) Event {
	evt := Event{
		ID:        uuid.New().String(),
		Name:      name,
		Source:    source,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	for _, opt := range opts {
		opt(&evt)
	}

	return evt
}
