package eventkit

import "fmt"

// SubscriberError wraps a single subscriber's failure during a fan-out.
// Publish collects one per failing subscriber and joins them after every
// subscriber has been notified.
type SubscriberError struct {
	// Event is the event whose delivery failed.
	Event Event
	// Position is the registration index the failing subscriber held in the
	// notification order for the event name.
	Position int
	// Err is the error returned by the subscriber's Update.
	Err error
}

// Error implements the error interface.
func (e *SubscriberError) Error() string {
	return fmt.Sprintf("event %s: subscriber %d: %v", e.Event.Name, e.Position, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SubscriberError) Unwrap() error {
	return e.Err
}
