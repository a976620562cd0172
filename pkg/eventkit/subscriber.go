package eventkit

import (
	"context"
	"reflect"
)

// Subscriber receives events from a publisher.
//
// Registrations are matched by interface identity for Unsubscribe and for
// sender exclusion, so subscribers should be registered as pointers.
type Subscriber interface {
	// Update handles a delivered event. A returned error is collected by the
	// publisher after the fan-out completes; it never interrupts delivery to
	// other subscribers.
	Update(ctx context.Context, evt Event) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
//
// Func values have no stable identity: a SubscriberFunc registration cannot
// be removed with Unsubscribe and is never excluded as a sender. Use a
// pointer-typed Subscriber when identity matters.
type SubscriberFunc func(ctx context.Context, evt Event) error

// Update implements Subscriber.
func (f SubscriberFunc) Update(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// sameSubscriber reports whether two subscriber values carry the same
// registration identity. Values of uncomparable dynamic types (funcs,
// map- or slice-backed subscribers) are never identical.
func sameSubscriber(a, b Subscriber) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) {
		return a == nil && b == nil
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
