/*
Package eventkit provides synchronous event coordination and state snapshots.

# Overview

eventkit is a Go library with two small, related subsystems:

  - Publisher: a publish-subscribe coordinator that fans out named events to
    subscribers synchronously, in registration order, with optional sender
    exclusion for mediator-style broadcasts.
  - snapshot (subpackage): a memento caretaker that captures immutable,
    timestamped deep copies of a mutable value and restores them in LIFO
    order, including scoped transactions with automatic rollback.

Both subsystems run entirely on the caller's goroutine. There is no
buffering, no retry, and no background delivery: when Publish returns, every
subscriber has been notified.

# Publish/Subscribe

Subscribers register under an event name and are notified in the order they
subscribed:

	bus := eventkit.NewPublisher("motion-sensor")
	bus.Subscribe("motion_detected", light)
	bus.Subscribe("motion_detected", camera)

	err := bus.Publish(ctx, eventkit.NewEvent("motion_detected", "sensor", "Motion detected"))

Double-subscribing is not deduplicated: a subscriber registered twice is
notified twice. Unsubscribing an unknown subscriber is a silent no-op.

A failing subscriber never stops the fan-out. All failures are collected and
returned joined after delivery completes:

	if err := bus.Publish(ctx, evt); err != nil {
	    var subErr *eventkit.SubscriberError
	    if errors.As(err, &subErr) {
	        // inspect individual delivery failures
	    }
	}

# Mediator Broadcasts

PublishFrom excludes the sender from its own broadcast. Room packages this up
for the chat-room case:

	room := eventkit.NewRoom("lobby")
	room.Join(alice)
	room.Join(bob)
	room.Say(ctx, alice, "Hello, everyone!") // bob hears it, alice does not

# Observability

Publishers accept an optional slog logger, an OpenTelemetry metrics recorder,
and a span manager:

	bus := eventkit.NewPublisher("orders",
	    eventkit.WithLogger(slog.Default()),
	    eventkit.WithMetrics(observability.NewMetricsRecorder()),
	    eventkit.WithSpans(observability.NewSpanManager()),
	)

All three default to disabled / no-op.

# Snapshots and Undo

See the snapshot subpackage for state capture, LIFO undo, persistent undo
history, and transactional rollback.
*/
package eventkit
