package eventkit

import (
	"context"
	"errors"
	"sync"

	"log/slog"

	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// Publisher fans out named events to registered subscribers.
//
// Delivery is synchronous and runs on the caller's goroutine: Publish returns
// only after every subscriber has been notified. Subscribers are notified in
// registration order. Registering the same subscriber twice under one event
// name delivers the event twice; Subscribe does not deduplicate.
//
// The internal mutex guards only the subscription table. It is never held
// while subscriber callbacks run, so callbacks may freely subscribe,
// unsubscribe, or publish.
type Publisher struct {
	name string

	mu   sync.Mutex
	subs map[string][]Subscriber

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// NewPublisher creates a publisher with the given name.
func NewPublisher(name string, opts ...Option) *Publisher {
	p := &Publisher{
		name:    name,
		subs:    make(map[string][]Subscriber),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the publisher's name.
func (p *Publisher) Name() string {
	return p.name
}

// Subscribe registers sub for events with the given name.
//
// Registration order is notification order. Duplicate registrations are kept
// and each receives its own notification.
func (p *Publisher) Subscribe(event string, sub Subscriber) {
	p.mu.Lock()
	p.subs[event] = append(p.subs[event], sub)
	count := len(p.subs[event])
	p.mu.Unlock()

	observability.LogSubscribe(p.logger, p.name, event, count)
}

// Unsubscribe removes one registration of sub for the given event name.
//
// Removing a subscriber that was never registered, or an unknown event name,
// is a silent no-op. When the same subscriber is registered more than once,
// only the earliest registration is removed.
func (p *Publisher) Unsubscribe(event string, sub Subscriber) {
	p.mu.Lock()
	regs, ok := p.subs[event]
	removed := false
	if ok {
		for i, s := range regs {
			if sameSubscriber(s, sub) {
				p.subs[event] = append(regs[:i:i], regs[i+1:]...)
				removed = true
				break
			}
		}
		if len(p.subs[event]) == 0 {
			delete(p.subs, event)
		}
	}
	p.mu.Unlock()

	observability.LogUnsubscribe(p.logger, p.name, event, removed)
}

// Subscribers returns the number of registrations for an event name.
func (p *Publisher) Subscribers(event string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs[event])
}

// Publish delivers evt to every subscriber registered for evt.Name, in
// registration order, on the calling goroutine.
//
// Publishing an event with no subscribers is a no-op and returns nil. A
// failing subscriber never aborts the fan-out: remaining subscribers are
// still notified, and the failures are returned joined together after
// delivery completes. Each failure is a *SubscriberError.
func (p *Publisher) Publish(ctx context.Context, evt Event) error {
	return p.fanout(ctx, nil, evt)
}

// PublishFrom delivers evt like Publish, but skips every registration whose
// subscriber is sender. This is the mediator broadcast mode: the sender of a
// message never receives it back.
func (p *Publisher) PublishFrom(ctx context.Context, sender Subscriber, evt Event) error {
	return p.fanout(ctx, sender, evt)
}

func (p *Publisher) fanout(ctx context.Context, sender Subscriber, evt Event) error {
	// Copy the registration list so the lock is not held across callbacks.
	p.mu.Lock()
	regs := p.subs[evt.Name]
	targets := make([]Subscriber, len(regs))
	copy(targets, regs)
	p.mu.Unlock()

	ctx, span := p.spans.StartPublishSpan(ctx, p.name, evt.Name)
	done := observability.TimedOperation()

	var errs []error
	delivered := 0
	for i, sub := range targets {
		if sender != nil && sameSubscriber(sub, sender) {
			continue
		}

		if err := sub.Update(ctx, evt); err != nil {
			observability.LogDeliveryError(p.logger, p.name, evt.Name, i, err)
			errs = append(errs, &SubscriberError{Event: evt, Position: i, Err: err})
		}
		delivered++
	}

	err := errors.Join(errs...)
	p.metrics.RecordPublish(ctx, evt.Name, delivered, len(errs))
	p.spans.EndSpanWithError(span, err)
	observability.LogPublish(p.logger, p.name, evt.Name, delivered, len(errs), done())

	return err
}
