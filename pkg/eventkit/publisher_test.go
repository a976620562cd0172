package eventkit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/randalmurphal/eventkit/pkg/eventkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a subscriber that records every delivery.
type recorder struct {
	name     string
	received []eventkit.Event
	err      error
	log      *[]string // shared delivery-order log, optional
}

func (r *recorder) Update(_ context.Context, evt eventkit.Event) error {
	r.received = append(r.received, evt)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	return r.err
}

func TestPublishOrderPreservation(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	var order []string
	s1 := &recorder{name: "s1", log: &order}
	s2 := &recorder{name: "s2", log: &order}
	s3 := &recorder{name: "s3", log: &order}

	bus.Subscribe("tick", s1)
	bus.Subscribe("tick", s2)
	bus.Subscribe("tick", s3)

	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", 1)))
	assert.Equal(t, []string{"s1", "s2", "s3"}, order)

	// A second publish walks the same order again.
	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", 2)))
	assert.Equal(t, []string{"s1", "s2", "s3", "s1", "s2", "s3"}, order)
}

func TestPublishNoSubscribersIsNoop(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	err := bus.Publish(context.Background(), eventkit.NewEvent("nobody-home", "test", nil))
	assert.NoError(t, err)
}

func TestSubscribeDoesNotDeduplicate(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	sub := &recorder{name: "dup"}
	bus.Subscribe("tick", sub)
	bus.Subscribe("tick", sub)

	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil)))

	// Registered twice, notified twice.
	assert.Len(t, sub.received, 2)
	assert.Equal(t, 2, bus.Subscribers("tick"))
}

func TestUnsubscribeRemovesOneRegistration(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	sub := &recorder{name: "dup"}
	bus.Subscribe("tick", sub)
	bus.Subscribe("tick", sub)

	bus.Unsubscribe("tick", sub)
	assert.Equal(t, 1, bus.Subscribers("tick"))

	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil)))
	assert.Len(t, sub.received, 1)
}

func TestUnsubscribeUnknownIsNoop(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	known := &recorder{name: "known"}
	stranger := &recorder{name: "stranger"}
	bus.Subscribe("tick", known)

	// Never-subscribed entity and unknown event name are both tolerated.
	bus.Unsubscribe("tick", stranger)
	bus.Unsubscribe("no-such-event", known)

	assert.Equal(t, 1, bus.Subscribers("tick"))
	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil)))
	assert.Len(t, known.received, 1)
}

func TestUnsubscribeFuncAdapterDoesNotPanic(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	fn := eventkit.SubscriberFunc(func(_ context.Context, _ eventkit.Event) error { return nil })
	bus.Subscribe("tick", fn)

	// Func values have no identity; this must be a silent no-op, not a panic.
	assert.NotPanics(t, func() {
		bus.Unsubscribe("tick", fn)
	})
	assert.Equal(t, 1, bus.Subscribers("tick"))
}

func TestPublishFailureIsolation(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	boom := errors.New("boom")
	s1 := &recorder{name: "s1"}
	s2 := &recorder{name: "s2", err: boom}
	s3 := &recorder{name: "s3"}

	bus.Subscribe("tick", s1)
	bus.Subscribe("tick", s2)
	bus.Subscribe("tick", s3)

	err := bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil))
	require.Error(t, err)

	// Every subscriber was still notified, failure included.
	assert.Len(t, s1.received, 1)
	assert.Len(t, s2.received, 1)
	assert.Len(t, s3.received, 1)

	// The error surfaces the failing subscriber and unwraps to the cause.
	var subErr *eventkit.SubscriberError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, 1, subErr.Position)
	assert.ErrorIs(t, err, boom)
}

func TestPublishJoinsMultipleFailures(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	err1 := errors.New("first")
	err2 := errors.New("second")
	bus.Subscribe("tick", &recorder{name: "a", err: err1})
	bus.Subscribe("tick", &recorder{name: "b", err: err2})

	err := bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil))
	assert.ErrorIs(t, err, err1)
	assert.ErrorIs(t, err, err2)
}

func TestPublishFromExcludesSender(t *testing.T) {
	bus := eventkit.NewPublisher("market")

	var order []string
	sender := &recorder{name: "sender", log: &order}
	peer1 := &recorder{name: "peer1", log: &order}
	peer2 := &recorder{name: "peer2", log: &order}

	bus.Subscribe("trade", peer1)
	bus.Subscribe("trade", sender)
	bus.Subscribe("trade", peer2)

	evt := eventkit.NewEvent("trade", "market", "USD")
	require.NoError(t, bus.PublishFrom(context.Background(), sender, evt))

	assert.Empty(t, sender.received)
	assert.Equal(t, []string{"peer1", "peer2"}, order)
}

func TestSubscribeDuringFanoutDoesNotDeadlock(t *testing.T) {
	bus := eventkit.NewPublisher("test")

	late := &recorder{name: "late"}
	bus.Subscribe("tick", eventkit.SubscriberFunc(func(_ context.Context, _ eventkit.Event) error {
		bus.Subscribe("tick", late)
		return nil
	}))

	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil)))

	// The late registration missed the in-flight fan-out but catches the next.
	assert.Empty(t, late.received)
	require.NoError(t, bus.Publish(context.Background(), eventkit.NewEvent("tick", "clock", nil)))
	assert.Len(t, late.received, 1)
}

// TestSmartHomeScenario wires a motion sensor to a light and a camera, the
// home-automation shape: one event, two ordered deliveries with the payload.
func TestSmartHomeScenario(t *testing.T) {
	sensor := eventkit.NewPublisher("motion-sensor")

	var order []string
	light := &recorder{name: "light", log: &order}
	camera := &recorder{name: "camera", log: &order}

	sensor.Subscribe("motion_detected", light)
	sensor.Subscribe("motion_detected", camera)

	evt := eventkit.NewEvent("motion_detected", "motion-sensor", "Motion detected")
	require.NoError(t, sensor.Publish(context.Background(), evt))

	assert.Equal(t, []string{"light", "camera"}, order)

	require.Len(t, light.received, 1)
	assert.Equal(t, "motion_detected", light.received[0].Name)
	assert.Equal(t, "Motion detected", light.received[0].Payload)

	require.Len(t, camera.received, 1)
	assert.Equal(t, "motion_detected", camera.received[0].Name)
	assert.Equal(t, "Motion detected", camera.received[0].Payload)
}
