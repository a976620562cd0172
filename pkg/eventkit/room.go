package eventkit

import "context"

// MessageEvent is the event name a Room broadcasts under.
const MessageEvent = "message"

// Room is a chat-room style mediator: every member hears every message
// except its own.
//
// Room is a thin layer over Publisher that fixes the event name and always
// broadcasts with sender exclusion.
type Room struct {
	bus *Publisher
}

// NewRoom creates a room with the given name.
func NewRoom(name string, opts ...Option) *Room {
	return &Room{bus: NewPublisher(name, opts...)}
}

// Name returns the room's name.
func (r *Room) Name() string {
	return r.bus.Name()
}

// Join adds a member to the room.
func (r *Room) Join(member Subscriber) {
	r.bus.Subscribe(MessageEvent, member)
}

// Leave removes a member from the room. Leaving a room the member never
// joined is a no-op.
func (r *Room) Leave(member Subscriber) {
	r.bus.Unsubscribe(MessageEvent, member)
}

// Members returns the number of members in the room.
func (r *Room) Members() int {
	return r.bus.Subscribers(MessageEvent)
}

// Say broadcasts a message to every member except the sender. The sender
// does not need to be a member to speak.
func (r *Room) Say(ctx context.Context, sender Subscriber, message string) error {
	return r.bus.PublishFrom(ctx, sender, NewEvent(MessageEvent, r.bus.Name(), message))
}
