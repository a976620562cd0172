package eventkit_test

import (
	"context"
	"testing"

	"github.com/randalmurphal/eventkit/pkg/eventkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomBroadcastExcludesSender(t *testing.T) {
	room := eventkit.NewRoom("lobby")

	alice := &recorder{name: "alice"}
	bob := &recorder{name: "bob"}
	charlie := &recorder{name: "charlie"}

	room.Join(alice)
	room.Join(bob)
	room.Join(charlie)
	assert.Equal(t, 3, room.Members())

	require.NoError(t, room.Say(context.Background(), alice, "Hello, everyone!"))

	assert.Empty(t, alice.received)
	require.Len(t, bob.received, 1)
	require.Len(t, charlie.received, 1)
	assert.Equal(t, "Hello, everyone!", bob.received[0].Payload)
	assert.Equal(t, "lobby", bob.received[0].Source)
}

func TestRoomLeave(t *testing.T) {
	room := eventkit.NewRoom("lobby")

	alice := &recorder{name: "alice"}
	bob := &recorder{name: "bob"}
	room.Join(alice)
	room.Join(bob)

	room.Leave(bob)
	assert.Equal(t, 1, room.Members())

	require.NoError(t, room.Say(context.Background(), alice, "Bob left the chat"))
	assert.Empty(t, bob.received)
}

func TestRoomLeaveNonMemberIsNoop(t *testing.T) {
	room := eventkit.NewRoom("lobby")

	alice := &recorder{name: "alice"}
	stranger := &recorder{name: "stranger"}
	room.Join(alice)

	room.Leave(stranger)
	assert.Equal(t, 1, room.Members())
}

func TestRoomNonMemberCanSpeak(t *testing.T) {
	room := eventkit.NewRoom("lobby")

	alice := &recorder{name: "alice"}
	announcer := &recorder{name: "announcer"}
	room.Join(alice)

	require.NoError(t, room.Say(context.Background(), announcer, "server restarting"))
	require.Len(t, alice.received, 1)
	assert.Equal(t, "server restarting", alice.received[0].Payload)
}
