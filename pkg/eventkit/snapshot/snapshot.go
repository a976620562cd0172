package snapshot

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is an immutable, timestamped deep copy of an originator's state.
//
// The state is held in serialized form (JSON), so a snapshot can never alias
// the live state it was taken from: mutating the originator after Save, or
// after Restore, leaves the snapshot untouched.
//
// Snapshots are created only by originators; callers never construct one.
type Snapshot struct {
	takenAt time.Time
	state   json.RawMessage
}

// newSnapshot wraps already-serialized state. The caller must not retain data.
func newSnapshot(state []byte) *Snapshot {
	return &Snapshot{
		takenAt: time.Now().UTC(),
		state:   state,
	}
}

// TakenAt returns the capture timestamp.
func (s *Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// Size returns the serialized state size in bytes.
func (s *Snapshot) Size() int {
	return len(s.state)
}

// State returns a copy of the serialized state.
func (s *Snapshot) State() json.RawMessage {
	out := make(json.RawMessage, len(s.state))
	copy(out, s.state)
	return out
}

// String implements fmt.Stringer.
func (s *Snapshot) String() string {
	return fmt.Sprintf("[snapshot @ %s] %d bytes", s.takenAt.Format(time.RFC3339Nano), len(s.state))
}
