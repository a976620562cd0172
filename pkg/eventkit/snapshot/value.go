package snapshot

import "encoding/json"

// Value is an originator holding a single value of type T.
//
// T must round-trip through encoding/json: exported fields only, no cycles.
// Serialization is what makes snapshots deep copies, so unexported fields of
// T are not captured.
type Value[T any] struct {
	state T
}

// NewValue creates an originator with the given initial state.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{state: initial}
}

// Get returns the current state. For pointer-free struct types this is a
// copy; map- and slice-valued fields still share backing storage with the
// originator, which is how callers mutate nested state in place.
func (v *Value[T]) Get() T {
	return v.state
}

// Set replaces the current state.
func (v *Value[T]) Set(state T) {
	v.state = state
}

// Update mutates the current state in place.
func (v *Value[T]) Update(fn func(*T)) {
	fn(&v.state)
}

// Save implements Originator.
func (v *Value[T]) Save() (*Snapshot, error) {
	data, err := json.Marshal(v.state)
	if err != nil {
		return nil, &SnapshotError{Op: "save", Err: err}
	}
	return newSnapshot(data), nil
}

// Restore implements Originator.
func (v *Value[T]) Restore(snap *Snapshot) error {
	if snap == nil {
		return &SnapshotError{Op: "restore", Err: ErrNilSnapshot}
	}
	var state T
	if err := json.Unmarshal(snap.state, &state); err != nil {
		return &SnapshotError{Op: "restore", Err: err}
	}
	v.state = state
	return nil
}
