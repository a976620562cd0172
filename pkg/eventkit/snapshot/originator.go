package snapshot

// Originator is any value whose state can be captured and restored.
//
// Save produces a deep, independent copy of the current state; mutating the
// originator afterwards never changes the returned snapshot. Restore replaces
// the current state with a defensive copy out of the snapshot; the snapshot
// may be restored from again.
type Originator interface {
	Save() (*Snapshot, error)
	Restore(snap *Snapshot) error
}
