package snapshot

// History stores snapshots in last-in-first-out order for one originator.
// Implementations must be safe for concurrent use.
//
// A History never inspects snapshot state; it only orders and stores.
type History interface {
	// Push appends a snapshot to the top of the history.
	Push(snap *Snapshot) error

	// Pop removes and returns the most recent snapshot.
	// Returns ErrHistoryEmpty if the history holds nothing.
	Pop() (*Snapshot, error)

	// Peek returns the most recent snapshot without removing it.
	// Returns ErrHistoryEmpty if the history holds nothing.
	Peek() (*Snapshot, error)

	// Len returns the number of stored snapshots.
	Len() (int, error)

	// Trim discards the oldest snapshots until at most max remain.
	// Trim(0) clears the history.
	Trim(max int) error

	// Close releases any resources (connections, files).
	Close() error
}
