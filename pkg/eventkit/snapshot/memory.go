package snapshot

import "sync"

// MemoryHistory is an in-memory snapshot history.
// Contents are lost when the process exits.
type MemoryHistory struct {
	mu     sync.Mutex
	stack  []*Snapshot
	closed bool
}

// NewMemoryHistory creates an empty in-memory history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// Push implements History.
func (m *MemoryHistory) Push(snap *Snapshot) error {
	if snap == nil {
		return &SnapshotError{Op: "push", Err: ErrNilSnapshot}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrHistoryClosed
	}

	m.stack = append(m.stack, snap)
	return nil
}

// Pop implements History.
func (m *MemoryHistory) Pop() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrHistoryClosed
	}
	if len(m.stack) == 0 {
		return nil, ErrHistoryEmpty
	}

	snap := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return snap, nil
}

// Peek implements History.
func (m *MemoryHistory) Peek() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrHistoryClosed
	}
	if len(m.stack) == 0 {
		return nil, ErrHistoryEmpty
	}

	return m.stack[len(m.stack)-1], nil
}

// Len implements History.
func (m *MemoryHistory) Len() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrHistoryClosed
	}
	return len(m.stack), nil
}

// Trim implements History.
func (m *MemoryHistory) Trim(max int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrHistoryClosed
	}
	if max < 0 {
		max = 0
	}
	if len(m.stack) > max {
		// Keep the newest max entries.
		kept := make([]*Snapshot, max)
		copy(kept, m.stack[len(m.stack)-max:])
		m.stack = kept
	}
	return nil
}

// Close implements History.
func (m *MemoryHistory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.stack = nil
	return nil
}
