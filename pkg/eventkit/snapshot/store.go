package snapshot

import (
	"encoding/json"
	"log/slog"
	"sort"
)

// Store is a string-keyed key-value originator, the transactional-database
// shape: wrap it in a Caretaker and guard mutations with Transact.
//
// Values must round-trip through encoding/json. Note that JSON restore
// rehydrates numbers as float64.
type Store struct {
	data   map[string]any
	logger *slog.Logger
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]any)}
}

// WithLogger sets the logger for state changes and returns the store.
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	s.logger = logger
	return s
}

// Set stores a key-value pair.
func (s *Store) Set(key string, value any) {
	if s.logger != nil {
		s.logger.Debug("store set", slog.String("key", key), slog.Any("value", value))
	}
	s.data[key] = value
}

// Get returns the value for key and whether it exists.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	delete(s.data, key)
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.data)
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save implements Originator.
func (s *Store) Save() (*Snapshot, error) {
	data, err := json.Marshal(s.data)
	if err != nil {
		return nil, &SnapshotError{Op: "save", Err: err}
	}
	return newSnapshot(data), nil
}

// Restore implements Originator.
func (s *Store) Restore(snap *Snapshot) error {
	if snap == nil {
		return &SnapshotError{Op: "restore", Err: ErrNilSnapshot}
	}
	data := make(map[string]any)
	if err := json.Unmarshal(snap.state, &data); err != nil {
		return &SnapshotError{Op: "restore", Err: err}
	}
	s.data = data
	return nil
}
