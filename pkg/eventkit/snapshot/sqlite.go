package snapshot

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteHistory persists the snapshot stack to SQLite, so undo history
// survives process restarts. It is suitable for single-process use.
type SQLiteHistory struct {
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

// NewSQLiteHistory creates a SQLite-backed history.
// The path should be a file path (e.g., "./history.db") or ":memory:" for testing.
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at TEXT NOT NULL,
			state BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// Push implements History.
func (s *SQLiteHistory) Push(snap *Snapshot) error {
	if snap == nil {
		return &SnapshotError{Op: "push", Err: ErrNilSnapshot}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrHistoryClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO snapshots (taken_at, state) VALUES (?, ?)
	`, snap.takenAt.Format(time.RFC3339Nano), []byte(snap.state))
	if err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	return nil
}

// Pop implements History.
func (s *SQLiteHistory) Pop() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrHistoryClosed
	}

	snap, id, err := s.newest()
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("pop snapshot: %w", err)
	}
	return snap, nil
}

// Peek implements History.
func (s *SQLiteHistory) Peek() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrHistoryClosed
	}

	snap, _, err := s.newest()
	return snap, err
}

// newest loads the top-of-stack row. Callers must hold the mutex.
func (s *SQLiteHistory) newest() (*Snapshot, int64, error) {
	var (
		id      int64
		takenAt string
		state   []byte
	)
	err := s.db.QueryRow(`
		SELECT id, taken_at, state FROM snapshots
		ORDER BY id DESC LIMIT 1
	`).Scan(&id, &takenAt, &state)

	if err == sql.ErrNoRows {
		return nil, 0, ErrHistoryEmpty
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load snapshot: %w", err)
	}

	snap := &Snapshot{state: state}
	snap.takenAt, _ = time.Parse(time.RFC3339Nano, takenAt)
	return snap, id, nil
}

// Len implements History.
func (s *SQLiteHistory) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrHistoryClosed
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return count, nil
}

// Trim implements History.
func (s *SQLiteHistory) Trim(max int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrHistoryClosed
	}
	if max < 0 {
		max = 0
	}

	_, err := s.db.Exec(`
		DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY id DESC LIMIT ?
		)
	`, max)
	if err != nil {
		return fmt.Errorf("trim snapshots: %w", err)
	}
	return nil
}

// Close implements History.
func (s *SQLiteHistory) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
