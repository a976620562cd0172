package snapshot

import (
	"errors"
	"fmt"
)

// Sentinel errors for history operations.
var (
	// ErrHistoryEmpty indicates Pop or Peek was called on an empty history.
	ErrHistoryEmpty = errors.New("history is empty")

	// ErrHistoryClosed indicates the history has been closed.
	ErrHistoryClosed = errors.New("history closed")

	// ErrNilSnapshot indicates Push or Restore was called with a nil snapshot.
	ErrNilSnapshot = errors.New("snapshot is nil")
)

// SnapshotError wraps errors from save and restore operations.
type SnapshotError struct {
	// Op is the operation that failed ("save", "restore", "push", "pop").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// TransactionError wraps the failure that aborted a guarded transaction.
// The originator's state has already been rolled back to the transaction's
// entry snapshot when this error is returned.
type TransactionError struct {
	// Err is the error returned by the transaction body.
	Err error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction rolled back: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *TransactionError) Unwrap() error {
	return e.Err
}
