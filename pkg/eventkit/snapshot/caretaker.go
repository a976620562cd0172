package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/eventkit/pkg/eventkit/config"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// Caretaker owns the undo history for exactly one originator.
//
// It never inspects snapshot contents: snapshots go in on Backup and come
// back out, newest first, on Undo. The history starts empty and a Caretaker
// with an exhausted history treats Undo as a reported no-op, never an error.
type Caretaker struct {
	origin  Originator
	history History

	name     string
	maxDepth int
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

// CaretakerOption configures a Caretaker.
type CaretakerOption func(*Caretaker)

// WithHistory sets the snapshot history backend.
// Default: an unbounded MemoryHistory.
func WithHistory(h History) CaretakerOption {
	return func(c *Caretaker) {
		if h != nil {
			c.history = h
		}
	}
}

// WithMaxDepth bounds the history to the newest n snapshots; older entries
// are discarded as new backups arrive. Zero (the default) means unbounded.
func WithMaxDepth(n int) CaretakerOption {
	return func(c *Caretaker) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithName sets the name used in trace spans for Transact.
// Default: "transaction".
func WithName(name string) CaretakerOption {
	return func(c *Caretaker) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger for backup, undo, and rollback events.
// A nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) CaretakerOption {
	return func(c *Caretaker) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: no-op.
func WithMetrics(m observability.MetricsRecorder) CaretakerOption {
	return func(c *Caretaker) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans sets the trace span manager. Default: no-op.
func WithSpans(s observability.SpanManager) CaretakerOption {
	return func(c *Caretaker) {
		if s != nil {
			c.spans = s
		}
	}
}

// NewCaretaker creates a caretaker for the given originator.
func NewCaretaker(origin Originator, opts ...CaretakerOption) *Caretaker {
	c := &Caretaker{
		origin:  origin,
		history: NewMemoryHistory(),
		name:    "transaction",
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Backup captures the originator's current state and pushes it onto the
// history.
func (c *Caretaker) Backup(ctx context.Context) error {
	snap, err := c.origin.Save()
	if err != nil {
		return err
	}

	if err := c.history.Push(snap); err != nil {
		return err
	}
	if c.maxDepth > 0 {
		if err := c.history.Trim(c.maxDepth); err != nil {
			return err
		}
	}

	c.metrics.RecordSnapshot(ctx, int64(snap.Size()))
	observability.LogBackup(c.logger, snap.Size(), c.Depth())
	return nil
}

// Undo pops the most recent snapshot and restores it into the originator.
//
// Each call reverts to the state at the time of the previous Backup; repeated
// calls walk further back until the history is exhausted. Undo on an empty
// history returns (false, nil) and leaves the originator unchanged.
func (c *Caretaker) Undo(ctx context.Context) (bool, error) {
	snap, err := c.history.Pop()
	if errors.Is(err, ErrHistoryEmpty) {
		c.metrics.RecordUndo(ctx, true)
		observability.LogUndoEmpty(c.logger)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := c.origin.Restore(snap); err != nil {
		return false, err
	}

	c.metrics.RecordUndo(ctx, false)
	observability.LogUndo(c.logger, snap.TakenAt(), c.Depth())
	return true, nil
}

// Depth returns the number of snapshots in the history, or 0 if the history
// cannot report its length.
func (c *Caretaker) Depth() int {
	n, err := c.history.Len()
	if err != nil {
		return 0
	}
	return n
}

// Close closes the underlying history.
func (c *Caretaker) Close() error {
	return c.history.Close()
}

// Transact runs fn under a state guard: the originator's state is backed up
// on entry, and if fn returns an error the state is rolled back to that
// backup before the failure is re-surfaced as a *TransactionError wrapping
// fn's error.
//
// On success the entry snapshot stays in the history, so a completed
// transaction is itself undoable.
func (c *Caretaker) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := c.spans.StartTransactSpan(ctx, c.name)

	if err := c.Backup(ctx); err != nil {
		c.spans.EndSpanWithError(span, err)
		return err
	}

	err := fn(ctx)
	if err == nil {
		c.spans.EndSpanWithError(span, nil)
		return nil
	}

	observability.LogRollback(c.logger, err)
	txErr := error(&TransactionError{Err: err})
	if _, undoErr := c.Undo(ctx); undoErr != nil {
		// State could not be restored. Surface both failures.
		txErr = errors.Join(txErr, fmt.Errorf("rollback failed: %w", undoErr))
	}

	c.spans.EndSpanWithError(span, txErr)
	return txErr
}

// HistoryFromConfig builds a History from a config section.
//
// Recognized keys:
//   - backend (string): "memory" or "sqlite". Default: "memory"
//   - path (string): database path for the sqlite backend.
//     Default: ":memory:"
func HistoryFromConfig(cfg config.Config) (History, error) {
	backend := cfg.String("backend", "memory")
	switch backend {
	case "memory":
		return NewMemoryHistory(), nil
	case "sqlite":
		return NewSQLiteHistory(cfg.String("path", ":memory:"))
	default:
		return nil, fmt.Errorf("unknown history backend: %q", backend)
	}
}
