// Package observability provides structured logging, metrics, and tracing
// helpers for eventkit.
//
// Logging uses slog (Go stdlib). Metrics and tracing use OpenTelemetry and
// have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds publisher context to a logger.
// Returns a new logger with the publisher field attached.
func EnrichLogger(logger *slog.Logger, publisher string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("publisher", publisher))
}

// LogSubscribe logs a new registration.
func LogSubscribe(logger *slog.Logger, publisher, event string, count int) {
	if logger == nil {
		return
	}
	logger.Debug("subscriber registered",
		slog.String("publisher", publisher),
		slog.String("event", event),
		slog.Int("registrations", count),
	)
}

// LogUnsubscribe logs a removal attempt. Removing an absent subscriber is
// not an error; removed records whether a registration matched.
func LogUnsubscribe(logger *slog.Logger, publisher, event string, removed bool) {
	if logger == nil {
		return
	}
	logger.Debug("subscriber removed",
		slog.String("publisher", publisher),
		slog.String("event", event),
		slog.Bool("removed", removed),
	)
}

// LogPublish logs a completed fan-out.
func LogPublish(logger *slog.Logger, publisher, event string, delivered, failures int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("event published",
		slog.String("publisher", publisher),
		slog.String("event", event),
		slog.Int("delivered", delivered),
		slog.Int("failures", failures),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogDeliveryError logs a single subscriber failure (non-fatal to the fan-out).
func LogDeliveryError(logger *slog.Logger, publisher, event string, position int, err error) {
	if logger == nil {
		return
	}
	logger.Warn("subscriber failed",
		slog.String("publisher", publisher),
		slog.String("event", event),
		slog.Int("position", position),
		slog.String("error", err.Error()),
	)
}

// LogBackup logs a snapshot being pushed onto the history.
func LogBackup(logger *slog.Logger, sizeBytes int, depth int) {
	if logger == nil {
		return
	}
	logger.Info("snapshot saved",
		slog.Int("size_bytes", sizeBytes),
		slog.Int("depth", depth),
	)
}

// LogUndo logs a snapshot being restored.
func LogUndo(logger *slog.Logger, takenAt time.Time, depth int) {
	if logger == nil {
		return
	}
	logger.Info("snapshot restored",
		slog.Time("taken_at", takenAt),
		slog.Int("depth", depth),
	)
}

// LogUndoEmpty logs an undo attempt with no history (a reported no-op).
func LogUndoEmpty(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Info("nothing to undo")
}

// LogRollback logs an automatic rollback after a failed transaction.
func LogRollback(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Warn("transaction rolled back",
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
