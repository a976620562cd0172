package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records eventkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordPublish records a completed fan-out: how many subscribers were
	// notified and how many of them failed.
	RecordPublish(ctx context.Context, event string, delivered, failures int)

	// RecordSnapshot records a snapshot capture with its serialized size.
	RecordSnapshot(ctx context.Context, sizeBytes int64)

	// RecordUndo records a restore operation. noop is true when the history
	// was empty and nothing was restored.
	RecordUndo(ctx context.Context, noop bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	publishes        metric.Int64Counter
	deliveries       metric.Int64Counter
	deliveryFailures metric.Int64Counter
	snapshotSize     metric.Int64Histogram
	undos            metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventkit")

	publishes, err := meter.Int64Counter("eventkit.publish.count",
		metric.WithDescription("Number of published events"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter("eventkit.publish.deliveries",
		metric.WithDescription("Number of subscriber notifications"),
	)
	if err != nil {
		return nil, err
	}

	deliveryFailures, err := meter.Int64Counter("eventkit.publish.failures",
		metric.WithDescription("Number of failed subscriber notifications"),
	)
	if err != nil {
		return nil, err
	}

	snapshotSize, err := meter.Int64Histogram("eventkit.snapshot.size_bytes",
		metric.WithDescription("Serialized snapshot size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	undos, err := meter.Int64Counter("eventkit.snapshot.undos",
		metric.WithDescription("Number of undo operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		publishes:        publishes,
		deliveries:       deliveries,
		deliveryFailures: deliveryFailures,
		snapshotSize:     snapshotSize,
		undos:            undos,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordPublish records a completed fan-out.
func (m *otelMetrics) RecordPublish(ctx context.Context, event string, delivered, failures int) {
	attrs := []attribute.KeyValue{
		attribute.String("event", event),
	}

	m.publishes.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.deliveries.Add(ctx, int64(delivered), metric.WithAttributes(attrs...))
	if failures > 0 {
		m.deliveryFailures.Add(ctx, int64(failures), metric.WithAttributes(attrs...))
	}
}

// RecordSnapshot records a snapshot capture.
func (m *otelMetrics) RecordSnapshot(ctx context.Context, sizeBytes int64) {
	m.snapshotSize.Record(ctx, sizeBytes)
}

// RecordUndo records a restore operation.
func (m *otelMetrics) RecordUndo(ctx context.Context, noop bool) {
	m.undos.Add(ctx, 1, metric.WithAttributes(attribute.Bool("noop", noop)))
}
