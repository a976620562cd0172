package eventkit

import (
	"log/slog"

	"github.com/randalmurphal/eventkit/pkg/eventkit/config"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger used for subscription and delivery events.
// A nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: no-op.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(p *Publisher) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithSpans sets the trace span manager. Default: no-op.
func WithSpans(s observability.SpanManager) Option {
	return func(p *Publisher) {
		if s != nil {
			p.spans = s
		}
	}
}

// FromConfig derives publisher options from a config map.
//
// Recognized keys:
//   - metrics (bool): enable OpenTelemetry metrics. Default: false
//   - tracing (bool): enable OpenTelemetry tracing. Default: false
func FromConfig(cfg config.Config) []Option {
	var opts []Option
	if cfg.Bool("metrics", false) {
		opts = append(opts, WithMetrics(observability.NewMetricsRecorder()))
	}
	if cfg.Bool("tracing", false) {
		opts = append(opts, WithSpans(observability.NewSpanManager()))
	}
	return opts
}
