package encoderinbox

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

const meterName = "lingo-services-media.encoder_inbox"

type metrics struct {
	success metric.Int64Counter
	failure metric.Int64Counter
	lag     metric.Float64Histogram
	enabled bool
}

func newMetrics() *metrics {
	meterProvider := otel.GetMeterProvider()
	if meterProvider == nil {
		meterProvider = noopmetric.NewMeterProvider()
	}
	meter := meterProvider.Meter(meterName)

	success, err := meter.Int64Counter("encoder_inbox_success_total", metric.WithDescription("Number of encoder callbacks applied"))
	if err != nil {
		return &metrics{}
	}
	failure, err := meter.Int64Counter("encoder_inbox_failure_total", metric.WithDescription("Number of encoder callbacks rejected or failed"))
	if err != nil {
		return &metrics{}
	}
	lag, err := meter.Float64Histogram("encoder_inbox_event_lag_ms", metric.WithDescription("Lag between callback occurred_at and processing time"), metric.WithUnit("ms"))
	if err != nil {
		return &metrics{}
	}
	return &metrics{success: success, failure: failure, lag: lag, enabled: true}
}

func (m *metrics) recordSuccess(ctx context.Context, status string, occurredAt, now time.Time) {
	if m == nil || !m.enabled {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.success.Add(ctx, 1, attrs)
	if !occurredAt.IsZero() && !now.IsZero() {
		lag := now.Sub(occurredAt).Milliseconds()
		if lag < 0 {
			lag = 0
		}
		m.lag.Record(ctx, float64(lag), attrs)
	}
}

func (m *metrics) recordFailure(ctx context.Context, status, result string) {
	if m == nil || !m.enabled {
		return
	}
	m.failure.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
		attribute.String("result", result),
	))
}
