package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

var (
	outboxMetricsMu      sync.Mutex
	outboxMetricsEnabled bool
	outboxSuccessCounter metric.Int64Counter
	outboxFailureCounter metric.Int64Counter
	outboxLagHistogram   metric.Float64Histogram
	statusUpdateCounter  metric.Int64Counter
)

const (
	meterName               = "lingo-services-media.services"
	outboxSuccessMetricName = "media_outbox_enqueue_total"
	outboxFailureMetricName = "media_outbox_enqueue_failures_total"
	outboxLagMetricName     = "media_outbox_enqueue_lag_ms"
	statusUpdateMetricName  = "media_status_updates_total"
)

var (
	attrComponent = attribute.Key("component")
	attrEventType = attribute.Key("event_type")
	attrErrorKind = attribute.Key("error_kind")
	attrStatus    = attribute.Key("status")
	attrMediaType = attribute.Key("media_type")
	attrOutcome   = attribute.Key("outcome")
)

type serviceMetrics struct {
	component string
}

func newServiceMetrics(component string) *serviceMetrics {
	outboxMetricsMu.Lock()
	defer outboxMetricsMu.Unlock()
	if !outboxMetricsEnabled {
		initOutboxMetricsLocked()
	}
	if !outboxMetricsEnabled {
		return &serviceMetrics{}
	}
	return &serviceMetrics{component: component}
}

func initOutboxMetricsLocked() {
	provider := otel.GetMeterProvider()
	if provider == nil {
		provider = noopmetric.NewMeterProvider()
	}
	meter := provider.Meter(meterName)

	var err error
	outboxSuccessCounter, err = meter.Int64Counter(outboxSuccessMetricName,
		metric.WithDescription("Number of video domain events enqueued to the outbox"))
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	outboxFailureCounter, err = meter.Int64Counter(outboxFailureMetricName,
		metric.WithDescription("Number of outbox enqueue attempts that failed"))
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	outboxLagHistogram, err = meter.Float64Histogram(outboxLagMetricName,
		metric.WithDescription("Lag between event occurrence time and enqueue time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	statusUpdateCounter, err = meter.Int64Counter(statusUpdateMetricName,
		metric.WithDescription("Encoder status callbacks applied to video media slots, by outcome"))
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	outboxMetricsEnabled = true
}

func (m *serviceMetrics) recordSuccess(ctx context.Context, eventType string, occurredAt time.Time) {
	if m == nil || !outboxMetricsEnabled || outboxSuccessCounter == nil {
		return
	}
	attrs := metric.WithAttributes(
		attrComponent.String(m.component),
		attrEventType.String(eventType),
	)
	outboxSuccessCounter.Add(ctx, 1, attrs)
	if occurredAt.IsZero() || outboxLagHistogram == nil {
		return
	}
	lag := time.Since(occurredAt).Milliseconds()
	if lag < 0 {
		lag = 0
	}
	outboxLagHistogram.Record(ctx, float64(lag), attrs)
}

func (m *serviceMetrics) recordFailure(ctx context.Context, eventType string, err error) {
	if m == nil || !outboxMetricsEnabled || outboxFailureCounter == nil {
		return
	}
	errKind := "unknown"
	if err != nil {
		errKind = fmt.Sprintf("%T", err)
	}
	outboxFailureCounter.Add(ctx, 1, metric.WithAttributes(
		attrComponent.String(m.component),
		attrEventType.String(eventType),
		attrErrorKind.String(errKind),
	))
}

// recordStatusUpdate 记录一次状态回调的处理结果：applied/ignored/rejected。
func (m *serviceMetrics) recordStatusUpdate(ctx context.Context, status, mediaType, outcome string) {
	if m == nil || !outboxMetricsEnabled || statusUpdateCounter == nil {
		return
	}
	statusUpdateCounter.Add(ctx, 1, metric.WithAttributes(
		attrComponent.String(m.component),
		attrStatus.String(status),
		attrMediaType.String(mediaType),
		attrOutcome.String(outcome),
	))
}
