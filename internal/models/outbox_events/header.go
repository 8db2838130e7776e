// Package outboxevents 负责把视频聚合产生的领域事件转换为 Outbox 消息：
// 事件包装、JSON 载荷编码，以及 Pub/Sub 所需的 message attributes。
package outboxevents

import (
	"context"
	"strconv"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/metadata"

	"go.opentelemetry.io/otel/trace"
)

// ContentTypeJSON 为事件载荷的编码格式。
const ContentTypeJSON = "application/json"

// FormatEventType 返回事件在 Outbox 与 Pub/Sub 上的类型名。
func FormatEventType(kind Kind) string {
	return kind.String()
}

// Attributes 生成随消息投递的 attributes。
// media_type 供转码流水线按订阅过滤；请求上下文中的 trace 与幂等键会一并透传。
func Attributes(ctx context.Context, event *DomainEvent) map[string]string {
	attrs := map[string]string{
		"event_id":       event.EventID.String(),
		"event_type":     FormatEventType(event.Kind),
		"aggregate_id":   event.AggregateID.String(),
		"aggregate_type": event.AggregateType,
		"version":        strconv.FormatInt(event.Version, 10),
		"occurred_at":    event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"schema_version": SchemaVersionV1,
		"content_type":   ContentTypeJSON,
	}
	if p, ok := event.Payload.(MediaCreated); ok && p.MediaType != "" {
		attrs["media_type"] = p.MediaType
	}
	if ctx == nil {
		return attrs
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() && spanCtx.HasTraceID() {
		attrs["trace_id"] = spanCtx.TraceID().String()
	}
	if meta, ok := metadata.FromContext(ctx); ok && meta.IdempotencyKey != "" {
		attrs["idempotency_key"] = meta.IdempotencyKey
	}
	return attrs
}

// VersionFromTime 以 UTC 微秒作为聚合版本号。
func VersionFromTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMicro()
}
