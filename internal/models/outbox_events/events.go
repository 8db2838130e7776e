package outboxevents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind 标识领域事件类型。
type Kind int

// 领域事件类型常量。
const (
	// KindUnknown 表示未识别的事件类型。
	KindUnknown Kind = iota
	// KindMediaCreated 表示视频/预告片写入了新的原始媒体。
	KindMediaCreated
)

func (k Kind) String() string {
	switch k {
	case KindMediaCreated:
		return "catalog.video.media_created"
	default:
		return "catalog.event.unknown"
	}
}

// DomainEvent 表示待写入 Outbox 的标准事件。
type DomainEvent struct {
	EventID       uuid.UUID
	Kind          Kind
	AggregateID   uuid.UUID
	AggregateType string
	Version       int64
	OccurredAt    time.Time
	Payload       any
}

// MediaCreated 描述媒体写入事件载荷，供转码流水线消费。
type MediaCreated struct {
	ResourceID string `json:"resource_id"`
	FilePath   string `json:"file_path"`
	MediaType  string `json:"media_type"`
}

const (
	// AggregateTypeVideo 标识视频聚合类型。
	AggregateTypeVideo = "video"
	// SchemaVersionV1 描述事件载荷的当前 schema 版本。
	SchemaVersionV1 = "v1"
)

var (
	// ErrInvalidEventID 表示未提供合法的事件 ID。
	ErrInvalidEventID = fmt.Errorf("event builder: event id is required")
	// ErrUnknownEventKind 表示未识别的事件类型。
	ErrUnknownEventKind = fmt.Errorf("event builder: unknown event kind")
	// ErrInvalidAggregateID 表示聚合 ID 不是合法 UUID。
	ErrInvalidAggregateID = fmt.Errorf("event builder: invalid aggregate id")
)
