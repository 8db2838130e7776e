package video

import (
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
)

// EventTypeMediaCreated 是音视频媒体写入后触发的事件名。
const EventTypeMediaCreated = "catalog.video.media_created"

// MediaCreated 表示视频或预告片槽位写入了新的原始媒体，等待转码。
type MediaCreated struct {
	AggregateID ID
	FilePath    string
	MediaType   media.Type
	OccurredAt  time.Time
}

// EventType 实现 DomainEvent。
func (e MediaCreated) EventType() string {
	return EventTypeMediaCreated
}

// OccurredOn 实现 DomainEvent。
func (e MediaCreated) OccurredOn() time.Time {
	return e.OccurredAt
}
