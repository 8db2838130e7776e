// Package encoderinbox 消费转码流水线的状态回调，经 Inbox 去重后在同一事务内迁移媒体状态。
package encoderinbox

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Event 描述转码流水线发布的媒体状态回调。
// VideoID 缺省时由处理器回退到消息属性中的 aggregate_id。
type Event struct {
	Status             string    `json:"status" validate:"required"`
	ResourceID         string    `json:"id" validate:"required"`
	VideoID            string    `json:"video_id"`
	EncodedVideoFolder string    `json:"encoded_video_folder" validate:"required_if=Status COMPLETED"`
	FileName           string    `json:"file_name" validate:"required_if=Status COMPLETED"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// eventDecoder 实现 inbox.Decoder，解析 JSON 载荷并做结构校验。
type eventDecoder struct {
	validate *validator.Validate
	clock    func() time.Time
}

func newEventDecoder() *eventDecoder {
	return &eventDecoder{validate: validator.New(), clock: time.Now}
}

// Decode 将原始消息解码为 Event。
func (d *eventDecoder) Decode(data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("encoder inbox: empty payload")
	}
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("encoder inbox: decode payload: %w", err)
	}
	d.normalize(&evt)
	if err := d.validate.Struct(&evt); err != nil {
		return nil, fmt.Errorf("encoder inbox: invalid payload: %w", err)
	}
	return &evt, nil
}

func (d *eventDecoder) normalize(evt *Event) {
	evt.Status = strings.ToUpper(strings.TrimSpace(evt.Status))
	evt.ResourceID = strings.TrimSpace(evt.ResourceID)
	evt.VideoID = strings.TrimSpace(evt.VideoID)
	evt.EncodedVideoFolder = strings.Trim(strings.TrimSpace(evt.EncodedVideoFolder), "/")
	evt.FileName = strings.TrimSpace(evt.FileName)
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = d.clock().UTC()
	} else {
		evt.OccurredAt = evt.OccurredAt.UTC()
	}
}
