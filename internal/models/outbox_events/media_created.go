package outboxevents

import (
	"encoding/json"
	"fmt"

	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/google/uuid"
)

// FromVideoEvent 将聚合产生的领域事件转换为 Outbox 事件。
func FromVideoEvent(evt video.DomainEvent, eventID uuid.UUID) (*DomainEvent, error) {
	if eventID == uuid.Nil {
		return nil, ErrInvalidEventID
	}
	switch e := evt.(type) {
	case video.MediaCreated:
		aggregateID, err := uuid.Parse(e.AggregateID.String())
		if err != nil {
			return nil, ErrInvalidAggregateID
		}
		occurredAt := e.OccurredAt.UTC()
		return &DomainEvent{
			EventID:       eventID,
			Kind:          KindMediaCreated,
			AggregateID:   aggregateID,
			AggregateType: AggregateTypeVideo,
			Version:       VersionFromTime(occurredAt),
			OccurredAt:    occurredAt,
			Payload: &MediaCreated{
				ResourceID: e.AggregateID.String(),
				FilePath:   e.FilePath,
				MediaType:  string(e.MediaType),
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEventKind, evt)
	}
}

// EncodePayload 将事件载荷编码为 JSON。
func EncodePayload(event *DomainEvent) ([]byte, error) {
	if event == nil || event.Payload == nil {
		return nil, ErrUnknownEventKind
	}
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", event.Kind, err)
	}
	return payload, nil
}
