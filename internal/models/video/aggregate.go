package video

import "time"

// DomainEvent 是聚合在内存中产生、由持久化层排空的领域事件。
type DomainEvent interface {
	EventType() string
	OccurredOn() time.Time
}

// AggregateRoot 提供聚合共享的标识与事件缓冲能力，供具体聚合内嵌组合。
type AggregateRoot[K comparable] struct {
	id     K
	events []DomainEvent
}

// NewAggregateRoot 以给定标识构造聚合根能力。
func NewAggregateRoot[K comparable](id K) AggregateRoot[K] {
	return AggregateRoot[K]{id: id}
}

// ID 返回聚合标识。
func (a *AggregateRoot[K]) ID() K {
	return a.id
}

// EqualID 按标识判断两个聚合是否相同。
func (a *AggregateRoot[K]) EqualID(other K) bool {
	return a.id == other
}

// RegisterEvent 追加一条待发布事件。
func (a *AggregateRoot[K]) RegisterEvent(evt DomainEvent) {
	if evt == nil {
		return
	}
	a.events = append(a.events, evt)
}

// PendingEvents 返回待发布事件的副本，不清空缓冲。
func (a *AggregateRoot[K]) PendingEvents() []DomainEvent {
	if len(a.events) == 0 {
		return nil
	}
	return append([]DomainEvent(nil), a.events...)
}

// PullEvents 返回并清空待发布事件。
func (a *AggregateRoot[K]) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}
