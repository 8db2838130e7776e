package services

import (
	"context"
	"fmt"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-media/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoStore 负责在事务内写入聚合，并把聚合缓冲的领域事件写入 Outbox。
// 事务提交成功后才清空聚合的事件缓冲；失败时事件保留，调用方可重试。
type VideoStore struct {
	repo      VideoRepository
	outbox    OutboxEnqueuer
	txManager txmanager.Manager
	metrics   *serviceMetrics
	log       *log.Helper
}

// NewVideoStore 构造 VideoStore。
func NewVideoStore(repo VideoRepository, outbox OutboxEnqueuer, tx txmanager.Manager, logger log.Logger) *VideoStore {
	return &VideoStore{
		repo:      repo,
		outbox:    outbox,
		txManager: tx,
		metrics:   newServiceMetrics("video_store"),
		log:       log.NewHelper(logger),
	}
}

type persistFunc func(ctx context.Context, sess txmanager.Session, v *video.Video) error

// Create 插入新聚合。
func (s *VideoStore) Create(ctx context.Context, v *video.Video) error {
	return s.write(ctx, v, s.repo.Create)
}

// Update 覆盖写入已有聚合。
func (s *VideoStore) Update(ctx context.Context, v *video.Video) error {
	return s.write(ctx, v, s.repo.Update)
}

// FindByID 在只读事务内加载聚合；不存在时返回 repositories.ErrVideoNotFound。
func (s *VideoStore) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	var found *video.Video
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		found, repoErr = s.repo.FindByID(txCtx, sess, id)
		return repoErr
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindByIDInTx 在调用方事务内加载聚合。
func (s *VideoStore) FindByIDInTx(ctx context.Context, sess txmanager.Session, id video.ID) (*video.Video, error) {
	return s.repo.FindByID(ctx, sess, id)
}

// UpdateInTx 在调用方事务内写入聚合与事件。
func (s *VideoStore) UpdateInTx(ctx context.Context, sess txmanager.Session, v *video.Video) error {
	if err := s.persistInTx(ctx, sess, v, s.repo.Update); err != nil {
		return err
	}
	v.PullEvents()
	return nil
}

func (s *VideoStore) write(ctx context.Context, v *video.Video, persist persistFunc) error {
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		return s.persistInTx(txCtx, sess, v, persist)
	})
	if err != nil {
		return err
	}
	drained := v.PullEvents()
	if len(drained) > 0 {
		s.log.WithContext(ctx).Debugf("video events drained: video_id=%s count=%d", v.ID(), len(drained))
	}
	return nil
}

func (s *VideoStore) persistInTx(ctx context.Context, sess txmanager.Session, v *video.Video, persist persistFunc) error {
	if err := persist(ctx, sess, v); err != nil {
		return err
	}
	for _, evt := range v.PendingEvents() {
		if err := s.enqueueOutbox(ctx, sess, evt); err != nil {
			return err
		}
	}
	return nil
}

func (s *VideoStore) enqueueOutbox(ctx context.Context, sess txmanager.Session, evt video.DomainEvent) error {
	event, err := outboxevents.FromVideoEvent(evt, uuid.New())
	if err != nil {
		s.metrics.recordFailure(ctx, evt.EventType(), err)
		return fmt.Errorf("build outbox event: %w", err)
	}
	payload, err := outboxevents.EncodePayload(event)
	if err != nil {
		s.metrics.recordFailure(ctx, evt.EventType(), err)
		return fmt.Errorf("encode outbox event: %w", err)
	}

	attributes := outboxevents.Attributes(ctx, event)

	availableAt := event.OccurredAt
	if availableAt.IsZero() {
		availableAt = time.Now().UTC()
	}

	eventType := outboxevents.FormatEventType(event.Kind)
	msg := repositories.OutboxMessage{
		EventID:       event.EventID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     eventType,
		Payload:       payload,
		Headers:       attributes,
		AvailableAt:   availableAt,
	}
	if err := s.outbox.Enqueue(ctx, sess, msg); err != nil {
		s.metrics.recordFailure(ctx, eventType, err)
		return fmt.Errorf("enqueue outbox: %w", err)
	}
	s.metrics.recordSuccess(ctx, eventType, event.OccurredAt)
	return nil
}
