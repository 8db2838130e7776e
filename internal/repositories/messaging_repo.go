package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	outboxpkg "github.com/bionicotaku/lingo-utils/outbox"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxMessage 是写入 catalog.outbox_events 的一条领域事件。
type OutboxMessage = store.Message

// ErrInvalidOutboxMessage 表示事件缺少路由所需的标识。
var ErrInvalidOutboxMessage = errors.New("repositories: invalid outbox message")

// sharedStore 按配置的 schema 打开 outbox/inbox 共用的事件表仓储；
// schema 非法时退回默认 schema，保证服务仍可启动并在日志中暴露问题。
func sharedStore(db *pgxpool.Pool, logger log.Logger, schema, role string) *store.Repository {
	repo, err := outboxpkg.NewRepository(db, logger, outboxpkg.RepositoryOptions{Schema: schema})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init "+role+" store failed, falling back to default schema", "schema", schema, "error", err)
		return store.NewRepository(db, logger)
	}
	return repo
}

// OutboxRepository 在视频写事务内登记 MediaCreated 等待发布的事件。
type OutboxRepository struct {
	delegate *store.Repository
	now      func() time.Time
}

// NewOutboxRepository 构造 OutboxRepository。
func NewOutboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *OutboxRepository {
	return &OutboxRepository{
		delegate: sharedStore(db, logger, cfg.Schema, "outbox"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue 校验事件标识后写入 Outbox；AvailableAt 为空时立即可投递。
func (r *OutboxRepository) Enqueue(ctx context.Context, sess txmanager.Session, msg OutboxMessage) error {
	switch {
	case msg.EventID == uuid.Nil:
		return fmt.Errorf("%w: event_id is required", ErrInvalidOutboxMessage)
	case msg.AggregateID == uuid.Nil:
		return fmt.Errorf("%w: aggregate_id is required", ErrInvalidOutboxMessage)
	case msg.EventType == "" || msg.AggregateType == "":
		return fmt.Errorf("%w: event_type and aggregate_type are required", ErrInvalidOutboxMessage)
	}
	if msg.AvailableAt.IsZero() {
		msg.AvailableAt = r.now()
	}
	if err := r.delegate.Enqueue(ctx, sess, msg); err != nil {
		return fmt.Errorf("enqueue %s for %s: %w", msg.EventType, msg.AggregateID, err)
	}
	return nil
}

// CountPending 返回尚未发布的事件数。
func (r *OutboxRepository) CountPending(ctx context.Context) (int64, error) {
	return r.delegate.CountPending(ctx)
}

// Shared 返回底层仓储，供 outbox 发布器认领与回写。
func (r *OutboxRepository) Shared() *store.Repository {
	return r.delegate
}

// InboxRepository 记录转码回调的去重与处理结果，由 inbox runner 驱动。
type InboxRepository struct {
	delegate *store.Repository
}

// NewInboxRepository 构造 InboxRepository。
func NewInboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *InboxRepository {
	return &InboxRepository{delegate: sharedStore(db, logger, cfg.Schema, "inbox")}
}

// Shared 返回底层仓储。
func (r *InboxRepository) Shared() *store.Repository {
	return r.delegate
}
