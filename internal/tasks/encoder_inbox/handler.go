package encoderinbox

import (
	"context"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/services"

	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// statusApplier 在调用方事务内应用状态回调。
type statusApplier interface {
	UpdateStatusInTx(ctx context.Context, sess txmanager.Session, input services.UpdateMediaStatusInput) error
}

var _ statusApplier = (*services.MediaStatusService)(nil)

// EventHandler 将转码回调转交给媒体状态服务。
type EventHandler struct {
	statuses statusApplier
	log      *log.Helper
	metrics  *metrics
	clock    func() time.Time
}

// NewEventHandler 构造 EventHandler，metrics 可为 nil。
func NewEventHandler(statuses statusApplier, logger log.Logger, metrics *metrics) *EventHandler {
	return &EventHandler{
		statuses: statuses,
		log:      log.NewHelper(logger),
		metrics:  metrics,
		clock:    time.Now,
	}
}

// Handle 应用单条回调。不支持的状态属于不可重试的坏消息：记录后确认，不阻塞订阅。
func (h *EventHandler) Handle(ctx context.Context, sess txmanager.Session, evt *Event, inboxEvt *store.InboxEvent) error {
	if evt == nil {
		return fmt.Errorf("encoder inbox: nil event")
	}

	videoID := evt.VideoID
	if videoID == "" && inboxEvt != nil && inboxEvt.AggregateID != nil {
		videoID = *inboxEvt.AggregateID
	}

	err := h.statuses.UpdateStatusInTx(ctx, sess, services.UpdateMediaStatusInput{
		Status:          evt.Status,
		VideoID:         videoID,
		ResourceID:      evt.ResourceID,
		EncodedFolder:   evt.EncodedVideoFolder,
		EncodedFileName: evt.FileName,
	})
	switch {
	case err == nil:
		h.metrics.recordSuccess(ctx, evt.Status, evt.OccurredAt, h.clock())
		return nil
	case errors.IsBadRequest(err):
		h.metrics.recordFailure(ctx, evt.Status, "rejected")
		h.log.WithContext(ctx).Warnw("msg", "encoder inbox: drop rejected callback",
			"video_id", videoID, "resource_id", evt.ResourceID, "status", evt.Status, "error", err)
		return nil
	default:
		h.metrics.recordFailure(ctx, evt.Status, "error")
		return fmt.Errorf("encoder inbox: apply status: %w", err)
	}
}
