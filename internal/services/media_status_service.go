package services

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// UpdateMediaStatusInput 描述转码流水线的状态回调。
type UpdateMediaStatusInput struct {
	Status          string
	VideoID         string
	ResourceID      string
	EncodedFolder   string
	EncodedFileName string
}

// EncodedPath 返回转码产物的相对路径。
func (in UpdateMediaStatusInput) EncodedPath() string {
	return in.EncodedFolder + "/" + in.EncodedFileName
}

// MediaStatusService 根据转码回调迁移正片/预告片槽位的状态。
// 视频不存在或没有槽位匹配 ResourceID 时视为过期回调，静默忽略。
type MediaStatusService struct {
	store     VideoSessionStore
	txManager txmanager.Manager
	metrics   *serviceMetrics
	log       *log.Helper
}

// NewMediaStatusService 构造 MediaStatusService。
func NewMediaStatusService(store VideoSessionStore, tx txmanager.Manager, logger log.Logger) *MediaStatusService {
	return &MediaStatusService{
		store:     store,
		txManager: tx,
		metrics:   newServiceMetrics("media_status"),
		log:       log.NewHelper(logger),
	}
}

// UpdateStatus 在独立事务内应用状态回调。
func (s *MediaStatusService) UpdateStatus(ctx context.Context, input UpdateMediaStatusInput) error {
	return s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		return s.UpdateStatusInTx(txCtx, sess, input)
	})
}

// UpdateStatusInTx 在调用方事务内应用状态回调。
func (s *MediaStatusService) UpdateStatusInTx(ctx context.Context, sess txmanager.Session, input UpdateMediaStatusInput) error {
	videoID, err := video.ParseID(input.VideoID)
	if err != nil {
		s.log.WithContext(ctx).Warnf("media status ignored: invalid video_id=%q", input.VideoID)
		s.metrics.recordStatusUpdate(ctx, input.Status, "", "ignored")
		return nil
	}

	current, err := s.store.FindByIDInTx(ctx, sess, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			s.log.WithContext(ctx).Debugf("media status ignored: video not found: video_id=%s", videoID)
			s.metrics.recordStatusUpdate(ctx, input.Status, "", "ignored")
			return nil
		}
		return fmt.Errorf("load video %s: %w", videoID, err)
	}

	kind, _, ok := current.AudioVideoByResourceID(input.ResourceID)
	if !ok {
		s.log.WithContext(ctx).Debugf("media status ignored: no slot matches resource_id=%s video_id=%s", input.ResourceID, videoID)
		s.metrics.recordStatusUpdate(ctx, input.Status, "", "ignored")
		return nil
	}

	status, _ := media.ParseStatus(input.Status)
	switch status {
	case media.StatusProcessing:
		current.Processing(kind)
	case media.StatusCompleted:
		current.Completed(kind, input.EncodedPath())
	default:
		s.metrics.recordStatusUpdate(ctx, input.Status, string(kind), "rejected")
		return errors.BadRequest(ReasonMediaStatusInvalid, fmt.Sprintf("unsupported media status %q", input.Status)).
			WithMetadata(map[string]string{"video_id": videoID.String(), "resource_id": input.ResourceID})
	}

	if err := s.store.UpdateInTx(ctx, sess, current); err != nil {
		return fmt.Errorf("update video %s: %w", videoID, err)
	}

	s.metrics.recordStatusUpdate(ctx, string(status), string(kind), "applied")
	s.log.WithContext(ctx).Infof("media status updated: video_id=%s media_type=%s status=%s", videoID, kind, status)
	return nil
}
