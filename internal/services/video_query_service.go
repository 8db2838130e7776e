package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/models/vo"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// 列表分页默认值。
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListVideosInput 描述列表查询参数。
type ListVideosInput struct {
	Page        int32
	PerPage     int32
	Terms       string
	Sort        string
	Direction   string
	Categories  []string
	Genres      []string
	CastMembers []string
}

func (in ListVideosInput) normalize() po.VideoSearchQuery {
	page := in.Page
	if page < 0 {
		page = 0
	}
	perPage := in.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	direction := strings.ToLower(strings.TrimSpace(in.Direction))
	if direction != "desc" {
		direction = "asc"
	}
	return po.VideoSearchQuery{
		Page:        page,
		PerPage:     perPage,
		Terms:       strings.TrimSpace(in.Terms),
		Sort:        strings.TrimSpace(in.Sort),
		Direction:   direction,
		Categories:  distinct(in.Categories),
		Genres:      distinct(in.Genres),
		CastMembers: distinct(in.CastMembers),
	}
}

// VideoQueryService 封装视频只读用例与删除。
type VideoQueryService struct {
	repo      VideoRepository
	media     MediaResourceGateway
	txManager txmanager.Manager
	log       *log.Helper
}

// NewVideoQueryService 构造视频查询服务。
func NewVideoQueryService(repo VideoRepository, mediaGateway MediaResourceGateway, tx txmanager.Manager, logger log.Logger) *VideoQueryService {
	return &VideoQueryService{
		repo:      repo,
		media:     mediaGateway,
		txManager: tx,
		log:       log.NewHelper(logger),
	}
}

// GetVideo 返回视频完整视图。
func (s *VideoQueryService) GetVideo(ctx context.Context, rawID string) (*vo.VideoDetail, error) {
	videoID, err := video.ParseID(rawID)
	if err != nil {
		return nil, NewVideoNotFound(rawID)
	}

	var found *video.Video
	err = s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		found, repoErr = s.repo.FindByID(txCtx, sess, videoID)
		return repoErr
	})
	if err != nil {
		return nil, s.queryError(ctx, "get video", videoID.String(), err)
	}
	return vo.NewVideoDetail(found), nil
}

// ListVideos 按条件分页查询视频。
func (s *VideoQueryService) ListVideos(ctx context.Context, input ListVideosInput) (*vo.VideoPage, error) {
	query := input.normalize()

	var page *po.VideoPage
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		page, repoErr = s.repo.FindAll(txCtx, sess, query)
		return repoErr
	})
	if err != nil {
		return nil, s.queryError(ctx, "list videos", "", err)
	}
	return vo.NewVideoPage(page), nil
}

// DeleteVideo 删除视频记录并清理其媒体；视频不存在时同样成功。
func (s *VideoQueryService) DeleteVideo(ctx context.Context, rawID string) error {
	videoID, err := video.ParseID(rawID)
	if err != nil {
		return nil
	}

	err = s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		return s.repo.DeleteByID(txCtx, sess, videoID)
	})
	if err != nil {
		s.log.WithContext(ctx).Errorf("delete video failed: video_id=%s err=%v", videoID, err)
		return internalVideoError(ReasonVideoDeleteFailed, "delete", videoID.String(), err)
	}
	if err := s.media.ClearResources(ctx, videoID); err != nil {
		s.log.WithContext(ctx).Errorf("delete video: clear resources failed: video_id=%s err=%v", videoID, err)
		return internalVideoError(ReasonVideoDeleteFailed, "delete", videoID.String(), err)
	}

	s.log.WithContext(ctx).Infof("DeleteVideo: video_id=%s", videoID)
	return nil
}

// GetMedia 读取指定槽位的原始媒体内容。
func (s *VideoQueryService) GetMedia(ctx context.Context, rawID, rawType string) (*vo.MediaContent, error) {
	kind, ok := media.ParseType(rawType)
	videoID, err := video.ParseID(rawID)
	if !ok || err != nil {
		return nil, mediaNotFound(rawID, rawType)
	}

	resource, err := s.media.GetResource(ctx, videoID, kind)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, mediaNotFound(videoID.String(), string(kind))
		}
		return nil, s.queryError(ctx, "get media", videoID.String(), err)
	}
	return &vo.MediaContent{
		Name:        resource.Name,
		ContentType: resource.ContentType,
		Content:     resource.Content,
	}, nil
}

func mediaNotFound(videoID, mediaType string) *errors.Error {
	return errors.NotFound(ReasonMediaNotFound, fmt.Sprintf("Resource %s not found for video %s", mediaType, videoID)).
		WithMetadata(map[string]string{"entity": "Media", "id": videoID, "media_type": mediaType})
}

func (s *VideoQueryService) queryError(ctx context.Context, op, videoID string, err error) error {
	if errors.Is(err, repositories.ErrVideoNotFound) {
		return NewVideoNotFound(videoID)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		s.log.WithContext(ctx).Warnf("%s timeout: video_id=%s", op, videoID)
		return errors.GatewayTimeout(ReasonQueryTimeout, "query timeout")
	}
	s.log.WithContext(ctx).Errorf("%s failed: video_id=%s err=%v", op, videoID, err)
	return errors.InternalServer(ReasonQueryFailed, "failed to "+op).WithCause(fmt.Errorf("%s: %w", op, err))
}
