package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/validation"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/models/vo"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// cleanupTimeout 限定补偿清理的耗时；清理使用脱离请求取消的 Context。
const cleanupTimeout = 30 * time.Second

// VideoInput 描述创建/更新共用的元数据与可选媒体。
// LaunchedAt 为 nil 表示未提供；Rating 为原始字符串，解析失败视为未提供。
// InvalidFields 记录请求层无法解析的数值字段，与聚合校验错误一并报告。
type VideoInput struct {
	Title         string
	Description   string
	LaunchedAt    *int
	Duration      float64
	Opened        bool
	Published     bool
	Rating        string
	Categories    []string
	Genres        []string
	CastMembers   []string
	Video         *media.Resource
	Trailer       *media.Resource
	Banner        *media.Resource
	Thumbnail     *media.Resource
	ThumbnailHalf *media.Resource
	InvalidFields []string
}

// CreateVideoInput 表示创建视频的输入。
type CreateVideoInput struct {
	VideoInput
}

// UpdateVideoInput 表示更新视频的输入。
type UpdateVideoInput struct {
	VideoID string
	VideoInput
}

// fields 完成评级与年份的解析；解析失败的值留空，由聚合校验统一报告。
func (in VideoInput) fields() video.Fields {
	rating, _ := video.ParseRating(in.Rating)
	launchedAt := 0
	if in.LaunchedAt != nil {
		launchedAt = *in.LaunchedAt
	}
	return video.Fields{
		Title:       in.Title,
		Description: in.Description,
		LaunchedAt:  launchedAt,
		Duration:    in.Duration,
		Opened:      in.Opened,
		Published:   in.Published,
		Rating:      rating,
		Categories:  toIDs[video.CategoryID](in.Categories),
		Genres:      toIDs[video.GenreID](in.Genres),
		CastMembers: toIDs[video.CastMemberID](in.CastMembers),
	}
}

// reportInvalid 将解析失败的字段追加到 notification。
func (in VideoInput) reportInvalid(n *validation.Notification) {
	for _, field := range in.InvalidFields {
		n.AppendMessage(fmt.Sprintf("'%s' must be a number", field))
	}
}

func (in VideoInput) resource(kind media.Type) *media.Resource {
	switch kind {
	case media.TypeVideo:
		return in.Video
	case media.TypeTrailer:
		return in.Trailer
	case media.TypeBanner:
		return in.Banner
	case media.TypeThumbnail:
		return in.Thumbnail
	case media.TypeThumbnailHalf:
		return in.ThumbnailHalf
	}
	return nil
}

func toIDs[T ~string](raw []string) []T {
	out := make([]T, 0, len(raw))
	for _, id := range raw {
		out = append(out, T(id))
	}
	return out
}

// mediaAttacher 按固定槽位顺序存储资源并挂载到聚合上。
type mediaAttacher struct {
	media MediaResourceGateway
}

func (a mediaAttacher) attach(ctx context.Context, v *video.Video, in VideoInput) error {
	for _, kind := range media.Types {
		res := in.resource(kind)
		if res == nil {
			continue
		}
		resource := media.VideoResource{Resource: *res, Type: kind}

		if kind.IsAudioVideo() {
			stored, err := a.media.StoreAudioVideo(ctx, v.ID(), resource)
			if err != nil {
				return fmt.Errorf("store %s: %w", kind, err)
			}
			if kind == media.TypeVideo {
				v.UpdateVideoMedia(media.Some(stored))
			} else {
				v.UpdateTrailerMedia(media.Some(stored))
			}
			continue
		}

		stored, err := a.media.StoreImage(ctx, v.ID(), resource)
		if err != nil {
			return fmt.Errorf("store %s: %w", kind, err)
		}
		switch kind {
		case media.TypeBanner:
			v.UpdateBannerMedia(media.Some(stored))
		case media.TypeThumbnail:
			v.UpdateThumbnailMedia(media.Some(stored))
		case media.TypeThumbnailHalf:
			v.UpdateThumbnailHalfMedia(media.Some(stored))
		}
	}
	return nil
}

// CreateVideoService 编排视频创建：外键校验、聚合校验、媒体存储与持久化。
// 存储或持久化失败时清理该视频 ID 下已写入的全部媒体。
type CreateVideoService struct {
	references *ReferenceValidator
	videos     VideoGateway
	media      MediaResourceGateway
	attacher   mediaAttacher
	log        *log.Helper
}

// NewCreateVideoService 构造 CreateVideoService。
func NewCreateVideoService(references *ReferenceValidator, videos VideoGateway, mediaGateway MediaResourceGateway, logger log.Logger) *CreateVideoService {
	return &CreateVideoService{
		references: references,
		videos:     videos,
		media:      mediaGateway,
		attacher:   mediaAttacher{media: mediaGateway},
		log:        log.NewHelper(logger),
	}
}

// CreateVideo 创建视频并返回其 ID。
func (s *CreateVideoService) CreateVideo(ctx context.Context, input CreateVideoInput) (*vo.VideoCreated, error) {
	fields := input.fields()

	notification, err := s.references.Validate(ctx, input.Categories, input.Genres, input.CastMembers)
	if err != nil {
		s.log.WithContext(ctx).Errorf("create video: reference lookup failed: err=%v", err)
		return nil, errors.InternalServer(ReasonVideoCreateFailed, "failed to validate video references").WithCause(err)
	}

	input.reportInvalid(notification)
	created := video.New(fields)
	created.Validate(notification)
	if notification.HasErrors() {
		return nil, validation.NewNotificationError(MsgCreateAggregateFailed, notification)
	}

	if err := s.storeAndPersist(ctx, created, input.VideoInput); err != nil {
		s.log.WithContext(ctx).Errorf("create video failed: video_id=%s err=%v", created.ID(), err)
		s.clearResources(ctx, created.ID())
		return nil, internalVideoError(ReasonVideoCreateFailed, "create", created.ID().String(), err)
	}

	s.log.WithContext(ctx).Infof("CreateVideo: video_id=%s title=%s", created.ID(), created.Title())
	return vo.NewVideoCreated(created), nil
}

func (s *CreateVideoService) storeAndPersist(ctx context.Context, v *video.Video, in VideoInput) error {
	if err := s.attacher.attach(ctx, v, in); err != nil {
		return err
	}
	if err := s.videos.Create(ctx, v); err != nil {
		return fmt.Errorf("persist video: %w", err)
	}
	return nil
}

func (s *CreateVideoService) clearResources(ctx context.Context, videoID video.ID) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := s.media.ClearResources(cleanupCtx, videoID); err != nil {
		s.log.WithContext(ctx).Errorf("clear video resources failed: video_id=%s err=%v", videoID, err)
	}
}

// UpdateVideoService 编排视频更新；与创建不同，失败时不清理已写入的媒体。
type UpdateVideoService struct {
	references *ReferenceValidator
	videos     VideoGateway
	attacher   mediaAttacher
	log        *log.Helper
}

// NewUpdateVideoService 构造 UpdateVideoService。
func NewUpdateVideoService(references *ReferenceValidator, videos VideoGateway, mediaGateway MediaResourceGateway, logger log.Logger) *UpdateVideoService {
	return &UpdateVideoService{
		references: references,
		videos:     videos,
		attacher:   mediaAttacher{media: mediaGateway},
		log:        log.NewHelper(logger),
	}
}

// UpdateVideo 加载并更新视频；只替换本次提供了资源的媒体槽位。
func (s *UpdateVideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*vo.VideoUpdated, error) {
	videoID, err := video.ParseID(input.VideoID)
	if err != nil {
		return nil, NewVideoNotFound(input.VideoID)
	}

	existing, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, NewVideoNotFound(videoID.String())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.WithContext(ctx).Warnf("update video: load timeout: video_id=%s", videoID)
			return nil, errors.GatewayTimeout(ReasonQueryTimeout, "update timeout")
		}
		s.log.WithContext(ctx).Errorf("update video: load failed: video_id=%s err=%v", videoID, err)
		return nil, internalVideoError(ReasonVideoUpdateFailed, "update", videoID.String(), err)
	}

	notification, err := s.references.Validate(ctx, input.Categories, input.Genres, input.CastMembers)
	if err != nil {
		s.log.WithContext(ctx).Errorf("update video: reference lookup failed: video_id=%s err=%v", videoID, err)
		return nil, internalVideoError(ReasonVideoUpdateFailed, "update", videoID.String(), err)
	}

	input.reportInvalid(notification)
	existing.Update(input.fields())
	existing.Validate(notification)
	if notification.HasErrors() {
		return nil, validation.NewNotificationError(MsgUpdateAggregateFailed, notification)
	}

	if err := s.attacher.attach(ctx, existing, input.VideoInput); err != nil {
		s.log.WithContext(ctx).Errorf("update video: store media failed: video_id=%s err=%v", videoID, err)
		return nil, internalVideoError(ReasonVideoUpdateFailed, "update", videoID.String(), err)
	}
	if err := s.videos.Update(ctx, existing); err != nil {
		s.log.WithContext(ctx).Errorf("update video: persist failed: video_id=%s err=%v", videoID, err)
		return nil, internalVideoError(ReasonVideoUpdateFailed, "update", videoID.String(), fmt.Errorf("persist video: %w", err))
	}

	s.log.WithContext(ctx).Infof("UpdateVideo: video_id=%s", videoID)
	return vo.NewVideoUpdated(existing), nil
}
