package services

import (
	"context"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
	"github.com/bionicotaku/lingo-services-media/internal/models/vo"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
)

// VideoRepository 定义视频聚合的持久化能力，sess 为 nil 时使用连接池。
type VideoRepository interface {
	Create(ctx context.Context, sess txmanager.Session, v *video.Video) error
	Update(ctx context.Context, sess txmanager.Session, v *video.Video) error
	FindByID(ctx context.Context, sess txmanager.Session, id video.ID) (*video.Video, error)
	DeleteByID(ctx context.Context, sess txmanager.Session, id video.ID) error
	FindAll(ctx context.Context, sess txmanager.Session, query po.VideoSearchQuery) (*po.VideoPage, error)
}

// OutboxEnqueuer 定义写 Outbox 的接口。
type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, sess txmanager.Session, msg repositories.OutboxMessage) error
}

// MediaResourceGateway 定义媒体二进制的存储能力。
// GetResource 在资源不存在时返回 repositories.ErrMediaNotFound。
type MediaResourceGateway interface {
	StoreAudioVideo(ctx context.Context, videoID video.ID, resource media.VideoResource) (media.AudioVideoMedia, error)
	StoreImage(ctx context.Context, videoID video.ID, resource media.VideoResource) (media.ImageMedia, error)
	ClearResources(ctx context.Context, videoID video.ID) error
	GetResource(ctx context.Context, videoID video.ID, kind media.Type) (*media.Resource, error)
}

// ReferenceGateway 返回 ids 中实际存在的子集。
type ReferenceGateway interface {
	ExistsByIDs(ctx context.Context, ids []string) ([]string, error)
}

// VideoGateway 是编排器使用的聚合存取入口：写入与事件落 Outbox 在同一事务内完成。
type VideoGateway interface {
	Create(ctx context.Context, v *video.Video) error
	Update(ctx context.Context, v *video.Video) error
	FindByID(ctx context.Context, id video.ID) (*video.Video, error)
}

// VideoSessionStore 在调用方事务内读写聚合，供 Inbox 消费者与状态更新共享同一事务。
type VideoSessionStore interface {
	FindByIDInTx(ctx context.Context, sess txmanager.Session, id video.ID) (*video.Video, error)
	UpdateInTx(ctx context.Context, sess txmanager.Session, v *video.Video) error
}

// CreateVideoUsecase 抽象视频创建用例，便于控制器测试替换。
type CreateVideoUsecase interface {
	CreateVideo(ctx context.Context, input CreateVideoInput) (*vo.VideoCreated, error)
}

// UpdateVideoUsecase 抽象视频更新用例。
type UpdateVideoUsecase interface {
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*vo.VideoUpdated, error)
}

// VideoQueryUsecase 抽象查询、删除与媒体读取用例。
type VideoQueryUsecase interface {
	GetVideo(ctx context.Context, videoID string) (*vo.VideoDetail, error)
	ListVideos(ctx context.Context, input ListVideosInput) (*vo.VideoPage, error)
	DeleteVideo(ctx context.Context, videoID string) error
	GetMedia(ctx context.Context, videoID, mediaType string) (*vo.MediaContent, error)
}

// MediaStatusUsecase 抽象转码状态回调用例。
type MediaStatusUsecase interface {
	UpdateStatus(ctx context.Context, input UpdateMediaStatusInput) error
	UpdateStatusInTx(ctx context.Context, sess txmanager.Session, input UpdateMediaStatusInput) error
}

var (
	_ VideoGateway       = (*VideoStore)(nil)
	_ VideoSessionStore  = (*VideoStore)(nil)
	_ CreateVideoUsecase = (*CreateVideoService)(nil)
	_ UpdateVideoUsecase = (*UpdateVideoService)(nil)
	_ VideoQueryUsecase  = (*VideoQueryService)(nil)
	_ MediaStatusUsecase = (*MediaStatusService)(nil)
)
