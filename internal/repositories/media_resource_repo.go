package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/bionicotaku/lingo-services-media/internal/infrastructure/blobstore"
	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"

	"github.com/go-kratos/kratos/v2/log"
)

// ErrMediaNotFound 表示指定槽位的媒体内容不存在。
var ErrMediaNotFound = errors.New("media resource not found")

// MediaResourceRepository 将媒体二进制写入对象存储。
// 每个 (视频, 槽位) 对应唯一 key，重复写入直接覆盖。
type MediaResourceRepository struct {
	store blobstore.Store
	log   *log.Helper
}

// NewMediaResourceRepository 构造 MediaResourceRepository。
func NewMediaResourceRepository(store blobstore.Store, logger log.Logger) *MediaResourceRepository {
	return &MediaResourceRepository{store: store, log: log.NewHelper(logger)}
}

// ResourceKey 返回槽位内容的存储 key。
func ResourceKey(videoID video.ID, kind media.Type) string {
	return videoPrefix(videoID) + "type-" + string(kind)
}

func videoPrefix(videoID video.ID) string {
	return fmt.Sprintf("videoId-%s/", videoID)
}

// StoreAudioVideo 写入正片/预告片内容，返回 PENDING 状态的媒体。
func (r *MediaResourceRepository) StoreAudioVideo(ctx context.Context, videoID video.ID, resource media.VideoResource) (media.AudioVideoMedia, error) {
	if !resource.Type.IsAudioVideo() {
		return media.AudioVideoMedia{}, fmt.Errorf("store audio video: unsupported media type %s", resource.Type)
	}
	key, err := r.put(ctx, videoID, resource)
	if err != nil {
		return media.AudioVideoMedia{}, err
	}
	return media.NewAudioVideo(resource.Resource.Checksum, resource.Resource.Name, key)
}

// StoreImage 写入图片内容。
func (r *MediaResourceRepository) StoreImage(ctx context.Context, videoID video.ID, resource media.VideoResource) (media.ImageMedia, error) {
	if resource.Type.IsAudioVideo() {
		return media.ImageMedia{}, fmt.Errorf("store image: unsupported media type %s", resource.Type)
	}
	key, err := r.put(ctx, videoID, resource)
	if err != nil {
		return media.ImageMedia{}, err
	}
	return media.NewImage(resource.Resource.Checksum, resource.Resource.Name, key)
}

func (r *MediaResourceRepository) put(ctx context.Context, videoID video.ID, resource media.VideoResource) (string, error) {
	key := ResourceKey(videoID, resource.Type)
	obj := blobstore.Object{
		Key:         key,
		ContentType: resource.Resource.ContentType,
		Content:     resource.Resource.Content,
		Metadata: map[string]string{
			blobstore.MetaName:     url.QueryEscape(resource.Resource.Name),
			blobstore.MetaChecksum: resource.Resource.Checksum,
		},
	}
	if err := r.store.Put(ctx, obj); err != nil {
		r.log.WithContext(ctx).Errorf("store media failed: video_id=%s type=%s err=%v", videoID, resource.Type, err)
		return "", fmt.Errorf("store media %s: %w", resource.Type, err)
	}
	r.log.WithContext(ctx).Debugf("media stored: video_id=%s type=%s size=%d", videoID, resource.Type, len(resource.Resource.Content))
	return key, nil
}

// ClearResources 删除视频的全部媒体内容；无内容时视为成功。
func (r *MediaResourceRepository) ClearResources(ctx context.Context, videoID video.ID) error {
	if err := r.store.DeletePrefix(ctx, videoPrefix(videoID)); err != nil {
		r.log.WithContext(ctx).Errorf("clear media failed: video_id=%s err=%v", videoID, err)
		return fmt.Errorf("clear media: %w", err)
	}
	return nil
}

// GetResource 读取槽位内容；不存在时返回 ErrMediaNotFound。
func (r *MediaResourceRepository) GetResource(ctx context.Context, videoID video.ID, kind media.Type) (*media.Resource, error) {
	obj, err := r.store.Get(ctx, ResourceKey(videoID, kind))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("get media %s: %w", kind, err)
	}

	name := obj.Metadata[blobstore.MetaName]
	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}
	return &media.Resource{
		Checksum:    obj.Metadata[blobstore.MetaChecksum],
		Content:     obj.Content,
		ContentType: obj.ContentType,
		Name:        name,
	}, nil
}
