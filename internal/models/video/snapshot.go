package video

import (
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
)

// Snapshot 是聚合全部持久化字段的导出形式，供仓储读写与深拷贝使用。
// 领域事件不属于持久化状态，不包含在快照中。
type Snapshot struct {
	ID            ID
	Title         string
	Description   string
	LaunchedAt    int
	Duration      float64
	Opened        bool
	Published     bool
	Rating        Rating
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Banner        *media.ImageMedia
	Thumbnail     *media.ImageMedia
	ThumbnailHalf *media.ImageMedia
	Trailer       *media.AudioVideoMedia
	Video         *media.AudioVideoMedia
	Categories    []CategoryID
	Genres        []GenreID
	CastMembers   []CastMemberID
}

// Snapshot 导出当前状态。
func (v *Video) Snapshot() Snapshot {
	return Snapshot{
		ID:            v.ID(),
		Title:         v.title,
		Description:   v.description,
		LaunchedAt:    v.launchedAt,
		Duration:      v.duration,
		Opened:        v.opened,
		Published:     v.published,
		Rating:        v.rating,
		CreatedAt:     v.createdAt,
		UpdatedAt:     v.updatedAt,
		Banner:        v.banner.Ptr(),
		Thumbnail:     v.thumbnail.Ptr(),
		ThumbnailHalf: v.thumbnailHalf.Ptr(),
		Trailer:       v.trailer.Ptr(),
		Video:         v.video.Ptr(),
		Categories:    v.categories.Values(),
		Genres:        v.genres.Values(),
		CastMembers:   v.castMembers.Values(),
	}
}

// Restore 由快照重建聚合，事件缓冲为空。
func Restore(s Snapshot) *Video {
	return &Video{
		AggregateRoot: NewAggregateRoot(s.ID),
		title:         s.Title,
		description:   s.Description,
		launchedAt:    s.LaunchedAt,
		duration:      s.Duration,
		opened:        s.Opened,
		published:     s.Published,
		rating:        s.Rating,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		banner:        media.FromPtr(s.Banner),
		thumbnail:     media.FromPtr(s.Thumbnail),
		thumbnailHalf: media.FromPtr(s.ThumbnailHalf),
		trailer:       media.FromPtr(s.Trailer),
		video:         media.FromPtr(s.Video),
		categories:    NewIDSet(s.Categories...),
		genres:        NewIDSet(s.Genres...),
		castMembers:   NewIDSet(s.CastMembers...),
	}
}

// Clone 返回完整深拷贝，包括尚未排空的领域事件。
func (v *Video) Clone() *Video {
	cloned := Restore(v.Snapshot())
	for _, evt := range v.PendingEvents() {
		cloned.RegisterEvent(evt)
	}
	return cloned
}
