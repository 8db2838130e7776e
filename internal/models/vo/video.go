// Package vo 定义视图对象（View Objects），用于向上层传递业务数据。
// VO 对象由 Service 层返回，经 Controller 层转换为 HTTP 响应，隔离内部数据结构。
package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/po"
	"github.com/bionicotaku/lingo-services-media/internal/models/video"
)

// VideoCreated 封装视频创建响应。
type VideoCreated struct {
	VideoID   string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVideoCreated 从聚合构造创建响应。
func NewVideoCreated(v *video.Video) *VideoCreated {
	if v == nil {
		return nil
	}
	return &VideoCreated{VideoID: v.ID().String(), CreatedAt: v.CreatedAt()}
}

// VideoUpdated 封装视频更新响应。
type VideoUpdated struct {
	VideoID   string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVideoUpdated 从聚合构造更新响应。
func NewVideoUpdated(v *video.Video) *VideoUpdated {
	if v == nil {
		return nil
	}
	return &VideoUpdated{VideoID: v.ID().String(), UpdatedAt: v.UpdatedAt()}
}

// ImageMedia 是图片槽位视图。
type ImageMedia struct {
	ID       string `json:"id"`
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// AudioVideoMedia 是音视频槽位视图。
type AudioVideoMedia struct {
	ID              string `json:"id"`
	Checksum        string `json:"checksum"`
	Name            string `json:"name"`
	RawLocation     string `json:"location"`
	EncodedLocation string `json:"encoded_location"`
	Status          string `json:"status"`
}

// VideoDetail 是视频完整只读视图。
type VideoDetail struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	LaunchedAt    int              `json:"year_launched"`
	Duration      float64          `json:"duration"`
	Opened        bool             `json:"opened"`
	Published     bool             `json:"published"`
	Rating        string           `json:"rating"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Banner        *ImageMedia      `json:"banner,omitempty"`
	Thumbnail     *ImageMedia      `json:"thumbnail,omitempty"`
	ThumbnailHalf *ImageMedia      `json:"thumbnail_half,omitempty"`
	Trailer       *AudioVideoMedia `json:"trailer,omitempty"`
	Video         *AudioVideoMedia `json:"video,omitempty"`
	Categories    []string         `json:"categories_id"`
	Genres        []string         `json:"genres_id"`
	CastMembers   []string         `json:"cast_members_id"`
}

// NewVideoDetail 从聚合构造详情视图。
func NewVideoDetail(v *video.Video) *VideoDetail {
	if v == nil {
		return nil
	}
	return &VideoDetail{
		ID:            v.ID().String(),
		Title:         v.Title(),
		Description:   v.Description(),
		LaunchedAt:    v.LaunchedAt(),
		Duration:      v.Duration(),
		Opened:        v.Opened(),
		Published:     v.Published(),
		Rating:        v.Rating().String(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
		Banner:        imageView(v.Banner()),
		Thumbnail:     imageView(v.Thumbnail()),
		ThumbnailHalf: imageView(v.ThumbnailHalf()),
		Trailer:       audioVideoView(v.Trailer()),
		Video:         audioVideoView(v.VideoMedia()),
		Categories:    v.Categories().Strings(),
		Genres:        v.Genres().Strings(),
		CastMembers:   v.CastMembers().Strings(),
	}
}

func imageView(slot media.Slot[media.ImageMedia]) *ImageMedia {
	m, ok := slot.Get()
	if !ok {
		return nil
	}
	return &ImageMedia{ID: m.ID, Checksum: m.Checksum, Name: m.Name, Location: m.Location}
}

func audioVideoView(slot media.Slot[media.AudioVideoMedia]) *AudioVideoMedia {
	m, ok := slot.Get()
	if !ok {
		return nil
	}
	return &AudioVideoMedia{
		ID:              m.ID,
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          string(m.Status),
	}
}

// VideoListItem 表示列表中的条目。
type VideoListItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoPage 表示分页列表。
type VideoPage struct {
	CurrentPage int32           `json:"current_page"`
	PerPage     int32           `json:"per_page"`
	Total       int64           `json:"total"`
	Items       []VideoListItem `json:"items"`
}

// NewVideoPage 从持久化分页结果构造视图。
func NewVideoPage(page *po.VideoPage) *VideoPage {
	if page == nil {
		return &VideoPage{Items: []VideoListItem{}}
	}
	items := make([]VideoListItem, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, VideoListItem{
			ID:          item.VideoID.String(),
			Title:       item.Title,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}
	return &VideoPage{
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       page.Total,
		Items:       items,
	}
}

// MediaContent 表示从存储读取的原始媒体内容。
type MediaContent struct {
	Name        string
	ContentType string
	Content     []byte
}
