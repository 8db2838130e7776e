package video

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/models/validation"
)

// 字段约束
const (
	TitleMaxLength       = 255
	DescriptionMaxLength = 4000
	LaunchedAtMin        = 1
	LaunchedAtMax        = 9999
)

// Fields 描述创建/更新视频时可替换的元数据字段。
// LaunchedAt 为 0 表示未提供上映年份；Rating 为空表示未提供分级。
type Fields struct {
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      Rating
	Categories  []CategoryID
	Genres      []GenreID
	CastMembers []CastMemberID
}

// Video 是视频聚合根。
type Video struct {
	AggregateRoot[ID]

	title       string
	description string
	launchedAt  int
	duration    float64
	opened      bool
	published   bool
	rating      Rating
	createdAt   time.Time
	updatedAt   time.Time

	banner        media.Slot[media.ImageMedia]
	thumbnail     media.Slot[media.ImageMedia]
	thumbnailHalf media.Slot[media.ImageMedia]
	trailer       media.Slot[media.AudioVideoMedia]
	video         media.Slot[media.AudioVideoMedia]

	categories  IDSet[CategoryID]
	genres      IDSet[GenreID]
	castMembers IDSet[CastMemberID]
}

func now() time.Time {
	// 数据库精度为微秒，提前截断保证读写一致。
	return time.Now().UTC().Truncate(time.Microsecond)
}

// New 以新 ID 构造视频，不做校验；调用方需显式调用 Validate。
func New(f Fields) *Video {
	ts := now()
	v := &Video{
		AggregateRoot: NewAggregateRoot(NewID()),
		createdAt:     ts,
	}
	v.apply(f)
	v.updatedAt = ts
	return v
}

// Update 原地替换元数据字段并刷新 updatedAt，外键集合整体替换（nil 视为空集合）。
func (v *Video) Update(f Fields) *Video {
	v.apply(f)
	v.touch()
	return v
}

func (v *Video) apply(f Fields) {
	v.title = strings.TrimSpace(f.Title)
	v.description = f.Description
	v.launchedAt = f.LaunchedAt
	v.duration = f.Duration
	v.opened = f.Opened
	v.published = f.Published
	v.rating = f.Rating
	v.categories = NewIDSet(f.Categories...)
	v.genres = NewIDSet(f.Genres...)
	v.castMembers = NewIDSet(f.CastMembers...)
}

func (v *Video) touch() {
	ts := now()
	if !ts.After(v.updatedAt) {
		ts = v.updatedAt.Add(time.Microsecond)
	}
	v.updatedAt = ts
}

// UpdateVideoMedia 替换正片槽位；写入新媒体时追加 MediaCreated 事件。
func (v *Video) UpdateVideoMedia(slot media.Slot[media.AudioVideoMedia]) *Video {
	v.video = slot
	v.touch()
	v.raiseMediaCreated(slot, media.TypeVideo)
	return v
}

// UpdateTrailerMedia 替换预告片槽位；写入新媒体时追加 MediaCreated 事件。
func (v *Video) UpdateTrailerMedia(slot media.Slot[media.AudioVideoMedia]) *Video {
	v.trailer = slot
	v.touch()
	v.raiseMediaCreated(slot, media.TypeTrailer)
	return v
}

// UpdateBannerMedia 替换横幅图槽位。
func (v *Video) UpdateBannerMedia(slot media.Slot[media.ImageMedia]) *Video {
	v.banner = slot
	v.touch()
	return v
}

// UpdateThumbnailMedia 替换缩略图槽位。
func (v *Video) UpdateThumbnailMedia(slot media.Slot[media.ImageMedia]) *Video {
	v.thumbnail = slot
	v.touch()
	return v
}

// UpdateThumbnailHalfMedia 替换半尺寸缩略图槽位。
func (v *Video) UpdateThumbnailHalfMedia(slot media.Slot[media.ImageMedia]) *Video {
	v.thumbnailHalf = slot
	v.touch()
	return v
}

func (v *Video) raiseMediaCreated(slot media.Slot[media.AudioVideoMedia], kind media.Type) {
	m, ok := slot.Get()
	if !ok {
		return
	}
	v.RegisterEvent(MediaCreated{
		AggregateID: v.ID(),
		FilePath:    m.RawLocation,
		MediaType:   kind,
		OccurredAt:  v.updatedAt,
	})
}

// Processing 将指定音视频槽位迁移到 PROCESSING；槽位为空或类型非音视频时不做任何事。
// 状态迁移不会产生 MediaCreated 事件。
func (v *Video) Processing(kind media.Type) *Video {
	return v.transition(kind, func(m media.AudioVideoMedia) media.AudioVideoMedia {
		return m.Processing()
	})
}

// Completed 将指定音视频槽位迁移到 COMPLETED 并记录转码产物路径。
func (v *Video) Completed(kind media.Type, encodedPath string) *Video {
	return v.transition(kind, func(m media.AudioVideoMedia) media.AudioVideoMedia {
		return m.Completed(encodedPath)
	})
}

func (v *Video) transition(kind media.Type, fn func(media.AudioVideoMedia) media.AudioVideoMedia) *Video {
	var target *media.Slot[media.AudioVideoMedia]
	switch kind {
	case media.TypeVideo:
		target = &v.video
	case media.TypeTrailer:
		target = &v.trailer
	default:
		return v
	}
	current, ok := target.Get()
	if !ok {
		return v
	}
	*target = media.Some(fn(current))
	v.touch()
	return v
}

// Validate 校验字段不变量，将全部违规累积到 notification 中。
func (v *Video) Validate(n *validation.Notification) {
	switch {
	case v.title == "":
		n.AppendMessage("'title' should not be empty")
	case utf8.RuneCountInString(v.title) > TitleMaxLength:
		n.AppendMessage("'title' must be between 1 and 255 characters")
	}
	if utf8.RuneCountInString(v.description) > DescriptionMaxLength {
		n.AppendMessage("'description' must be between 0 and 4000 characters")
	}
	switch {
	case v.launchedAt == 0:
		n.AppendMessage("'launchedAt' should not be null")
	case v.launchedAt < LaunchedAtMin || v.launchedAt > LaunchedAtMax:
		n.AppendMessage("'launchedAt' must be between 1 and 9999")
	}
	if !v.rating.IsValid() {
		n.AppendMessage("'rating' should not be null")
	}
	if v.duration < 0 {
		n.AppendMessage("'duration' should not be negative")
	}
}

// AudioVideoByResourceID 在正片与预告片槽位中查找媒体 ID 匹配的一项。
func (v *Video) AudioVideoByResourceID(resourceID string) (media.Type, media.AudioVideoMedia, bool) {
	if m, ok := v.video.Get(); ok && m.ID == resourceID {
		return media.TypeVideo, m, true
	}
	if m, ok := v.trailer.Get(); ok && m.ID == resourceID {
		return media.TypeTrailer, m, true
	}
	return "", media.AudioVideoMedia{}, false
}

// MediaLocation 返回指定槽位的原始存储位置。
func (v *Video) MediaLocation(kind media.Type) (string, bool) {
	if kind.IsAudioVideo() {
		slot := v.video
		if kind == media.TypeTrailer {
			slot = v.trailer
		}
		if m, ok := slot.Get(); ok {
			return m.RawLocation, true
		}
		return "", false
	}
	var slot media.Slot[media.ImageMedia]
	switch kind {
	case media.TypeBanner:
		slot = v.banner
	case media.TypeThumbnail:
		slot = v.thumbnail
	case media.TypeThumbnailHalf:
		slot = v.thumbnailHalf
	}
	if m, ok := slot.Get(); ok {
		return m.Location, true
	}
	return "", false
}

// Title 返回标题。
func (v *Video) Title() string { return v.title }

// Description 返回描述。
func (v *Video) Description() string { return v.description }

// LaunchedAt 返回上映年份，0 表示缺失。
func (v *Video) LaunchedAt() int { return v.launchedAt }

// Duration 返回时长（秒）。
func (v *Video) Duration() float64 { return v.duration }

// Opened 返回是否公开放映。
func (v *Video) Opened() bool { return v.opened }

// Published 返回是否已发布。
func (v *Video) Published() bool { return v.published }

// Rating 返回分级。
func (v *Video) Rating() Rating { return v.rating }

// CreatedAt 返回创建时间。
func (v *Video) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt 返回最近更新时间。
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }

// Banner 返回横幅图槽位。
func (v *Video) Banner() media.Slot[media.ImageMedia] { return v.banner }

// Thumbnail 返回缩略图槽位。
func (v *Video) Thumbnail() media.Slot[media.ImageMedia] { return v.thumbnail }

// ThumbnailHalf 返回半尺寸缩略图槽位。
func (v *Video) ThumbnailHalf() media.Slot[media.ImageMedia] { return v.thumbnailHalf }

// Trailer 返回预告片槽位。
func (v *Video) Trailer() media.Slot[media.AudioVideoMedia] { return v.trailer }

// VideoMedia 返回正片槽位。
func (v *Video) VideoMedia() media.Slot[media.AudioVideoMedia] { return v.video }

// Categories 返回分类 ID 集合。
func (v *Video) Categories() IDSet[CategoryID] { return v.categories }

// Genres 返回流派 ID 集合。
func (v *Video) Genres() IDSet[GenreID] { return v.genres }

// CastMembers 返回演职人员 ID 集合。
func (v *Video) CastMembers() IDSet[CastMemberID] { return v.castMembers }
